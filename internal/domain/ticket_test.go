package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketPrice(t *testing.T) {
	base := decimal.NewFromInt(50)

	tests := []struct {
		name       string
		ticketType string
		want       string
	}{
		{name: "standard", ticketType: TicketStandard, want: "50"},
		{name: "vip", ticketType: TicketVIP, want: "75"},
		{name: "golden circle", ticketType: TicketGoldenCircle, want: "60"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, err := TicketPrice(base, tt.ticketType)

			require.NoError(t, err)
			assert.True(t, price.Equal(decimal.RequireFromString(tt.want)),
				"got %v, want %v", price, tt.want)
		})
	}
}

func TestTicketPrice_UnknownType(t *testing.T) {
	_, err := TicketPrice(decimal.NewFromInt(50), "Backstage")

	assert.ErrorIs(t, err, ErrUnknownTicketType)
}

func TestTicketPrice_RoundsToCents(t *testing.T) {
	price, err := TicketPrice(decimal.RequireFromString("33.33"), TicketVIP)

	require.NoError(t, err)
	assert.True(t, price.Equal(decimal.RequireFromString("50")), "got %v", price)
}

func TestTicket_Sold(t *testing.T) {
	assert.False(t, Ticket{}.Sold())
	assert.True(t, Ticket{UserID: 7}.Sold())
}
