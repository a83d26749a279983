package domain

type Band struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Genres      string `json:"genres"`
	Description string `json:"description"`
}
