package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mhruska/concerts-api/internal/pkg/jwthelper"
)

// ContextKeyClaims is where VerifyJWT stores the decoded token claims.
const ContextKeyClaims = "jwt_claims"

var errMissingToken = errors.New("missing or malformed authorization header")

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

// VerifyJWT rejects the request with 401 unless it carries a valid
// bearer token. The decoded claims are stored in the gin context for
// handlers to resolve the caller.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			abortUnauthorized(ctx, errMissingToken)

			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, token)
		if err != nil {
			abortUnauthorized(ctx, err)

			return
		}

		ctx.Set(ContextKeyClaims, claims)

		ctx.Next()
	}
}

func abortUnauthorized(ctx *gin.Context, err error) {
	ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"status": http.StatusUnauthorized,
		"error":  err.Error(),
	})
}
