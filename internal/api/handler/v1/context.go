package v1

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/mhruska/concerts-api/internal/api/handler/v1/response"
	"github.com/mhruska/concerts-api/internal/api/middleware"
	"github.com/mhruska/concerts-api/internal/domain"
	"github.com/mhruska/concerts-api/internal/pkg/jwthelper"
	"github.com/mhruska/concerts-api/internal/service"
)

var errStaleToken = errors.New("token no longer resolves to a user")

// getUserFromContext re-resolves the token's user against the database,
// so a token issued to a since-deleted account stops working immediately
// instead of living until expiry.
func getUserFromContext(ctx *gin.Context, uSvc UserService) (domain.User, *response.Err) {
	value, exists := ctx.Get(middleware.ContextKeyClaims)
	if !exists {
		return domain.User{}, response.ErrUnauthorized(errors.New("missing token claims"))
	}

	claims, ok := value.(*jwthelper.Claims)
	if !ok {
		return domain.User{}, response.ErrUnauthorized(errors.New("malformed token claims"))
	}

	user, err := uSvc.GetUser(ctx.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return domain.User{}, response.ErrUnauthorized(errStaleToken)
		}

		err = fmt.Errorf("getUserFromContext -> uSvc.GetUser -> %w", err)

		return domain.User{}, response.ErrInternalServerError(err)
	}

	return user, nil
}
