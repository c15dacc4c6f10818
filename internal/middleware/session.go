package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/floramar/flower-service/internal/domain/dto"
	"github.com/floramar/flower-service/internal/service"
)

// SessionAuth returns a middleware that requires a valid cart session token
// and rejects requests whose token is not bound to the cart in the path.
// Carts have no accounts behind them; the token only stops one client from
// reading or mutating another client's cart.
func SessionAuth(sessions *service.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			abortUnauthorized(c, "Missing session token")
			return
		}

		cartID, err := sessions.VerifyToken(token)
		if err != nil {
			abortUnauthorized(c, "Invalid session token")
			return
		}

		if pathCartID := c.Param("id"); pathCartID != "" && pathCartID != cartID {
			abortUnauthorized(c, "Session token is not bound to this cart")
			return
		}

		c.Set("cart_id", cartID)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return c.GetHeader("X-Session-Token")
}

func abortUnauthorized(c *gin.Context, message string) {
	errorResp := dto.NewError(dto.ErrCodeUnauthorized, message).
		WithRequestID(GetRequestID(c))
	c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
}
