package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/fleet-manager/internal/apperr"
	"github.com/BruksfildServices01/fleet-manager/internal/auth"
	"github.com/BruksfildServices01/fleet-manager/internal/domain/account"
	"github.com/BruksfildServices01/fleet-manager/internal/httperr"
)

const (
	ContextUserID    = "userID"
	ContextUserEmail = "userEmail"
)

// The scheme prefix is matched literally, trailing space included.
const bearerPrefix = "Bearer "

// resolveClaims parses and verifies the bearer token, writing the 401 itself
// on failure. The boolean reports whether the request may proceed.
func resolveClaims(c *gin.Context, tokens *auth.TokenService) (*auth.Claims, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		httperr.AuthFailed(c, "Authorization header missing")
		return nil, false
	}

	if !strings.HasPrefix(header, bearerPrefix) {
		httperr.AuthFailed(c, "Invalid authorization format. Use Bearer token")
		return nil, false
	}

	tokenString := header[len(bearerPrefix):]
	if tokenString == "" {
		httperr.AuthFailed(c, "Access token required")
		return nil, false
	}

	claims, err := tokens.Verify(tokenString)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrTokenExpired):
			httperr.AuthFailed(c, "Token expired")
		case errors.Is(err, auth.ErrTokenMissingClaim):
			httperr.AuthFailed(c, "Invalid token payload")
		default:
			httperr.AuthFailed(c, "Invalid token")
		}
		return nil, false
	}

	return claims, true
}

// AuthMiddleware resolves the request's identity or rejects with 401. The
// resolved user comes from the store on every request, not from the token
// payload, so a deleted account is locked out immediately even while its
// token is formally valid. The lookup projection never includes the password
// hash.
func AuthMiddleware(tokens *auth.TokenService, users account.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := resolveClaims(c, tokens)
		if !ok {
			return
		}

		user, err := users.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if apperr.IsKind(err, apperr.KindNotFound) {
				httperr.AuthFailed(c, "User not found")
			} else {
				httperr.AuthFailed(c, "Authentication failed")
			}
			return
		}

		c.Set(ContextUserID, user.ID)
		c.Set(ContextUserEmail, user.Email)

		c.Next()
	}
}

// TokenMiddleware authenticates from the token alone, with no store lookup.
// The profile read uses it so a valid token whose user has since been deleted
// reaches the handler and comes back 404 from the lookup there, rather than
// being cut off at the gate with 401.
func TokenMiddleware(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := resolveClaims(c, tokens)
		if !ok {
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserEmail, claims.Email)

		c.Next()
	}
}
