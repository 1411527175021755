package auth

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Carts are keyed by an anonymous session rather than a user account, so a
// visitor's cart survives reloads on the same browser without sign-up.
const sessionTTL = 30 * 24 * time.Hour

// POST /auth/session
func CreateSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := uuid.NewString()

		token, err := issueSessionToken(sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"session_id": sessionID,
			"token":      token,
			"expires_at": time.Now().Add(sessionTTL),
		})
	}
}

func issueSessionToken(sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"session_id": sessionID,
		"role":       "customer",
		"exp":        time.Now().Add(sessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
