package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const ownerIDKey = "owner_id"

// Claims are the session token claims minted at login.
type Claims struct {
	OwnerID string `json:"owner_id"`
	Name    string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// NewToken signs a 24h session token for one partner.
func NewToken(secret []byte, ownerID, name string) (string, error) {
	claims := Claims{
		OwnerID: ownerID,
		Name:    name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// RequireAuth validates the bearer token and puts the partner's owner ID into
// the gin context. Every handler gets its identity from here, never from
// ambient state.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString := strings.TrimPrefix(header, "Bearer ")
		if header == "" || tokenString == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "bearer token required"})
			return
		}

		token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		claims, ok := token.Claims.(*Claims)
		if !ok || strings.TrimSpace(claims.OwnerID) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
			return
		}

		c.Set(ownerIDKey, claims.OwnerID)
		c.Next()
	}
}

// OwnerID returns the authenticated partner's ID set by RequireAuth.
func OwnerID(c *gin.Context) string {
	if v, ok := c.Get(ownerIDKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
