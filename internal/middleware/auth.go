package middleware

import (
	"net/http"
	"strings"

	"github.com/21edclique/preciosMayorista/internal/apierror"
	"github.com/21edclique/preciosMayorista/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	ClaimsKey = "claims"
)

// JWTClaims are the custom claims embedded in every access token.
// RolID is compared numerically against model.RolAdministrador; the role
// name is never consulted.
type JWTClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	RolID    uint   `json:"rol_id"`
	jwt.RegisteredClaims
}

// EsAdministrador reports whether the token belongs to role 1.
func (c *JWTClaims) EsAdministrador() bool {
	return c.RolID == model.RolAdministrador
}

// UsuarioID returns the caller's id as a uuid. A zero uuid means the token
// carried a malformed id, which only happens with a foreign signing key.
func (c *JWTClaims) UsuarioID() uuid.UUID {
	id, _ := uuid.Parse(c.UserID)
	return id
}

// JWTAuth validates the Bearer token on every protected route.
// Both the missing and the invalid token case answer 401.
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Acceso denegado. No hay token"))
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims := &JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token invalido o expirado"))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// RequireAdmin rejects requests whose JWT role is not the administrator role.
// Admin-only mutations are gated here server-side, not just hidden in the UI.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := c.MustGet(ClaimsKey).(*JWTClaims)
		if !ok || !claims.EsAdministrador() {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("Permisos insuficientes"))
			return
		}
		c.Next()
	}
}

// GetClaims is a helper to retrieve typed claims from the Gin context.
func GetClaims(c *gin.Context) *JWTClaims {
	claims, _ := c.MustGet(ClaimsKey).(*JWTClaims)
	return claims
}
