package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt"

	"dcdn-backend/utils/response"
)

type contextKey string

const principalContextKey contextKey = "principal"

// AuthMiddleware verifies caller tokens and exposes the opaque principal
// they carry. Token issuance happens elsewhere; this only consumes identity.
type AuthMiddleware struct {
	jwtSecret string
}

func NewAuthMiddleware(jwtSecret string) *AuthMiddleware {
	return &AuthMiddleware{jwtSecret: jwtSecret}
}

func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := bearerToken(r)
		if tokenString == "" {
			if cookie, err := r.Cookie("token"); err == nil {
				tokenString = cookie.Value
			}
		}
		if tokenString == "" {
			response.Error(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		principal, err := m.validateToken(tokenString)
		if err != nil {
			response.Error(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), principalContextKey, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

func (m *AuthMiddleware) validateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(m.jwtSecret), nil
	})

	if err != nil || !token.Valid {
		return "", err
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", jwt.ErrInvalidKey
	}

	principal, ok := mapClaims["principal"].(string)
	if !ok || principal == "" {
		return "", jwt.ErrInvalidKey
	}

	return principal, nil
}

// PrincipalFromContext returns the caller identity set by RequireAuth, or ""
// when the request was not authenticated.
func PrincipalFromContext(ctx context.Context) string {
	principal, ok := ctx.Value(principalContextKey).(string)
	if !ok {
		return ""
	}
	return principal
}
