package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"go-genie-backend/config"
	"go-genie-backend/internal/delivery/http/response"
	"go-genie-backend/internal/domain"
	"go-genie-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware verifies Supabase-issued JWTs for donor-scoped routes.
// HS256 tokens verify against the shared secret, RS256 against the JWKS.
func AuthMiddleware(jwksProvider *auth.Provider, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required")
			c.Abort()
			return
		}

		sub, email, err := verifyToken(tokenString, jwksProvider, cfg)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token")
			c.Abort()
			return
		}

		attachIdentity(c, sub, email)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches the caller's identity when a valid token is
// present and stays silent otherwise. For public routes whose behavior is
// enriched for logged-in donors, like the discover last-search cache.
func OptionalAuthMiddleware(jwksProvider *auth.Provider, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := extractToken(c); tokenString != "" {
			if sub, email, err := verifyToken(tokenString, jwksProvider, cfg); err == nil {
				attachIdentity(c, sub, email)
			}
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie("auth_token"); err == nil {
		return cookie
	}
	return ""
}

func verifyToken(tokenString string, jwksProvider *auth.Provider, cfg *config.Config) (string, string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); ok {
			if cfg.SupabaseJWTSecret == "" {
				return nil, fmt.Errorf("HS256 token received but SUPABASE_JWT_SECRET is not configured")
			}
			return []byte(cfg.SupabaseJWTSecret), nil
		}

		if _, ok := token.Method.(*jwt.SigningMethodRSA); ok {
			return jwksProvider.KeyFunc(token)
		}

		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	})
	if err != nil {
		return "", "", err
	}
	if !token.Valid {
		return "", "", fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", fmt.Errorf("invalid claims")
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", "", fmt.Errorf("token has no subject")
	}
	email, _ := claims["email"].(string)

	return sub, email, nil
}

// attachIdentity stores the subject in gin's key map and on the request
// context. Usecases read the request context, which requires the router's
// ContextWithFallback to be on.
func attachIdentity(c *gin.Context, sub, email string) {
	c.Set(string(domain.KeyUserID), sub)
	c.Set(string(domain.KeyUserEmail), email)

	ctx := context.WithValue(c.Request.Context(), domain.KeyUserID, sub)
	ctx = context.WithValue(ctx, domain.KeyUserEmail, email)
	c.Request = c.Request.WithContext(ctx)
}
