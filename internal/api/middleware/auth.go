package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/tours-service/internal/api/handlers"
	"github.com/m04kA/tours-service/internal/domain"
	"github.com/m04kA/tours-service/internal/service/auth"
)

const (
	msgMissingToken = "Missing or invalid authorization header"
	msgInvalidToken = "Invalid or expired token"
)

// TokenParser проверяет JWT администратора
type TokenParser interface {
	ParseToken(token string) (*auth.Claims, error)
}

type viewerKey struct{}

// RequireAdmin пропускает только запросы с валидным токеном администратора
func RequireAdmin(parser TokenParser, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				log.Warn("%s %s - missing bearer token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			claims, err := parser.ParseToken(token)
			if err != nil {
				log.Warn("%s %s - invalid token: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			ctx := WithViewer(r.Context(), domain.Admin(claims.AdminID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalViewer определяет, кто смотрит публичные страницы.
// Без токена или с невалидным токеном запрос идёт как от посетителя.
func OptionalViewer(parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			viewer := domain.Visitor
			if token, ok := bearerToken(r); ok {
				if claims, err := parser.ParseToken(token); err == nil {
					viewer = domain.Admin(claims.AdminID)
				}
			}
			next.ServeHTTP(w, r.WithContext(WithViewer(r.Context(), viewer)))
		})
	}
}

// WithViewer кладёт viewer в контекст
func WithViewer(ctx context.Context, viewer domain.Viewer) context.Context {
	return context.WithValue(ctx, viewerKey{}, viewer)
}

// GetViewer возвращает viewer из контекста; по умолчанию посетитель
func GetViewer(ctx context.Context) domain.Viewer {
	if v, ok := ctx.Value(viewerKey{}).(domain.Viewer); ok {
		return v
	}
	return domain.Visitor
}

// GetAdminID возвращает ID администратора, если запрос от администратора
func GetAdminID(ctx context.Context) (int64, bool) {
	v := GetViewer(ctx)
	if !v.IsAdmin() {
		return 0, false
	}
	return v.AdminID, true
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if len(header) < len("Bearer ") || !strings.EqualFold(header[:len("Bearer ")], "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(header[len("Bearer "):])
	return token, token != ""
}
