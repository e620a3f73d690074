package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pkordes/travelbook/internal/domain"
)

type userContextKey struct{}

// TokenVerifier validates a bearer token and returns the user id it names.
type TokenVerifier interface {
	Verify(token string) (int64, error)
}

// UserFinder loads the user a token was issued for.
type UserFinder interface {
	GetByID(ctx context.Context, id int64) (domain.User, error)
}

// NewAuthenticator returns a middleware that resolves the logged user from an
// "Authorization: Bearer <token>" header and stores it in the request context.
// A missing or invalid token, or one naming a user that no longer exists,
// leaves the request anonymous and each handler decides whether it needs a
// user. Any other failure to load the user is answered with a 500.
func NewAuthenticator(tokens TokenVerifier, users UserFinder, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := tokens.Verify(raw)
			if err != nil {
				log.DebugContext(r.Context(), "rejected bearer token", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			user, err := users.GetByID(r.Context(), userID)
			if errors.Is(err, domain.ErrNotFound) {
				log.WarnContext(r.Context(), "token user not found", "user_id", userID)
				next.ServeHTTP(w, r)
				return
			}
			if err != nil {
				log.ErrorContext(r.Context(), "token user lookup failed", "user_id", userID, "error", err)
				writeError(w, http.StatusInternalServerError, "server.error", "internal server error")
				return
			}

			annotateUser(r.Context(), user.ID)
			next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), user)))
		})
	}
}

// UserFromContext returns the logged user placed in ctx by NewAuthenticator.
func UserFromContext(ctx context.Context) (domain.User, bool) {
	u, ok := ctx.Value(userContextKey{}).(domain.User)
	return u, ok
}

// ContextWithUser returns a copy of ctx carrying user as the logged user.
// Tests use it to simulate an authenticated request.
func ContextWithUser(ctx context.Context, user domain.User) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
