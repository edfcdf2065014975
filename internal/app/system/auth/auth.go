// Package auth attaches the authenticated user to the request context from a
// bearer token and gates routes that need one. Every request passes through
// Authenticate so public handlers can still see who is asking; RequireUser
// rejects requests with no valid identity.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/magazinehub/internal/app/system/httperr"
	"github.com/dalemusser/magazinehub/internal/app/system/timeouts"
	"github.com/dalemusser/magazinehub/internal/app/system/token"
	"github.com/dalemusser/magazinehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type ctxKey string

const (
	currentUserKey ctxKey = "currentUser"
	tokenErrKey    ctxKey = "tokenErr"
)

// UserLoader fetches the account behind a verified token.
type UserLoader interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// Middleware holds the dependencies for request authentication.
type Middleware struct {
	Users  UserLoader
	Tokens *token.Service
	Log    *zap.Logger
}

// CurrentUser returns the user attached by Authenticate and a "found?" flag.
func CurrentUser(r *http.Request) (*models.User, bool) {
	u, ok := r.Context().Value(currentUserKey).(*models.User)
	return u, ok
}

// WithTestUser returns a copy of r with u attached as the current user.
// For handler tests only.
func WithTestUser(r *http.Request, u *models.User) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

// bearerToken extracts the token from the Authorization header, or "".
func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	scheme, rest, found := strings.Cut(h, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(rest)
}

// Authenticate resolves the bearer token, if any, and injects the user into
// the request context. Requests without a token pass through untouched;
// requests with a bad token also pass through, carrying the verification
// error so RequireUser can report why.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := bearerToken(r)
		if raw == "" {
			next.ServeHTTP(w, r)
			return
		}

		userID, err := m.Tokens.Verify(raw)
		if err != nil {
			r = r.WithContext(context.WithValue(r.Context(), tokenErrKey, err))
			next.ServeHTTP(w, r)
			return
		}

		oid, err := primitive.ObjectIDFromHex(userID)
		if err != nil {
			r = r.WithContext(context.WithValue(r.Context(), tokenErrKey, token.ErrInvalid))
			next.ServeHTTP(w, r)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
		u, err := m.Users.GetByID(ctx, oid)
		cancel()
		if err != nil {
			// A deleted account with a live token reads as an invalid token.
			m.Log.Debug("token user lookup failed", zap.String("user_id", userID), zap.Error(err))
			r = r.WithContext(context.WithValue(r.Context(), tokenErrKey, token.ErrInvalid))
			next.ServeHTTP(w, r)
			return
		}

		u.Password = ""
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), currentUserKey, u)))
	})
}

// RequireUser ensures there is a user in context (set by Authenticate) and
// responds 401 otherwise, distinguishing expired tokens so clients can
// prompt a fresh sign-in.
func (m *Middleware) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); ok {
			next.ServeHTTP(w, r)
			return
		}

		tokenErr, _ := r.Context().Value(tokenErrKey).(error)
		switch {
		case errors.Is(tokenErr, token.ErrExpired):
			httperr.Write(w, m.Log, httperr.Auth("Your session has expired. Please sign in again."))
		case tokenErr != nil:
			httperr.Write(w, m.Log, httperr.Auth("Invalid authentication token."))
		default:
			httperr.Write(w, m.Log, httperr.Auth("Authentication required."))
		}
	})
}
