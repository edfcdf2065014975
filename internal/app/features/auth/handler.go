// Package auth implements account registration, sign-in, and the
// current-user endpoint.
package auth

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	userstore "github.com/dalemusser/magazinehub/internal/app/store/users"
	"github.com/dalemusser/magazinehub/internal/app/system/httperr"
	"github.com/dalemusser/magazinehub/internal/app/system/limits"
	"github.com/dalemusser/magazinehub/internal/app/system/token"
	"go.uber.org/zap"
)

// Handler holds the dependencies for the auth endpoints.
type Handler struct {
	Users  *userstore.Store
	Tokens *token.Service
	Log    *zap.Logger
}

// NewHandler constructs an auth Handler.
func NewHandler(users *userstore.Store, tokens *token.Service, logger *zap.Logger) *Handler {
	return &Handler{Users: users, Tokens: tokens, Log: logger}
}

// decodeJSON reads a size-capped JSON body into dst, mapping malformed input
// to a validation error.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxJSONBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return httperr.Validation("Request body is required.")
		}
		return httperr.Validation("Invalid request body.")
	}
	return nil
}
