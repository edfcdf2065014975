// Package siteconfig implements the site branding and header menu endpoints
// backed by the keyed singleton configuration document.
package siteconfig

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	siteconfigstore "github.com/dalemusser/magazinehub/internal/app/store/siteconfig"
	"github.com/dalemusser/magazinehub/internal/app/system/httperr"
	"github.com/dalemusser/magazinehub/internal/app/system/limits"
	"go.uber.org/zap"
)

// Handler holds the dependencies for the site config endpoints.
type Handler struct {
	Config *siteconfigstore.Store
	Log    *zap.Logger
}

// NewHandler constructs a siteconfig Handler.
func NewHandler(config *siteconfigstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Config: config, Log: logger}
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
