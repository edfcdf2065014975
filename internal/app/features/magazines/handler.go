// Package magazines implements the magazine CRUD endpoints plus the view
// counter, like toggle, and header-menu listings.
package magazines

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	magazinestore "github.com/dalemusser/magazinehub/internal/app/store/magazines"
	userstore "github.com/dalemusser/magazinehub/internal/app/store/users"
	"github.com/dalemusser/magazinehub/internal/app/system/httperr"
	"github.com/dalemusser/magazinehub/internal/app/system/limits"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Handler holds the dependencies for the magazine endpoints.
type Handler struct {
	Magazines *magazinestore.Store
	Users     *userstore.Store
	Log       *zap.Logger
}

// NewHandler constructs a magazines Handler.
func NewHandler(magazines *magazinestore.Store, users *userstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Magazines: magazines, Users: users, Log: logger}
}

// magazineID parses the {id} URL parameter. A malformed ID reads the same as
// a missing magazine.
func magazineID(r *http.Request) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		return primitive.NilObjectID, httperr.NotFound("Magazine")
	}
	return id, nil
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
