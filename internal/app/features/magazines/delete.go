// internal/app/features/magazines/delete.go
package magazines

import (
	"context"
	"errors"
	"net/http"

	magazinestore "github.com/dalemusser/magazinehub/internal/app/store/magazines"
	sysauth "github.com/dalemusser/magazinehub/internal/app/system/auth"
	"github.com/dalemusser/magazinehub/internal/app/system/httperr"
	"github.com/dalemusser/magazinehub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// HandleDelete handles DELETE /api/magazines/{id}. Only the author may
// delete.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user, ok := sysauth.CurrentUser(r)
	if !ok {
		httperr.Write(w, h.Log, httperr.Auth("Authentication required."))
		return
	}

	id, err := magazineID(r)
	if err != nil {
		httperr.Write(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	existing, err := h.Magazines.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, magazinestore.ErrNotFound) {
			httperr.Write(w, h.Log, httperr.NotFound("Magazine"))
			return
		}
		httperr.Write(w, h.Log, err)
		return
	}
	if existing.Author != user.ID {
		httperr.Write(w, h.Log, httperr.Forbidden("You do not have permission to modify this magazine."))
		return
	}

	if err := h.Magazines.Delete(ctx, id); err != nil {
		if errors.Is(err, magazinestore.ErrNotFound) {
			httperr.Write(w, h.Log, httperr.NotFound("Magazine"))
			return
		}
		httperr.Write(w, h.Log, err)
		return
	}

	h.Log.Info("magazine deleted",
		zap.String("magazine_id", id.Hex()),
		zap.String("author_id", user.ID.Hex()))
	httperr.Message(w, http.StatusOK, "Magazine deleted successfully.")
}
