// internal/app/features/magazines/detail.go
package magazines

import (
	"context"
	"errors"
	"net/http"

	magazinestore "github.com/dalemusser/magazinehub/internal/app/store/magazines"
	sysauth "github.com/dalemusser/magazinehub/internal/app/system/auth"
	"github.com/dalemusser/magazinehub/internal/app/system/httperr"
	"github.com/dalemusser/magazinehub/internal/app/system/timeouts"
	"github.com/dalemusser/magazinehub/internal/domain/models"
)

// HandleDetail handles GET /api/magazines/{id}.
//
// Every read counts as a view; the counter update and the read are one atomic
// operation, so the returned viewCount already includes this request.
func (h *Handler) HandleDetail(w http.ResponseWriter, r *http.Request) {
	id, err := magazineID(r)
	if err != nil {
		httperr.Write(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	m, err := h.Magazines.GetAndCountView(ctx, id)
	if err != nil {
		if errors.Is(err, magazinestore.ErrNotFound) {
			httperr.Write(w, h.Log, httperr.NotFound("Magazine"))
			return
		}
		httperr.Write(w, h.Log, err)
		return
	}

	authors, err := h.Users.ListByIDs(ctx, authorIDs([]models.Magazine{*m}))
	if err != nil {
		httperr.Write(w, h.Log, err)
		return
	}

	view := newMagazineView(m, authors[m.Author], true)
	if viewer, ok := sysauth.CurrentUser(r); ok {
		liked := m.LikedByUser(viewer.ID)
		view.IsLiked = &liked
	}

	httperr.JSON(w, http.StatusOK, view)
}
