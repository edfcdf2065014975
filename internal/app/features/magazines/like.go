// internal/app/features/magazines/like.go
package magazines

import (
	"context"
	"errors"
	"net/http"

	magazinestore "github.com/dalemusser/magazinehub/internal/app/store/magazines"
	sysauth "github.com/dalemusser/magazinehub/internal/app/system/auth"
	"github.com/dalemusser/magazinehub/internal/app/system/httperr"
	"github.com/dalemusser/magazinehub/internal/app/system/timeouts"
)

// likeResponse is the body returned by the like toggle.
type likeResponse struct {
	Likes   int64 `json:"likes"`
	IsLiked bool  `json:"isLiked"`
}

// HandleLike handles POST /api/magazines/{id}/like. A second toggle from the
// same user removes the like; the counter and membership set move together in
// one atomic update.
func (h *Handler) HandleLike(w http.ResponseWriter, r *http.Request) {
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

	likes, liked, err := h.Magazines.ToggleLike(ctx, id, user.ID)
	if err != nil {
		if errors.Is(err, magazinestore.ErrNotFound) {
			httperr.Write(w, h.Log, httperr.NotFound("Magazine"))
			return
		}
		httperr.Write(w, h.Log, err)
		return
	}

	httperr.JSON(w, http.StatusOK, likeResponse{Likes: likes, IsLiked: liked})
}
