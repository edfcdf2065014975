// internal/app/features/magazines/bymenu.go
package magazines

import (
	"context"
	"net/http"

	"github.com/dalemusser/magazinehub/internal/app/system/httperr"
	"github.com/dalemusser/magazinehub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// menuItemLimit caps how many magazine titles a header menu dropdown shows.
const menuItemLimit = 5

// menuItemView is one entry in a header menu dropdown.
type menuItemView struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// HandleByMenu handles GET /api/magazines/by-menu/{menuID}, returning the
// newest published magazine titles under a menu.
func (h *Handler) HandleByMenu(w http.ResponseWriter, r *http.Request) {
	menuID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "menuID"))
	if err != nil {
		httperr.Write(w, h.Log, httperr.Validation("Invalid menu id."))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	items, err := h.Magazines.ListByMenu(ctx, menuID, menuItemLimit)
	if err != nil {
		httperr.Write(w, h.Log, err)
		return
	}

	out := make([]menuItemView, 0, len(items))
	for _, it := range items {
		out = append(out, menuItemView{ID: it.ID.Hex(), Title: it.Title})
	}
	httperr.JSON(w, http.StatusOK, out)
}
