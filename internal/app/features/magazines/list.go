// internal/app/features/magazines/list.go
package magazines

import (
	"context"
	"net/http"

	magazinestore "github.com/dalemusser/magazinehub/internal/app/store/magazines"
	"github.com/dalemusser/magazinehub/internal/app/system/httperr"
	"github.com/dalemusser/magazinehub/internal/app/system/paging"
	"github.com/dalemusser/magazinehub/internal/app/system/timeouts"
	"github.com/dalemusser/magazinehub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// listResponse is one page of published magazines.
type listResponse struct {
	Magazines  []magazineView `json:"magazines"`
	Pagination paging.Meta    `json:"pagination"`
}

// HandleList handles GET /api/magazines.
//
// Query parameters: page, limit, category, menuId, sort
// (latest|popular|views).
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	p := paging.Parse(r)

	f := magazinestore.ListFilter{Sort: query.Get(r, "sort")}

	if category := query.Get(r, "category"); category != "" {
		if !models.ValidCategory(category) {
			httperr.Write(w, h.Log, httperr.Validation("Unknown category."))
			return
		}
		f.Category = category
	}
	if menu := query.Get(r, "menuId"); menu != "" {
		menuID, err := primitive.ObjectIDFromHex(menu)
		if err != nil {
			httperr.Write(w, h.Log, httperr.Validation("Invalid menu id."))
			return
		}
		f.MenuID = &menuID
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, total, err := h.Magazines.List(ctx, f, p.Skip(), p.Limit64())
	if err != nil {
		httperr.Write(w, h.Log, err)
		return
	}

	authors, err := h.Users.ListByIDs(ctx, authorIDs(items))
	if err != nil {
		httperr.Write(w, h.Log, err)
		return
	}

	views := make([]magazineView, 0, len(items))
	for i := range items {
		views = append(views, newMagazineView(&items[i], authors[items[i].Author], false))
	}

	httperr.JSON(w, http.StatusOK, listResponse{
		Magazines:  views,
		Pagination: paging.NewMeta(p, total),
	})
}
