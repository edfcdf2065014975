// internal/app/features/siteconfig/update.go
package siteconfig

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	siteconfigstore "github.com/dalemusser/magazinehub/internal/app/store/siteconfig"
	"github.com/dalemusser/magazinehub/internal/app/system/httperr"
	"github.com/dalemusser/magazinehub/internal/app/system/timeouts"
	"github.com/dalemusser/magazinehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type menuInput struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Order int    `json:"order"`
}

// updateRequest carries the fields a save may change. Nil means the field
// was omitted and keeps its stored value.
type updateRequest struct {
	SiteTitle *string      `json:"siteTitle"`
	LogoText  *string      `json:"logoText"`
	Menus     *[]menuInput `json:"menus"`
}

// HandleUpdate handles PUT /api/config. Any signed-in user may save; the
// client decides who sees the settings screen.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		httperr.Write(w, h.Log, err)
		return
	}

	upd := siteconfigstore.Update{}

	if req.SiteTitle != nil {
		title := strings.TrimSpace(*req.SiteTitle)
		if title == "" {
			httperr.Write(w, h.Log, httperr.Validation("Site title cannot be empty."))
			return
		}
		upd.SiteTitle = &title
	}
	if req.LogoText != nil {
		logo := strings.TrimSpace(*req.LogoText)
		if logo == "" || utf8.RuneCountInString(logo) > models.MaxLogoTextLen {
			httperr.Write(w, h.Log, httperr.Validation(
				fmt.Sprintf("Logo text must be 1 to %d characters.", models.MaxLogoTextLen)))
			return
		}
		upd.LogoText = &logo
	}
	if req.Menus != nil {
		menus, err := buildMenus(*req.Menus)
		if err != nil {
			httperr.Write(w, h.Log, err)
			return
		}
		upd.Menus = &menus
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	cfg, err := h.Config.Save(ctx, upd)
	if err != nil {
		httperr.Write(w, h.Log, err)
		return
	}

	h.Log.Info("site config updated", zap.Int("menus", len(cfg.Menus)))
	httperr.JSON(w, http.StatusOK, cfg)
}

// buildMenus validates the submitted menus and preserves the IDs of existing
// ones so magazine menu references survive a save.
func buildMenus(in []menuInput) ([]models.Menu, error) {
	if len(in) > models.MaxMenus {
		return nil, httperr.Validation(
			fmt.Sprintf("At most %d menus are allowed.", models.MaxMenus))
	}

	menus := make([]models.Menu, 0, len(in))
	for _, m := range in {
		title := strings.TrimSpace(m.Title)
		if title == "" || utf8.RuneCountInString(title) > models.MaxMenuTitleLen {
			return nil, httperr.Validation(
				fmt.Sprintf("Menu titles must be 1 to %d characters.", models.MaxMenuTitleLen))
		}

		menu := models.Menu{Title: title, Order: m.Order}
		if m.ID != "" {
			oid, err := primitive.ObjectIDFromHex(m.ID)
			if err != nil {
				return nil, httperr.Validation("Invalid menu id.")
			}
			menu.ID = oid
		}
		menus = append(menus, menu)
	}
	return menus, nil
}
