// internal/app/features/magazines/create.go
package magazines

import (
	"context"
	"net/http"
	"strings"

	sysauth "github.com/dalemusser/magazinehub/internal/app/system/auth"
	"github.com/dalemusser/magazinehub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/magazinehub/internal/app/system/httperr"
	"github.com/dalemusser/magazinehub/internal/app/system/timeouts"
	"github.com/dalemusser/magazinehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type createRequest struct {
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Content     string                 `json:"content"`
	CoverImage  *string                `json:"coverImage"`
	Images      []models.MagazineImage `json:"images"`
	Videos      []models.MagazineVideo `json:"videos"`
	Category    string                 `json:"category"`
	Tags        []string               `json:"tags"`
	Status      string                 `json:"status"`
	MenuID      *string                `json:"menuId"`
}

// HandleCreate handles POST /api/magazines. The signed-in user becomes the
// author; content HTML is sanitized before it is stored.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user, ok := sysauth.CurrentUser(r)
	if !ok {
		httperr.Write(w, h.Log, httperr.Auth("Authentication required."))
		return
	}

	var req createRequest
	if err := decodeJSON(w, r, &req); err != nil {
		httperr.Write(w, h.Log, err)
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" || strings.TrimSpace(req.Content) == "" {
		httperr.Write(w, h.Log, httperr.Validation("Title and content are required."))
		return
	}
	if req.Category != "" && !models.ValidCategory(req.Category) {
		httperr.Write(w, h.Log, httperr.Validation("Unknown category."))
		return
	}
	if req.Status != "" && !models.ValidStatus(req.Status) {
		httperr.Write(w, h.Log, httperr.Validation("Status must be draft or published."))
		return
	}

	var menuID *primitive.ObjectID
	if req.MenuID != nil && *req.MenuID != "" {
		oid, err := primitive.ObjectIDFromHex(*req.MenuID)
		if err != nil {
			httperr.Write(w, h.Log, httperr.Validation("Invalid menu id."))
			return
		}
		menuID = &oid
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	m, err := h.Magazines.Create(ctx, models.Magazine{
		Title:       req.Title,
		Description: req.Description,
		Content:     htmlsanitize.Sanitize(req.Content),
		CoverImage:  req.CoverImage,
		Images:      req.Images,
		Videos:      req.Videos,
		Author:      user.ID,
		Category:    req.Category,
		Tags:        req.Tags,
		Status:      req.Status,
		MenuID:      menuID,
	})
	if err != nil {
		httperr.Write(w, h.Log, err)
		return
	}

	h.Log.Info("magazine created",
		zap.String("magazine_id", m.ID.Hex()),
		zap.String("author_id", user.ID.Hex()))

	authors, err := h.Users.ListByIDs(ctx, []primitive.ObjectID{user.ID})
	if err != nil {
		httperr.Write(w, h.Log, err)
		return
	}
	httperr.JSON(w, http.StatusCreated, newMagazineView(&m, authors[user.ID], false))
}
