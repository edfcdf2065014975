// internal/app/features/magazines/update.go
package magazines

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	magazinestore "github.com/dalemusser/magazinehub/internal/app/store/magazines"
	sysauth "github.com/dalemusser/magazinehub/internal/app/system/auth"
	"github.com/dalemusser/magazinehub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/magazinehub/internal/app/system/httperr"
	"github.com/dalemusser/magazinehub/internal/app/system/timeouts"
	"github.com/dalemusser/magazinehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleUpdate handles PUT /api/magazines/{id}. Only the author may edit.
//
// The body is decoded field-by-field so an omitted field leaves the stored
// value alone while an explicit null clears nullable fields like coverImage
// and menuId.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
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

	var fields map[string]json.RawMessage
	if err := decodeJSON(w, r, &fields); err != nil {
		httperr.Write(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
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

	set, err := buildUpdateSet(fields)
	if err != nil {
		httperr.Write(w, h.Log, err)
		return
	}
	if len(set) == 0 {
		httperr.Write(w, h.Log, httperr.Validation("No updatable fields in request."))
		return
	}

	m, err := h.Magazines.Update(ctx, id, set)
	if err != nil {
		if errors.Is(err, magazinestore.ErrNotFound) {
			httperr.Write(w, h.Log, httperr.NotFound("Magazine"))
			return
		}
		httperr.Write(w, h.Log, err)
		return
	}

	h.Log.Info("magazine updated",
		zap.String("magazine_id", m.ID.Hex()),
		zap.String("author_id", user.ID.Hex()))

	authors, err := h.Users.ListByIDs(ctx, []primitive.ObjectID{m.Author})
	if err != nil {
		httperr.Write(w, h.Log, err)
		return
	}
	httperr.JSON(w, http.StatusOK, newMagazineView(m, authors[m.Author], false))
}

// buildUpdateSet converts the raw request fields into a $set document.
// Title, content, category, and status skip empty values; the other fields
// take whatever the request sent, including nulls.
func buildUpdateSet(fields map[string]json.RawMessage) (bson.M, error) {
	set := bson.M{}

	if raw, ok := fields["title"]; ok {
		var title string
		if err := json.Unmarshal(raw, &title); err != nil {
			return nil, httperr.Validation("Title must be a string.")
		}
		if title = strings.TrimSpace(title); title != "" {
			set["title"] = title
		}
	}
	if raw, ok := fields["content"]; ok {
		var content string
		if err := json.Unmarshal(raw, &content); err != nil {
			return nil, httperr.Validation("Content must be a string.")
		}
		if strings.TrimSpace(content) != "" {
			set["content"] = htmlsanitize.Sanitize(content)
		}
	}
	if raw, ok := fields["description"]; ok {
		var description string
		if err := json.Unmarshal(raw, &description); err != nil {
			return nil, httperr.Validation("Description must be a string.")
		}
		set["description"] = description
	}
	if raw, ok := fields["coverImage"]; ok {
		var cover *string
		if err := json.Unmarshal(raw, &cover); err != nil {
			return nil, httperr.Validation("coverImage must be a string or null.")
		}
		set["cover_image"] = cover
	}
	if raw, ok := fields["images"]; ok {
		var images []models.MagazineImage
		if err := json.Unmarshal(raw, &images); err != nil {
			return nil, httperr.Validation("images must be a list of image objects.")
		}
		set["images"] = images
	}
	if raw, ok := fields["videos"]; ok {
		var videos []models.MagazineVideo
		if err := json.Unmarshal(raw, &videos); err != nil {
			return nil, httperr.Validation("videos must be a list of video objects.")
		}
		set["videos"] = videos
	}
	if raw, ok := fields["category"]; ok {
		var category string
		if err := json.Unmarshal(raw, &category); err != nil {
			return nil, httperr.Validation("Category must be a string.")
		}
		if category != "" {
			if !models.ValidCategory(category) {
				return nil, httperr.Validation("Unknown category.")
			}
			set["category"] = category
		}
	}
	if raw, ok := fields["tags"]; ok {
		var tags []string
		if err := json.Unmarshal(raw, &tags); err != nil {
			return nil, httperr.Validation("Tags must be a list of strings.")
		}
		set["tags"] = tags
	}
	if raw, ok := fields["status"]; ok {
		var status string
		if err := json.Unmarshal(raw, &status); err != nil {
			return nil, httperr.Validation("Status must be a string.")
		}
		if status != "" {
			if !models.ValidStatus(status) {
				return nil, httperr.Validation("Status must be draft or published.")
			}
			set["status"] = status
		}
	}
	if raw, ok := fields["menuId"]; ok {
		var menu *string
		if err := json.Unmarshal(raw, &menu); err != nil {
			return nil, httperr.Validation("menuId must be a string or null.")
		}
		if menu == nil || *menu == "" {
			set["menu_id"] = nil
		} else {
			oid, err := primitive.ObjectIDFromHex(*menu)
			if err != nil {
				return nil, httperr.Validation("Invalid menu id.")
			}
			set["menu_id"] = oid
		}
	}

	return set, nil
}
