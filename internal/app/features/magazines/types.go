// internal/app/features/magazines/types.go
package magazines

import (
	"time"

	userstore "github.com/dalemusser/magazinehub/internal/app/store/users"
	"github.com/dalemusser/magazinehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// authorView is the author block embedded in magazine responses.
type authorView struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Image *string `json:"image"`
	Bio   string  `json:"bio,omitempty"`
}

// magazineView is the wire shape of a magazine. IsLiked is present only on
// detail responses for a signed-in viewer.
type magazineView struct {
	ID          string                 `json:"id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Content     string                 `json:"content"`
	CoverImage  *string                `json:"coverImage"`
	Images      []models.MagazineImage `json:"images"`
	Videos      []models.MagazineVideo `json:"videos"`
	Author      authorView             `json:"author"`
	Category    string                 `json:"category"`
	Tags        []string               `json:"tags"`
	ViewCount   int64                  `json:"viewCount"`
	Likes       int64                  `json:"likes"`
	Status      string                 `json:"status"`
	MenuID      *string                `json:"menuId"`
	PublishedAt time.Time              `json:"publishedAt"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
	IsLiked     *bool                  `json:"isLiked,omitempty"`
}

// newMagazineView renders m with its author block. The zero AuthorSummary
// still produces a well-formed response if the author account is gone.
func newMagazineView(m *models.Magazine, author userstore.AuthorSummary, withBio bool) magazineView {
	a := authorView{
		ID:    m.Author.Hex(),
		Name:  author.Name,
		Image: author.Image,
	}
	if withBio {
		a.Bio = author.Bio
	}

	var menuID *string
	if m.MenuID != nil {
		hex := m.MenuID.Hex()
		menuID = &hex
	}

	v := magazineView{
		ID:          m.ID.Hex(),
		Title:       m.Title,
		Description: m.Description,
		Content:     m.Content,
		CoverImage:  m.CoverImage,
		Images:      m.Images,
		Videos:      m.Videos,
		Author:      a,
		Category:    m.Category,
		Tags:        m.Tags,
		ViewCount:   m.ViewCount,
		Likes:       m.Likes,
		Status:      m.Status,
		MenuID:      menuID,
		PublishedAt: m.PublishedAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if v.Images == nil {
		v.Images = []models.MagazineImage{}
	}
	if v.Videos == nil {
		v.Videos = []models.MagazineVideo{}
	}
	if v.Tags == nil {
		v.Tags = []string{}
	}
	return v
}

// authorIDs collects the distinct author IDs from a page of magazines.
func authorIDs(items []models.Magazine) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]struct{}, len(items))
	out := make([]primitive.ObjectID, 0, len(items))
	for i := range items {
		if _, ok := seen[items[i].Author]; ok {
			continue
		}
		seen[items[i].Author] = struct{}{}
		out = append(out, items[i].Author)
	}
	return out
}
