// internal/domain/models/magazine.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Magazine publication statuses.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Magazine categories.
const (
	CategoryLifestyle = "lifestyle"
	CategoryTech      = "tech"
	CategoryTravel    = "travel"
	CategoryFood      = "food"
	CategoryFashion   = "fashion"
	CategoryOther     = "other"
)

// MagazineImage is an image attached to a magazine's content.
type MagazineImage struct {
	Filename   string    `bson:"filename" json:"filename"`
	URL        string    `bson:"url" json:"url"`
	UploadedAt time.Time `bson:"uploaded_at" json:"uploadedAt"`
}

// Video source types.
const (
	VideoTypeUpload = "upload"
	VideoTypeEmbed  = "embed"
)

// MagazineVideo is a video attached to a magazine's content, either an
// uploaded file or an embedded external player.
type MagazineVideo struct {
	Filename   string    `bson:"filename" json:"filename"`
	URL        string    `bson:"url" json:"url"`
	VideoType  string    `bson:"video_type" json:"videoType"` // upload | embed
	UploadedAt time.Time `bson:"uploaded_at" json:"uploadedAt"`
}

// MagazineComment is an embedded reader comment.
// The schema exists for compatibility with stored documents; no route
// exposes comments.
type MagazineComment struct {
	Author    primitive.ObjectID `bson:"author" json:"author"`
	Content   string             `bson:"content" json:"content"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}

// Magazine is a blog-style post with rich-text HTML content.
//
// Invariants:
//   - Likes always equals len(LikedBy); both are only ever changed together
//     in a single atomic update.
//   - Author is set at creation and never reassigned.
type Magazine struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title       string               `bson:"title" json:"title"`
	Description string               `bson:"description" json:"description"`
	Content     string               `bson:"content" json:"content"`
	CoverImage  *string              `bson:"cover_image" json:"coverImage"`
	Images      []MagazineImage      `bson:"images" json:"images"`
	Videos      []MagazineVideo      `bson:"videos" json:"videos"`
	Author      primitive.ObjectID   `bson:"author" json:"-"`
	Category    string               `bson:"category" json:"category"`
	Tags        []string             `bson:"tags" json:"tags"`
	ViewCount   int64                `bson:"view_count" json:"viewCount"`
	Likes       int64                `bson:"likes" json:"likes"`
	LikedBy     []primitive.ObjectID `bson:"liked_by" json:"-"`
	Comments    []MagazineComment    `bson:"comments" json:"-"`
	Status      string               `bson:"status" json:"status"` // draft | published
	MenuID      *primitive.ObjectID  `bson:"menu_id" json:"menuId"`
	PublishedAt time.Time            `bson:"published_at" json:"publishedAt"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// LikedByUser reports whether userID is in the magazine's liked-by set.
func (m *Magazine) LikedByUser(userID primitive.ObjectID) bool {
	for _, id := range m.LikedBy {
		if id == userID {
			return true
		}
	}
	return false
}

// ValidCategory reports whether category is one of the defined categories.
func ValidCategory(category string) bool {
	switch category {
	case CategoryLifestyle, CategoryTech, CategoryTravel, CategoryFood, CategoryFashion, CategoryOther:
		return true
	}
	return false
}

// ValidStatus reports whether status is a defined publication status.
func ValidStatus(status string) bool {
	return status == StatusDraft || status == StatusPublished
}
