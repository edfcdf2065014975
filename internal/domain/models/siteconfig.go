// internal/domain/models/siteconfig.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SiteConfigKey is the fixed key of the single site configuration document.
// A unique index on config_key guarantees at most one document exists.
const SiteConfigKey = "site"

// Defaults used when the configuration document is created lazily.
const (
	DefaultSiteTitle = "YOUR MAGAZINE"
	DefaultLogoText  = "M"
)

// Site configuration limits.
const (
	MaxMenus        = 5 // header slots available in the client layout
	MaxMenuTitleLen = 6 // runes
	MaxLogoTextLen  = 2 // runes
)

// Menu is a named, ordered slot in the site header. Magazines reference a
// menu by its ID to appear under that slot.
type Menu struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title string             `bson:"title" json:"title"`
	Order int                `bson:"order" json:"order"`
}

// SiteConfig is the keyed singleton controlling site branding and the header
// menu structure. It is created with defaults on first read.
type SiteConfig struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ConfigKey string             `bson:"config_key" json:"-"`
	SiteTitle string             `bson:"site_title" json:"siteTitle"`
	LogoText  string             `bson:"logo_text" json:"logoText"`
	Menus     []Menu             `bson:"menus" json:"menus"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
