// internal/app/store/siteconfig/siteconfigstore.go
package siteconfigstore

import (
	"context"
	"time"

	"github.com/dalemusser/magazinehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the site_config collection, which holds a single
// keyed document. The unique index on config_key keeps it a singleton even
// when concurrent requests race to create it.
type Store struct {
	c *mongo.Collection
}

// New creates a new site config store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("site_config")}
}

// GetOrCreate returns the site configuration, creating it with defaults on
// first read. The upsert only sets fields on insert, so two racing callers
// both observe the same stored document.
func (s *Store) GetOrCreate(ctx context.Context) (models.SiteConfig, error) {
	now := time.Now().UTC()
	filter := bson.M{"config_key": models.SiteConfigKey}
	update := bson.M{
		"$setOnInsert": bson.M{
			"_id":        primitive.NewObjectID(),
			"config_key": models.SiteConfigKey,
			"site_title": models.DefaultSiteTitle,
			"logo_text":  models.DefaultLogoText,
			"menus":      []models.Menu{},
			"created_at": now,
			"updated_at": now,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var cfg models.SiteConfig
	if err := s.c.FindOneAndUpdate(ctx, filter, update, opts).Decode(&cfg); err != nil {
		return models.SiteConfig{}, err
	}
	return cfg, nil
}

// Update holds the fields a save may change. Nil pointers leave the stored
// value untouched, so a request can update the logo without resending menus.
type Update struct {
	SiteTitle *string
	LogoText  *string
	Menus     *[]models.Menu
}

// Save applies upd to the configuration document and returns the updated
// config. Uses upsert so it works whether the document exists or not.
func (s *Store) Save(ctx context.Context, upd Update) (models.SiteConfig, error) {
	now := time.Now().UTC()

	set := bson.M{"updated_at": now}
	if upd.SiteTitle != nil {
		set["site_title"] = *upd.SiteTitle
	}
	if upd.LogoText != nil {
		set["logo_text"] = *upd.LogoText
	}
	if upd.Menus != nil {
		menus := *upd.Menus
		for i := range menus {
			if menus[i].ID.IsZero() {
				menus[i].ID = primitive.NewObjectID()
			}
		}
		set["menus"] = menus
	}

	filter := bson.M{"config_key": models.SiteConfigKey}
	update := bson.M{
		"$set": set,
		"$setOnInsert": bson.M{
			"_id":        primitive.NewObjectID(),
			"config_key": models.SiteConfigKey,
			"created_at": now,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var cfg models.SiteConfig
	if err := s.c.FindOneAndUpdate(ctx, filter, update, opts).Decode(&cfg); err != nil {
		return models.SiteConfig{}, err
	}

	// A save that omits branding fields can still hit the insert path; fill
	// the defaults the read path would have created.
	changed := bson.M{}
	if cfg.SiteTitle == "" && upd.SiteTitle == nil {
		cfg.SiteTitle = models.DefaultSiteTitle
		changed["site_title"] = cfg.SiteTitle
	}
	if cfg.LogoText == "" && upd.LogoText == nil {
		cfg.LogoText = models.DefaultLogoText
		changed["logo_text"] = cfg.LogoText
	}
	if len(changed) > 0 {
		if _, err := s.c.UpdateOne(ctx, filter, bson.M{"$set": changed}); err != nil {
			return models.SiteConfig{}, err
		}
	}
	if cfg.Menus == nil {
		cfg.Menus = []models.Menu{}
	}
	return cfg, nil
}

// Exists reports whether the configuration document has been created.
func (s *Store) Exists(ctx context.Context) (bool, error) {
	count, err := s.c.CountDocuments(ctx, bson.M{"config_key": models.SiteConfigKey})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
