// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
We aggregate errors so any problem is visible and startup can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureUsers(ctx, db); err != nil {
		problems = append(problems, "users: "+err.Error())
	}
	if err := ensureMagazines(ctx, db); err != nil {
		problems = append(problems, "magazines: "+err.Error())
	}
	if err := ensureSiteConfig(ctx, db); err != nil {
		problems = append(problems, "site_config: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func keySig(keys bson.D) string {
	parts := make([]string, 0, len(keys))
	for _, kv := range keys {
		parts = append(parts, fmt.Sprintf("%s:%v", kv.Key, kv.Value))
	}
	return strings.Join(parts, ", ")
}

func ensureIndexSet(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel) error {
	var errs []string

	for _, m := range models {
		var desiredName string
		var unique bool
		if m.Options != nil {
			if m.Options.Name != nil {
				desiredName = *m.Options.Name
			}
			if m.Options.Unique != nil {
				unique = *m.Options.Unique
			}
		}
		sig := keySig(m.Keys.(bson.D))

		start := time.Now()
		if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
			// An index with the same keys but different options already exists.
			// Drop it by name and recreate with the desired definition.
			if strings.Contains(err.Error(), "IndexOptionsConflict") && desiredName != "" {
				if _, dropErr := coll.Indexes().DropOne(ctx, desiredName); dropErr != nil {
					zap.L().Warn("dropping conflicting index failed",
						zap.String("collection", coll.Name()),
						zap.String("name", desiredName),
						zap.Error(dropErr))
				}
				if _, err = coll.Indexes().CreateOne(ctx, m); err == nil {
					zap.L().Info("index dropped and recreated",
						zap.String("collection", coll.Name()),
						zap.String("name", desiredName),
						zap.String("keys", sig),
						zap.Bool("unique", unique),
						zap.String("took", time.Since(start).String()))
					continue
				}
			}
			zap.L().Warn("index ensure failed",
				zap.String("collection", coll.Name()),
				zap.String("name", desiredName),
				zap.String("keys", sig),
				zap.Bool("unique", unique),
				zap.Error(err))
			errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), desiredName, err))
			continue
		}

		zap.L().Info("index ensured",
			zap.String("collection", coll.Name()),
			zap.String("name", desiredName),
			zap.String("keys", sig),
			zap.Bool("unique", unique),
			zap.String("took", time.Since(start).String()))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

/* -------------------------------------------------------------------------- */
/* Collection-specific index sets                                             */
/* -------------------------------------------------------------------------- */

func ensureUsers(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("users")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Email must be unique across all users (emails are stored lowercased)
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_users_email"),
		},
	})
}

func ensureMagazines(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("magazines")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Per-author lookups (ownership checks, author pages)
		{
			Keys:    bson.D{{Key: "author", Value: 1}},
			Options: options.Index().SetName("idx_magazines_author"),
		},

		// List pages: published magazines by category, newest first
		{
			Keys: bson.D{
				{Key: "status", Value: 1},
				{Key: "category", Value: 1},
				{Key: "published_at", Value: -1},
			},
			Options: options.Index().SetName("idx_magazines_status_category_published"),
		},

		// Default listing: published, newest first
		{
			Keys: bson.D{
				{Key: "status", Value: 1},
				{Key: "published_at", Value: -1},
			},
			Options: options.Index().SetName("idx_magazines_status_published"),
		},

		// Header menu lookups
		{
			Keys: bson.D{
				{Key: "menu_id", Value: 1},
				{Key: "status", Value: 1},
				{Key: "published_at", Value: -1},
			},
			Options: options.Index().SetName("idx_magazines_menu_status_published"),
		},
	})
}

func ensureSiteConfig(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("site_config")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Guarantees the configuration document stays a singleton
		{
			Keys:    bson.D{{Key: "config_key", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_siteconfig_key"),
		},
	})
}
