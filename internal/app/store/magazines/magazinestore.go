// Package magazinestore persists magazines and owns every counter update on
// them. View counts and like toggles are single atomic document updates so
// concurrent requests never lose increments.
package magazinestore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/magazinehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no magazine matches the given ID.
var ErrNotFound = errors.New("magazine not found")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("magazines")}
}

// Create inserts a new magazine, filling defaults for category, status, and
// the published timestamp.
func (s *Store) Create(ctx context.Context, m models.Magazine) (models.Magazine, error) {
	m.ID = primitive.NewObjectID()
	if m.Category == "" {
		m.Category = models.CategoryOther
	}
	if m.Status == "" {
		m.Status = models.StatusPublished
	}
	if m.Tags == nil {
		m.Tags = []string{}
	}
	if m.Images == nil {
		m.Images = []models.MagazineImage{}
	}
	if m.Videos == nil {
		m.Videos = []models.MagazineVideo{}
	}
	if m.LikedBy == nil {
		m.LikedBy = []primitive.ObjectID{}
	}
	if m.Comments == nil {
		m.Comments = []models.MagazineComment{}
	}

	now := time.Now()
	if m.PublishedAt.IsZero() {
		m.PublishedAt = now
	}
	m.CreatedAt = now
	m.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, m); err != nil {
		return models.Magazine{}, err
	}
	return m, nil
}

// GetByID loads a magazine without touching its counters.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Magazine, error) {
	var m models.Magazine
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// GetAndCountView loads a magazine and increments its view counter in the
// same atomic operation, returning the document with the new count.
func (s *Store) GetAndCountView(ctx context.Context, id primitive.ObjectID) (*models.Magazine, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var m models.Magazine
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"view_count": 1}},
		opts,
	).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// Sort orders accepted by List.
const (
	SortLatest  = "latest"
	SortPopular = "popular"
	SortViews   = "views"
)

// ListFilter narrows the published magazines returned by List.
type ListFilter struct {
	Category string
	MenuID   *primitive.ObjectID
	Sort     string // latest | popular | views
}

// List returns one page of published magazines plus the total match count.
func (s *Store) List(ctx context.Context, f ListFilter, skip, limit int64) ([]models.Magazine, int64, error) {
	filter := bson.M{"status": models.StatusPublished}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.MenuID != nil {
		filter["menu_id"] = *f.MenuID
	}

	total, err := s.c.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	// published_at breaks ties so popular/views orderings stay stable.
	var sort bson.D
	switch f.Sort {
	case SortPopular:
		sort = bson.D{{Key: "likes", Value: -1}, {Key: "published_at", Value: -1}}
	case SortViews:
		sort = bson.D{{Key: "view_count", Value: -1}, {Key: "published_at", Value: -1}}
	default:
		sort = bson.D{{Key: "published_at", Value: -1}}
	}

	opts := options.Find().SetSort(sort).SetSkip(skip).SetLimit(limit)
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var out []models.Magazine
	if err := cur.All(ctx, &out); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// MenuItem is the projection returned by ListByMenu.
type MenuItem struct {
	ID    primitive.ObjectID `bson:"_id"`
	Title string             `bson:"title"`
}

// ListByMenu returns the newest published magazines under a menu, title only.
func (s *Store) ListByMenu(ctx context.Context, menuID primitive.ObjectID, limit int64) ([]MenuItem, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "published_at", Value: -1}}).
		SetLimit(limit).
		SetProjection(bson.M{"title": 1})

	cur, err := s.c.Find(ctx, bson.M{
		"menu_id": menuID,
		"status":  models.StatusPublished,
	}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []MenuItem
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update applies the given field set to a magazine and returns the updated
// document. The caller builds the set from the fields present in the request;
// updated_at is always refreshed.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Magazine, error) {
	set["updated_at"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var m models.Magazine
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		opts,
	).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// Delete removes a magazine by ID.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ToggleLike adds or removes userID from the magazine's liked-by set and
// adjusts the like counter in the same update, so likes always equals the set
// size even under concurrent toggles. It returns the new count and whether
// the user likes the magazine after the call.
func (s *Store) ToggleLike(ctx context.Context, id, userID primitive.ObjectID) (likes int64, liked bool, err error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	// Membership check in the filter makes the toggle race-free: only one of
	// the two updates can match for a given (document, user) state.
	var m models.Magazine
	err = s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "liked_by": bson.M{"$ne": userID}},
		bson.M{
			"$addToSet": bson.M{"liked_by": userID},
			"$inc":      bson.M{"likes": 1},
		},
		opts,
	).Decode(&m)
	if err == nil {
		return m.Likes, true, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return 0, false, err
	}

	// Already liked (or the magazine is gone). Try the unlike branch.
	err = s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "liked_by": userID},
		bson.M{
			"$pull": bson.M{"liked_by": userID},
			"$inc":  bson.M{"likes": -1},
		},
		opts,
	).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, false, ErrNotFound
		}
		return 0, false, err
	}
	return m.Likes, false, nil
}
