package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/magazinehub/internal/app/system/normalize"
	"github.com/dalemusser/magazinehub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser creates a test user with the given name and email.
func (f *Fixtures) CreateUser(ctx context.Context, name, email string) models.User {
	f.t.Helper()
	return f.CreateUserWithPassword(ctx, name, email, "password123")
}

// CreateUserWithPassword creates a test user with a known password.
// MinCost keeps the bcrypt hashing fast in tests.
func (f *Fixtures) CreateUserWithPassword(ctx context.Context, name, email, password string) models.User {
	f.t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		f.t.Fatalf("failed to hash test password: %v", err)
	}

	now := time.Now().UTC()
	user := models.User{
		ID:        primitive.NewObjectID(),
		Email:     normalize.Email(email),
		Password:  string(hash),
		Name:      name,
		NameCI:    text.Fold(name),
		Role:      models.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateMagazine creates a published test magazine by the given author.
func (f *Fixtures) CreateMagazine(ctx context.Context, title string, authorID primitive.ObjectID) models.Magazine {
	f.t.Helper()
	return f.CreateMagazineWithDetails(ctx, title, authorID, models.CategoryOther, models.StatusPublished, nil)
}

// CreateMagazineWithDetails creates a test magazine with explicit category,
// status, and menu.
func (f *Fixtures) CreateMagazineWithDetails(ctx context.Context, title string, authorID primitive.ObjectID, category, status string, menuID *primitive.ObjectID) models.Magazine {
	f.t.Helper()

	now := time.Now().UTC()
	m := models.Magazine{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Description: "Test description",
		Content:     "<p>Test content</p>",
		Images:      []models.MagazineImage{},
		Videos:      []models.MagazineVideo{},
		Author:      authorID,
		Category:    category,
		Tags:        []string{},
		LikedBy:     []primitive.ObjectID{},
		Comments:    []models.MagazineComment{},
		Status:      status,
		MenuID:      menuID,
		PublishedAt: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := f.db.Collection("magazines").InsertOne(ctx, m); err != nil {
		f.t.Fatalf("failed to create test magazine: %v", err)
	}
	return m
}
