package userstore_test

import (
	"errors"
	"testing"

	userstore "github.com/dalemusser/magazinehub/internal/app/store/users"
	"github.com/dalemusser/magazinehub/internal/app/system/indexes"
	"github.com/dalemusser/magazinehub/internal/domain/models"
	"github.com/dalemusser/magazinehub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreate_NormalizesAndDefaults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := userstore.New(db)

	u, err := store.Create(ctx, models.User{
		Name:     "  Jane   Writer ",
		Email:    " Jane@Example.COM ",
		Password: "hash",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if u.Email != "jane@example.com" {
		t.Errorf("email: got %q", u.Email)
	}
	if u.Name != "Jane Writer" {
		t.Errorf("name: got %q", u.Name)
	}
	if u.Role != models.RoleUser {
		t.Errorf("role: got %q, want default user role", u.Role)
	}
	if u.CreatedAt.IsZero() || u.UpdatedAt.IsZero() {
		t.Error("timestamps not set")
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}
	store := userstore.New(db)

	if _, err := store.Create(ctx, models.User{Name: "First", Email: "dup@example.com", Password: "hash"}); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	// Same address with different casing must collide.
	_, err := store.Create(ctx, models.User{Name: "Second", Email: "DUP@example.com", Password: "hash"})
	if !errors.Is(err, userstore.ErrDuplicateEmail) {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestGetByEmail_CaseInsensitive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := userstore.New(db)
	fx := testutil.NewFixtures(t, db)

	created := fx.CreateUser(ctx, "Reader", "reader@example.com")

	u, err := store.GetByEmail(ctx, "READER@example.com")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if u.ID != created.ID {
		t.Errorf("got user %s, want %s", u.ID.Hex(), created.ID.Hex())
	}
}

func TestListByIDs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := userstore.New(db)
	fx := testutil.NewFixtures(t, db)

	a := fx.CreateUser(ctx, "Author A", "a@example.com")
	b := fx.CreateUser(ctx, "Author B", "b@example.com")
	missing := primitive.NewObjectID()

	authors, err := store.ListByIDs(ctx, []primitive.ObjectID{a.ID, b.ID, missing})
	if err != nil {
		t.Fatalf("ListByIDs failed: %v", err)
	}

	if len(authors) != 2 {
		t.Fatalf("got %d authors, want 2", len(authors))
	}
	if authors[a.ID].Name != "Author A" {
		t.Errorf("author A name: got %q", authors[a.ID].Name)
	}
	if _, ok := authors[missing]; ok {
		t.Error("missing user should be absent from result")
	}
}
