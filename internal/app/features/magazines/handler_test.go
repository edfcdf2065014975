package magazines_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	magazinesfeature "github.com/dalemusser/magazinehub/internal/app/features/magazines"
	magazinestore "github.com/dalemusser/magazinehub/internal/app/store/magazines"
	userstore "github.com/dalemusser/magazinehub/internal/app/store/users"
	"github.com/dalemusser/magazinehub/internal/domain/models"
	"github.com/dalemusser/magazinehub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newHandler(t *testing.T, db *mongo.Database) *magazinesfeature.Handler {
	t.Helper()
	return magazinesfeature.NewHandler(magazinestore.New(db), userstore.New(db), zap.NewNop())
}

type magazineBody struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Author  struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Bio  string `json:"bio"`
	} `json:"author"`
	Category  string  `json:"category"`
	Status    string  `json:"status"`
	ViewCount int64   `json:"viewCount"`
	Likes     int64   `json:"likes"`
	IsLiked   *bool   `json:"isLiked"`
	MenuID    *string `json:"menuId"`
	Message   string  `json:"message"`
}

func TestCreate_SetsAuthorAndSanitizesContent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	h := newHandler(t, db)
	fx := testutil.NewFixtures(t, db)

	author := fx.CreateUser(ctx, "Jane Writer", "jane@example.com")

	r := testutil.JSONRequest(t, http.MethodPost, "/api/magazines", map[string]any{
		"title":   "City Nights",
		"content": `<p>Hello</p><script>alert("x")</script>`,
	})
	r = testutil.WithUser(r, &author)
	rec := httptest.NewRecorder()
	h.HandleCreate(rec, r)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want 201 (body: %s)", rec.Code, rec.Body.String())
	}

	var body magazineBody
	testutil.DecodeJSON(t, rec, &body)
	if body.Author.ID != author.ID.Hex() {
		t.Errorf("author: got %q, want %q", body.Author.ID, author.ID.Hex())
	}
	if strings.Contains(body.Content, "<script") {
		t.Errorf("script survived sanitization: %q", body.Content)
	}
	if !strings.Contains(body.Content, "<p>Hello</p>") {
		t.Errorf("benign markup stripped: %q", body.Content)
	}
	if body.Category != models.CategoryOther || body.Status != models.StatusPublished {
		t.Errorf("defaults: got category=%q status=%q", body.Category, body.Status)
	}
}

func TestCreate_RequiresTitleAndContent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	h := newHandler(t, db)
	fx := testutil.NewFixtures(t, db)

	author := fx.CreateUser(ctx, "Jane", "jane@example.com")

	r := testutil.JSONRequest(t, http.MethodPost, "/api/magazines", map[string]any{"title": "No Content"})
	r = testutil.WithUser(r, &author)
	rec := httptest.NewRecorder()
	h.HandleCreate(rec, r)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}

func TestDetail_CountsViewAndReportsIsLiked(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	h := newHandler(t, db)
	fx := testutil.NewFixtures(t, db)

	author := fx.CreateUser(ctx, "Jane", "jane@example.com")
	viewer := fx.CreateUser(ctx, "Reader", "reader@example.com")
	m := fx.CreateMagazine(ctx, "Readable", author.ID)

	r := testutil.WithChiURLParam(httptest.NewRequest(http.MethodGet, "/api/magazines/"+m.ID.Hex(), nil), "id", m.ID.Hex())
	r = testutil.WithUser(r, &viewer)
	rec := httptest.NewRecorder()
	h.HandleDetail(rec, r)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}

	var body magazineBody
	testutil.DecodeJSON(t, rec, &body)
	if body.ViewCount != 1 {
		t.Errorf("viewCount: got %d, want 1", body.ViewCount)
	}
	if body.IsLiked == nil || *body.IsLiked {
		t.Errorf("isLiked: got %v, want false", body.IsLiked)
	}
	if body.Author.Name != "Jane" {
		t.Errorf("author name: got %q", body.Author.Name)
	}
}

func TestDetail_UnknownAndMalformedID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newHandler(t, db)

	for _, id := range []string{"64f0c0ffee0ddba11ca75e77", "not-an-id"} {
		r := testutil.WithChiURLParam(httptest.NewRequest(http.MethodGet, "/api/magazines/"+id, nil), "id", id)
		rec := httptest.NewRecorder()
		h.HandleDetail(rec, r)
		if rec.Code != http.StatusNotFound {
			t.Errorf("%s: got %d, want 404", id, rec.Code)
		}
	}
}

func TestUpdate_OnlyAuthorMayEdit(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	h := newHandler(t, db)
	fx := testutil.NewFixtures(t, db)

	author := fx.CreateUser(ctx, "Jane", "jane@example.com")
	other := fx.CreateUser(ctx, "Mallory", "mallory@example.com")
	m := fx.CreateMagazine(ctx, "Mine", author.ID)

	r := testutil.JSONRequest(t, http.MethodPut, "/api/magazines/"+m.ID.Hex(), map[string]any{"title": "Stolen"})
	r = testutil.WithChiURLParam(r, "id", m.ID.Hex())
	r = testutil.WithUser(r, &other)
	rec := httptest.NewRecorder()
	h.HandleUpdate(rec, r)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status: got %d, want 403", rec.Code)
	}
}

func TestUpdate_PartialFieldSemantics(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	h := newHandler(t, db)
	fx := testutil.NewFixtures(t, db)

	author := fx.CreateUser(ctx, "Jane", "jane@example.com")
	m := fx.CreateMagazine(ctx, "Original", author.ID)

	// Only description is sent; title must survive. An explicit null menuId
	// clears the menu assignment.
	r := testutil.JSONRequest(t, http.MethodPut, "/api/magazines/"+m.ID.Hex(), map[string]any{
		"description": "",
		"menuId":      nil,
	})
	r = testutil.WithChiURLParam(r, "id", m.ID.Hex())
	r = testutil.WithUser(r, &author)
	rec := httptest.NewRecorder()
	h.HandleUpdate(rec, r)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}

	var body magazineBody
	testutil.DecodeJSON(t, rec, &body)
	if body.Title != "Original" {
		t.Errorf("omitted title changed: got %q", body.Title)
	}
	if body.MenuID != nil {
		t.Errorf("menuId should be cleared, got %v", *body.MenuID)
	}
}

func TestDelete_ByAuthor(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	h := newHandler(t, db)
	fx := testutil.NewFixtures(t, db)

	author := fx.CreateUser(ctx, "Jane", "jane@example.com")
	m := fx.CreateMagazine(ctx, "Ephemeral", author.ID)

	r := testutil.WithChiURLParam(httptest.NewRequest(http.MethodDelete, "/api/magazines/"+m.ID.Hex(), nil), "id", m.ID.Hex())
	r = testutil.WithUser(r, &author)
	rec := httptest.NewRecorder()
	h.HandleDelete(rec, r)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	r = testutil.WithChiURLParam(httptest.NewRequest(http.MethodGet, "/api/magazines/"+m.ID.Hex(), nil), "id", m.ID.Hex())
	h.HandleDetail(rec, r)
	if rec.Code != http.StatusNotFound {
		t.Errorf("deleted magazine still readable: %d", rec.Code)
	}
}

func TestLike_Toggles(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	h := newHandler(t, db)
	fx := testutil.NewFixtures(t, db)

	author := fx.CreateUser(ctx, "Jane", "jane@example.com")
	reader := fx.CreateUser(ctx, "Reader", "reader@example.com")
	m := fx.CreateMagazine(ctx, "Likeable", author.ID)

	like := func() (int64, bool) {
		r := testutil.WithChiURLParam(httptest.NewRequest(http.MethodPost, "/api/magazines/"+m.ID.Hex()+"/like", nil), "id", m.ID.Hex())
		r = testutil.WithUser(r, &reader)
		rec := httptest.NewRecorder()
		h.HandleLike(rec, r)
		if rec.Code != http.StatusOK {
			t.Fatalf("status: got %d, want 200 (body: %s)", rec.Code, rec.Body.String())
		}
		var body struct {
			Likes   int64 `json:"likes"`
			IsLiked bool  `json:"isLiked"`
		}
		testutil.DecodeJSON(t, rec, &body)
		return body.Likes, body.IsLiked
	}

	if likes, liked := like(); likes != 1 || !liked {
		t.Errorf("first like: got likes=%d liked=%v", likes, liked)
	}
	if likes, liked := like(); likes != 0 || liked {
		t.Errorf("second like: got likes=%d liked=%v", likes, liked)
	}
}

func TestList_PaginationAndCategory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	h := newHandler(t, db)
	fx := testutil.NewFixtures(t, db)

	author := fx.CreateUser(ctx, "Jane", "jane@example.com")
	for i := 0; i < 3; i++ {
		fx.CreateMagazineWithDetails(ctx, "Tech", author.ID, models.CategoryTech, models.StatusPublished, nil)
	}
	fx.CreateMagazineWithDetails(ctx, "Food", author.ID, models.CategoryFood, models.StatusPublished, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/magazines?category=tech&page=1&limit=2", nil)
	rec := httptest.NewRecorder()
	h.HandleList(rec, r)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}

	var body struct {
		Magazines  []magazineBody `json:"magazines"`
		Pagination struct {
			Total int64 `json:"total"`
			Pages int64 `json:"pages"`
		} `json:"pagination"`
	}
	testutil.DecodeJSON(t, rec, &body)
	if len(body.Magazines) != 2 {
		t.Errorf("got %d magazines, want 2 per page", len(body.Magazines))
	}
	if body.Pagination.Total != 3 || body.Pagination.Pages != 2 {
		t.Errorf("pagination: got total=%d pages=%d, want 3/2", body.Pagination.Total, body.Pagination.Pages)
	}
}

func TestList_RejectsUnknownCategory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newHandler(t, db)

	r := httptest.NewRequest(http.MethodGet, "/api/magazines?category=gossip", nil)
	rec := httptest.NewRecorder()
	h.HandleList(rec, r)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}

func TestByMenu_ReturnsTitlesOnly(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	h := newHandler(t, db)
	fx := testutil.NewFixtures(t, db)

	author := fx.CreateUser(ctx, "Jane", "jane@example.com")
	menuID := fx.CreateMagazine(ctx, "Standalone", author.ID).ID // unrelated doc for noise

	menu := menuID
	for i := 0; i < 2; i++ {
		fx.CreateMagazineWithDetails(ctx, "Under Menu", author.ID, models.CategoryOther, models.StatusPublished, &menu)
	}

	r := testutil.WithChiURLParam(httptest.NewRequest(http.MethodGet, "/api/magazines/by-menu/"+menu.Hex(), nil), "menuID", menu.Hex())
	rec := httptest.NewRecorder()
	h.HandleByMenu(rec, r)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	var items []struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	testutil.DecodeJSON(t, rec, &items)
	if len(items) != 2 {
		t.Errorf("got %d items, want 2", len(items))
	}
}

func TestList_FiltersByMenuID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	h := newHandler(t, db)
	fx := testutil.NewFixtures(t, db)

	author := fx.CreateUser(ctx, "Jane", "jane@example.com")
	menu := primitive.NewObjectID()
	fx.CreateMagazineWithDetails(ctx, "In Menu", author.ID, models.CategoryOther, models.StatusPublished, &menu)
	fx.CreateMagazine(ctx, "No Menu", author.ID)

	r := httptest.NewRequest(http.MethodGet, "/api/magazines?menuId="+menu.Hex(), nil)
	rec := httptest.NewRecorder()
	h.HandleList(rec, r)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}
	var body struct {
		Magazines []magazineBody `json:"magazines"`
	}
	testutil.DecodeJSON(t, rec, &body)
	if len(body.Magazines) != 1 || body.Magazines[0].Title != "In Menu" {
		t.Errorf("menuId filter not applied: got %d magazines", len(body.Magazines))
	}
}

func TestList_RejectsMalformedMenuID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newHandler(t, db)

	r := httptest.NewRequest(http.MethodGet, "/api/magazines?menuId=not-a-hex", nil)
	rec := httptest.NewRecorder()
	h.HandleList(rec, r)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}

func TestUpdate_EmptyCategoryAndStatusIgnored(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	h := newHandler(t, db)
	fx := testutil.NewFixtures(t, db)

	author := fx.CreateUser(ctx, "Jane", "jane@example.com")
	m := fx.CreateMagazineWithDetails(ctx, "Stable", author.ID, models.CategoryTech, models.StatusPublished, nil)

	r := testutil.JSONRequest(t, http.MethodPut, "/api/magazines/"+m.ID.Hex(), map[string]any{
		"category":    "",
		"status":      "",
		"description": "updated",
	})
	r = testutil.WithChiURLParam(r, "id", m.ID.Hex())
	r = testutil.WithUser(r, &author)
	rec := httptest.NewRecorder()
	h.HandleUpdate(rec, r)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}
	var body magazineBody
	testutil.DecodeJSON(t, rec, &body)
	if body.Category != models.CategoryTech {
		t.Errorf("empty category changed stored value: got %q", body.Category)
	}
	if body.Status != models.StatusPublished {
		t.Errorf("empty status changed stored value: got %q", body.Status)
	}
}
