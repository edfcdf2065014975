package siteconfig_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	siteconfigfeature "github.com/dalemusser/magazinehub/internal/app/features/siteconfig"
	siteconfigstore "github.com/dalemusser/magazinehub/internal/app/store/siteconfig"
	"github.com/dalemusser/magazinehub/internal/domain/models"
	"github.com/dalemusser/magazinehub/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newHandler(t *testing.T, db *mongo.Database) *siteconfigfeature.Handler {
	t.Helper()
	return siteconfigfeature.NewHandler(siteconfigstore.New(db), zap.NewNop())
}

type configBody struct {
	SiteTitle string `json:"siteTitle"`
	LogoText  string `json:"logoText"`
	Menus     []struct {
		ID    string `json:"id"`
		Title string `json:"title"`
		Order int    `json:"order"`
	} `json:"menus"`
	Message string `json:"message"`
}

func TestGet_CreatesDefaultsOnFirstRead(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newHandler(t, db)

	rec := httptest.NewRecorder()
	h.HandleGet(rec, httptest.NewRequest(http.MethodGet, "/api/config", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}
	var body configBody
	testutil.DecodeJSON(t, rec, &body)
	if body.SiteTitle != models.DefaultSiteTitle {
		t.Errorf("siteTitle: got %q, want default", body.SiteTitle)
	}
	if body.LogoText != models.DefaultLogoText {
		t.Errorf("logoText: got %q, want default", body.LogoText)
	}
}

func TestUpdate_SavesBrandingAndMenus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newHandler(t, db)

	r := testutil.JSONRequest(t, http.MethodPut, "/api/config", map[string]any{
		"siteTitle": "CITY LIFE",
		"logoText":  "CL",
		"menus": []map[string]any{
			{"title": "Travel", "order": 1},
			{"title": "Food", "order": 2},
		},
	})
	rec := httptest.NewRecorder()
	h.HandleUpdate(rec, r)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}
	var body configBody
	testutil.DecodeJSON(t, rec, &body)
	if body.SiteTitle != "CITY LIFE" || body.LogoText != "CL" {
		t.Errorf("branding: got %q/%q", body.SiteTitle, body.LogoText)
	}
	if len(body.Menus) != 2 {
		t.Fatalf("menus: got %d, want 2", len(body.Menus))
	}
	for _, m := range body.Menus {
		if m.ID == "" {
			t.Errorf("menu %q missing id", m.Title)
		}
	}
}

func TestUpdate_RejectsTooManyMenus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newHandler(t, db)

	menus := make([]map[string]any, models.MaxMenus+1)
	for i := range menus {
		menus[i] = map[string]any{"title": "Menu", "order": i}
	}

	rec := httptest.NewRecorder()
	h.HandleUpdate(rec, testutil.JSONRequest(t, http.MethodPut, "/api/config", map[string]any{"menus": menus}))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}

func TestUpdate_RejectsLongMenuTitle(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newHandler(t, db)

	rec := httptest.NewRecorder()
	h.HandleUpdate(rec, testutil.JSONRequest(t, http.MethodPut, "/api/config", map[string]any{
		"menus": []map[string]any{{"title": "TooLongTitle", "order": 1}},
	}))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}

func TestUpdate_RejectsLongLogoText(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newHandler(t, db)

	rec := httptest.NewRecorder()
	h.HandleUpdate(rec, testutil.JSONRequest(t, http.MethodPut, "/api/config", map[string]any{
		"logoText": "ABC",
	}))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}

func TestUpdate_PartialSaveKeepsOtherFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newHandler(t, db)

	rec := httptest.NewRecorder()
	h.HandleGet(rec, httptest.NewRequest(http.MethodGet, "/api/config", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("seed get: got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.HandleUpdate(rec, testutil.JSONRequest(t, http.MethodPut, "/api/config", map[string]any{
		"siteTitle": "NEW TITLE",
	}))
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}

	var body configBody
	testutil.DecodeJSON(t, rec, &body)
	if body.LogoText != models.DefaultLogoText {
		t.Errorf("logoText changed on partial save: got %q", body.LogoText)
	}
}
