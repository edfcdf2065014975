// internal/app/features/siteconfig/routes.go
package siteconfig

import (
	sysauth "github.com/dalemusser/magazinehub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the site config endpoints under whatever base path the
// caller chooses (typically "/api/config" from bootstrap).
func Routes(h *Handler, mw *sysauth.Middleware) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.HandleGet)

	r.Group(func(pr chi.Router) {
		pr.Use(mw.RequireUser)
		pr.Put("/", h.HandleUpdate)
	})

	return r
}
