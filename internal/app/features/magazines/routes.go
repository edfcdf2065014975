// internal/app/features/magazines/routes.go
package magazines

import (
	sysauth "github.com/dalemusser/magazinehub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the magazine endpoints under whatever base path the caller
// chooses (typically "/api/magazines" from bootstrap).
func Routes(h *Handler, mw *sysauth.Middleware) chi.Router {
	r := chi.NewRouter()

	// Public reads. Detail still sees the viewer when a token is present so
	// it can report isLiked.
	r.Get("/", h.HandleList)
	r.Get("/by-menu/{menuID}", h.HandleByMenu)
	r.Get("/{id}", h.HandleDetail)

	// Writes require a signed-in user.
	r.Group(func(pr chi.Router) {
		pr.Use(mw.RequireUser)

		pr.Post("/", h.HandleCreate)
		pr.Put("/{id}", h.HandleUpdate)
		pr.Delete("/{id}", h.HandleDelete)
		pr.Post("/{id}/like", h.HandleLike)
	})

	return r
}
