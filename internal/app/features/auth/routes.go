// internal/app/features/auth/routes.go
package auth

import (
	sysauth "github.com/dalemusser/magazinehub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the auth endpoints under whatever base path the caller
// chooses (typically "/api/auth" from bootstrap).
func Routes(h *Handler, mw *sysauth.Middleware) chi.Router {
	r := chi.NewRouter()

	r.Post("/register", h.HandleRegister)
	r.Post("/login", h.HandleLogin)

	r.Group(func(pr chi.Router) {
		pr.Use(mw.RequireUser)
		pr.Get("/me", h.HandleMe)
	})

	return r
}
