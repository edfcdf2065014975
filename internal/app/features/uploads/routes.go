// internal/app/features/uploads/routes.go
package uploads

import (
	sysauth "github.com/dalemusser/magazinehub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the upload endpoints under whatever base path the caller
// chooses (typically "/api/upload" from bootstrap).
func Routes(h *Handler, mw *sysauth.Middleware) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(mw.RequireUser)
		pr.Post("/image", h.HandleImage)
		pr.Post("/video", h.HandleVideo)
	})

	return r
}
