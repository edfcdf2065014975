// internal/app/features/siteconfig/get.go
package siteconfig

import (
	"context"
	"net/http"

	"github.com/dalemusser/magazinehub/internal/app/system/httperr"
	"github.com/dalemusser/magazinehub/internal/app/system/timeouts"
)

// HandleGet handles GET /api/config. The configuration document is created
// with defaults on first read, so this never 404s.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	cfg, err := h.Config.GetOrCreate(ctx)
	if err != nil {
		httperr.Write(w, h.Log, err)
		return
	}
	httperr.JSON(w, http.StatusOK, cfg)
}
