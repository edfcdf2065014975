// internal/app/features/auth/me.go
package auth

import (
	"net/http"

	sysauth "github.com/dalemusser/magazinehub/internal/app/system/auth"
	"github.com/dalemusser/magazinehub/internal/app/system/httperr"
)

// HandleMe handles GET /api/auth/me, returning the account behind the bearer
// token. RequireUser guarantees a user is present. The full document is
// returned; the json tags on models.User keep the password hash out.
func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	u, ok := sysauth.CurrentUser(r)
	if !ok {
		httperr.Write(w, h.Log, httperr.Auth("Authentication required."))
		return
	}
	httperr.JSON(w, http.StatusOK, u)
}
