// internal/app/features/auth/login.go
package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/magazinehub/internal/app/system/httperr"
	"github.com/dalemusser/magazinehub/internal/app/system/timeouts"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin handles POST /api/auth/login.
//
// Unknown email and wrong password get the same response so the endpoint
// does not reveal which accounts exist.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		httperr.Write(w, h.Log, err)
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		httperr.Write(w, h.Log, httperr.Validation("Email and password are required."))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		httperr.Write(w, h.Log, httperr.Auth("Invalid email or password."))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		httperr.Write(w, h.Log, httperr.Auth("Invalid email or password."))
		return
	}

	signed, err := h.Tokens.Issue(user.ID.Hex())
	if err != nil {
		httperr.Write(w, h.Log, err)
		return
	}

	h.Log.Info("user signed in", zap.String("user_id", user.ID.Hex()))
	httperr.JSON(w, http.StatusOK, authResponse{Token: signed, User: user.Public()})
}
