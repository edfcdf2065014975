// internal/app/features/auth/register.go
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	userstore "github.com/dalemusser/magazinehub/internal/app/store/users"
	"github.com/dalemusser/magazinehub/internal/app/system/httperr"
	"github.com/dalemusser/magazinehub/internal/app/system/timeouts"
	"github.com/dalemusser/magazinehub/internal/domain/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 6

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authResponse is the body returned by register and login.
type authResponse struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}

// HandleRegister handles POST /api/auth/register.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		httperr.Write(w, h.Log, err)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Email == "" || req.Password == "" {
		httperr.Write(w, h.Log, httperr.Validation("Name, email and password are required."))
		return
	}
	if len(req.Password) < minPasswordLen {
		httperr.Write(w, h.Log, httperr.Validation("Password must be at least 6 characters."))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Write(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	user, err := h.Users.Create(ctx, models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		Role:     models.RoleUser,
	})
	if err != nil {
		if errors.Is(err, userstore.ErrDuplicateEmail) {
			httperr.Write(w, h.Log, httperr.Conflict("This email is already in use."))
			return
		}
		httperr.Write(w, h.Log, err)
		return
	}

	signed, err := h.Tokens.Issue(user.ID.Hex())
	if err != nil {
		httperr.Write(w, h.Log, err)
		return
	}

	h.Log.Info("user registered", zap.String("user_id", user.ID.Hex()))
	httperr.JSON(w, http.StatusCreated, authResponse{Token: signed, User: user.Public()})
}
