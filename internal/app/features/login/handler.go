// Package login implements credential sign-in against the users
// collection. Successful logins are recorded in the session cookie.
package login

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/aristide12005/ERNAM--sub002/internal/app/features/shared"
	userstore "github.com/aristide12005/ERNAM--sub002/internal/app/store/users"
	"github.com/aristide12005/ERNAM--sub002/internal/app/system/auth"
	"github.com/aristide12005/ERNAM--sub002/internal/app/system/authutil"
	"github.com/aristide12005/ERNAM--sub002/internal/app/system/ratelimit"
	"github.com/aristide12005/ERNAM--sub002/internal/app/system/status"
	"github.com/aristide12005/ERNAM--sub002/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	Users  *userstore.Store
	Limits *ratelimit.LoginLimiter
	Log    *zap.Logger
}

func NewHandler(users *userstore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Users:  users,
		Limits: ratelimit.NewLoginLimiter(),
		Log:    logger,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	OrganizationID string `json:"organization_id,omitempty"`
}

// HandleLogin handles POST /auth/login.
//
// Lookup failures and wrong passwords both answer 401 with the same
// message so the endpoint does not reveal which emails have accounts.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondError(w, http.StatusBadRequest, "validation", "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		shared.RespondError(w, http.StatusBadRequest, "validation", "email and password are required")
		return
	}

	if allowed, reason := h.Limits.Check(r, req.Email); !allowed {
		h.Log.Warn("login rate limited",
			zap.String("ip", ratelimit.ClientIP(r)))
		shared.RespondError(w, http.StatusTooManyRequests, "rate_limited", reason)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Users.GetByEmail(ctx, req.Email)
	if errors.Is(err, mongo.ErrNoDocuments) {
		shared.RespondError(w, http.StatusUnauthorized, "unauthorized", "invalid email or password")
		return
	}
	if err != nil {
		h.Log.Error("login lookup failed", zap.Error(err))
		shared.RespondError(w, http.StatusInternalServerError, "", "could not sign in")
		return
	}

	if user.PasswordHash == "" || !authutil.CheckPassword(req.Password, user.PasswordHash) {
		shared.RespondError(w, http.StatusUnauthorized, "unauthorized", "invalid email or password")
		return
	}

	switch user.Status {
	case status.Suspended:
		shared.RespondError(w, http.StatusForbidden, "forbidden", "this account is suspended")
		return
	case status.Rejected:
		shared.RespondError(w, http.StatusForbidden, "forbidden", "this account has been rejected")
		return
	}

	orgID := ""
	if user.OrganizationID != nil {
		orgID = user.OrganizationID.Hex()
	}
	sessionUser := &auth.SessionUser{
		ID:             user.ID.Hex(),
		Name:           user.FullName,
		Email:          user.Email,
		Role:           user.Role,
		OrganizationID: orgID,
	}
	if err := auth.SignIn(w, r, sessionUser); err != nil {
		h.Log.Error("session save failed", zap.Error(err), zap.String("user_id", user.ID.Hex()))
		shared.RespondError(w, http.StatusInternalServerError, "", "could not create session")
		return
	}

	h.Limits.ResetEmail(req.Email)

	h.Log.Info("user signed in",
		zap.String("user_id", user.ID.Hex()),
		zap.String("role", user.Role))

	shared.RespondJSON(w, http.StatusOK, loginResponse{
		ID:             sessionUser.ID,
		Name:           sessionUser.Name,
		Email:          sessionUser.Email,
		Role:           sessionUser.Role,
		OrganizationID: orgID,
	})
}
