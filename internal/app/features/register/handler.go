// Package register implements self-service account creation for
// participants and instructors. Organization admins are never created
// here; they are promoted by the application approval workflow.
package register

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/aristide12005/ERNAM--sub002/internal/app/features/shared"
	userstore "github.com/aristide12005/ERNAM--sub002/internal/app/store/users"
	"github.com/aristide12005/ERNAM--sub002/internal/app/system/auditlog"
	"github.com/aristide12005/ERNAM--sub002/internal/app/system/authutil"
	"github.com/aristide12005/ERNAM--sub002/internal/app/system/timeouts"
	"github.com/aristide12005/ERNAM--sub002/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type Handler struct {
	Users *userstore.Store
	Audit *auditlog.Logger
	Log   *zap.Logger
}

func NewHandler(users *userstore.Store, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{Users: users, Audit: audit, Log: logger}
}

type registerRequest struct {
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	Password       string `json:"password"`
	Role           string `json:"role"`
	OrganizationID string `json:"organization_id,omitempty"`
}

type registerResponse struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

// HandleRegister handles POST /register. New accounts start in pending
// status and wait for review.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondError(w, http.StatusBadRequest, "validation", "invalid JSON body")
		return
	}

	if msg := validateRegister(req); msg != "" {
		shared.RespondError(w, http.StatusBadRequest, "validation", msg)
		return
	}

	var orgID *primitive.ObjectID
	if req.OrganizationID != "" {
		id, err := primitive.ObjectIDFromHex(req.OrganizationID)
		if err != nil {
			shared.RespondError(w, http.StatusBadRequest, "validation", "organization_id is not a valid id")
			return
		}
		orgID = &id
	}

	hash, err := authutil.HashPassword(req.Password)
	if err != nil {
		h.Log.Error("password hash failed", zap.Error(err))
		shared.RespondError(w, http.StatusInternalServerError, "", "could not create account")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	user, err := h.Users.Create(ctx, models.User{
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		PasswordHash:   hash,
		Role:           req.Role,
		OrganizationID: orgID,
	})
	if errors.Is(err, userstore.ErrDuplicateEmail) {
		shared.RespondError(w, http.StatusConflict, "duplicate", "an account with this email already exists")
		return
	}
	if err != nil {
		h.Log.Error("user create failed", zap.Error(err))
		shared.RespondError(w, http.StatusInternalServerError, "", "could not create account")
		return
	}

	h.Audit.UserRegistered(ctx, user.ID, user.Email)

	shared.RespondJSON(w, http.StatusCreated, registerResponse{
		ID:     user.ID.Hex(),
		Email:  user.Email,
		Role:   user.Role,
		Status: user.Status,
	})
}

func validateRegister(req registerRequest) string {
	if strings.TrimSpace(req.FullName) == "" {
		return "full_name is required"
	}
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return "email is required"
	}
	if !authutil.IsValidEmail(email) {
		return "email is not a valid email address"
	}
	if err := authutil.ValidatePassword(req.Password); err != nil {
		return err.Error()
	}
	switch strings.ToLower(strings.TrimSpace(req.Role)) {
	case "participant", "instructor":
		return ""
	default:
		return `role must be "participant" or "instructor"`
	}
}
