// internal/app/features/organizations/view.go
package organizations

import (
	"context"
	"errors"
	"net/http"

	"github.com/aristide12005/ERNAM--sub002/internal/app/features/shared"
	"github.com/aristide12005/ERNAM--sub002/internal/app/system/authz"
	"github.com/aristide12005/ERNAM--sub002/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type adminSummary struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Status   string `json:"status"`
}

// HandleView handles GET /organizations/{id}. Platform admins can view
// any organization; org-scoped roles only their own.
func (h *Handler) HandleView(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondError(w, http.StatusBadRequest, "validation", "invalid organization id")
		return
	}
	if !authz.CanAccessOrg(r, id) {
		shared.RespondError(w, http.StatusForbidden, "forbidden", "forbidden")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	org, err := h.Orgs.GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		shared.RespondError(w, http.StatusNotFound, "not_found", "organization not found")
		return
	}
	if err != nil {
		h.Log.Error("organization view failed", zap.Error(err), zap.String("id", id.Hex()))
		shared.RespondError(w, http.StatusInternalServerError, "", "could not load organization")
		return
	}

	shared.RespondJSON(w, http.StatusOK, org)
}

// HandleListAdmins handles GET /organizations/{id}/admins, resolving the
// admin link rows into user summaries.
func (h *Handler) HandleListAdmins(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondError(w, http.StatusBadRequest, "validation", "invalid organization id")
		return
	}
	if !authz.CanAccessOrg(r, id) {
		shared.RespondError(w, http.StatusForbidden, "forbidden", "forbidden")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	links, err := h.Links.ListByOrg(ctx, id)
	if err != nil {
		h.Log.Error("admin links lookup failed", zap.Error(err), zap.String("org_id", id.Hex()))
		shared.RespondError(w, http.StatusInternalServerError, "", "could not list organization admins")
		return
	}

	ids := make([]primitive.ObjectID, 0, len(links))
	for _, link := range links {
		ids = append(ids, link.UserID)
	}
	users, err := h.Users.GetByIDs(ctx, ids)
	if err != nil {
		h.Log.Error("admin users lookup failed", zap.Error(err), zap.String("org_id", id.Hex()))
		shared.RespondError(w, http.StatusInternalServerError, "", "could not list organization admins")
		return
	}

	admins := make([]adminSummary, 0, len(users))
	for _, u := range users {
		admins = append(admins, adminSummary{
			ID:       u.ID.Hex(),
			FullName: u.FullName,
			Email:    u.Email,
			Status:   u.Status,
		})
	}

	shared.RespondJSON(w, http.StatusOK, map[string][]adminSummary{"admins": admins})
}
