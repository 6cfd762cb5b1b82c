// internal/app/features/organizations/create.go
package organizations

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/aristide12005/ERNAM--sub002/internal/app/features/shared"
	organizationstore "github.com/aristide12005/ERNAM--sub002/internal/app/store/organizations"
	"github.com/aristide12005/ERNAM--sub002/internal/app/system/authz"
	"github.com/aristide12005/ERNAM--sub002/internal/app/system/timeouts"
	"github.com/aristide12005/ERNAM--sub002/internal/domain/models"
	"go.uber.org/zap"
)

type createRequest struct {
	Name         string `json:"name"`
	OrgType      string `json:"org_type,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
	Status       string `json:"status,omitempty"`
}

// HandleCreate handles POST /organizations. Admins use it to create an
// organization shell ahead of an application, or to repair data when an
// application arrived without a matching organization.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondError(w, http.StatusBadRequest, "validation", "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		shared.RespondError(w, http.StatusBadRequest, "validation", "name is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	org, err := h.Orgs.Create(ctx, models.Organization{
		Name:         req.Name,
		OrgType:      req.OrgType,
		ContactEmail: req.ContactEmail,
		Status:       req.Status,
	})
	if errors.Is(err, organizationstore.ErrDuplicateOrganization) {
		shared.RespondError(w, http.StatusConflict, "duplicate", "an organization with this name already exists")
		return
	}
	if err != nil {
		h.Log.Error("organization create failed", zap.Error(err))
		shared.RespondError(w, http.StatusInternalServerError, "", "could not create organization")
		return
	}

	_, _, actorID, ok := authz.UserCtx(r)
	if ok && !actorID.IsZero() {
		h.Audit.OrganizationCreated(ctx, org.ID, &actorID, org.Name)
	} else {
		h.Audit.OrganizationCreated(ctx, org.ID, nil, org.Name)
	}

	shared.RespondJSON(w, http.StatusCreated, org)
}
