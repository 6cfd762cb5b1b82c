// internal/app/features/applications/submit.go
package applications

import (
	"context"
	"net/http"
	"strings"

	"github.com/aristide12005/ERNAM--sub002/internal/app/features/shared"
	"github.com/aristide12005/ERNAM--sub002/internal/app/system/htmlsanitize"
	"github.com/aristide12005/ERNAM--sub002/internal/app/system/ratelimit"
	"github.com/aristide12005/ERNAM--sub002/internal/app/system/timeouts"
	"github.com/aristide12005/ERNAM--sub002/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleSubmit handles POST /applications: the public submission endpoint.
// No session is required; anyone can apply on behalf of an organization.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	if !h.Submissions.Allow(ratelimit.ClientIP(r)) {
		shared.RespondError(w, http.StatusTooManyRequests, "rate_limited", "too many submissions; try again later")
		return
	}

	var req submitRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondError(w, http.StatusBadRequest, "validation", "invalid JSON body")
		return
	}

	if msg := validateSubmit(req); msg != "" {
		shared.RespondError(w, http.StatusBadRequest, "validation", msg)
		return
	}

	details := map[string]string{}
	if req.OrgType != "" {
		details["org_type"] = strings.TrimSpace(req.OrgType)
	}
	if req.Message != "" {
		details["message"] = htmlsanitize.Sanitize(req.Message)
	}
	if req.OrganizationID != "" {
		if _, err := primitive.ObjectIDFromHex(req.OrganizationID); err != nil {
			shared.RespondError(w, http.StatusBadRequest, "validation", "organization_id is not a valid id")
			return
		}
		details[models.DetailOrganizationID] = req.OrganizationID
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Apps.Create(ctx, models.Application{
		OrganizationName: req.OrganizationName,
		ApplicantName:    req.ApplicantName,
		ApplicantEmail:   req.ApplicantEmail,
		ApplicantPhone:   req.ApplicantPhone,
		Details:          details,
	})
	if err != nil {
		h.Log.Error("application submit failed", zap.Error(err))
		shared.RespondError(w, http.StatusInternalServerError, "", "could not submit application")
		return
	}

	h.Audit.ApplicationSubmitted(ctx, created.ID, created.OrganizationName, created.ApplicantEmail)

	shared.RespondJSON(w, http.StatusCreated, submitResponse{
		ID:        created.ID.Hex(),
		Reference: created.Reference,
		Status:    created.Status,
	})
}

func validateSubmit(req submitRequest) string {
	if strings.TrimSpace(req.OrganizationName) == "" {
		return "organization_name is required"
	}
	if strings.TrimSpace(req.ApplicantName) == "" {
		return "applicant_name is required"
	}
	email := strings.TrimSpace(req.ApplicantEmail)
	if email == "" {
		return "applicant_email is required"
	}
	if !strings.Contains(email, "@") {
		return "applicant_email is not a valid email address"
	}
	return ""
}
