// internal/app/features/applications/reject.go
package applications

import (
	"net/http"
	"strings"

	"github.com/aristide12005/ERNAM--sub002/internal/app/features/shared"
	"github.com/aristide12005/ERNAM--sub002/internal/app/system/htmlsanitize"
	"github.com/aristide12005/ERNAM--sub002/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

// HandleReject handles POST /applications/{id}/reject. The optional body
// carries a free-text reason surfaced to the applicant and the audit trail.
func (h *Handler) HandleReject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req rejectRequest
	if r.ContentLength > 0 {
		if err := shared.DecodeJSON(w, r, &req); err != nil {
			shared.RespondError(w, http.StatusBadRequest, "validation", "invalid JSON body")
			return
		}
	}
	reason := strings.TrimSpace(htmlsanitize.StripTags(req.Reason))

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "application reject")
	defer cancel()

	if err := h.Workflow.Reject(ctx, id, reviewerID(r), reason); err != nil {
		h.renderWorkflowError(w, err, "application reject failed")
		return
	}

	h.notifyOutcome(ctx, id, "", false, reason)

	shared.RespondJSON(w, http.StatusOK, map[string]string{"message": "application rejected"})
}

// HandleReactivate handles POST /applications/{id}/reactivate, the manual
// override that moves a rejected application back into the review queue.
func (h *Handler) HandleReactivate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "application reactivate")
	defer cancel()

	if err := h.Workflow.Reactivate(ctx, id, reviewerID(r)); err != nil {
		h.renderWorkflowError(w, err, "application reactivate failed")
		return
	}

	shared.RespondJSON(w, http.StatusOK, map[string]string{"message": "application reactivated"})
}
