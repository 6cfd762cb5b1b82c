// internal/app/features/organizations/list.go
package organizations

import (
	"context"
	"net/http"
	"strconv"

	"github.com/aristide12005/ERNAM--sub002/internal/app/features/shared"
	organizationstore "github.com/aristide12005/ERNAM--sub002/internal/app/store/organizations"
	"github.com/aristide12005/ERNAM--sub002/internal/app/system/timeouts"
	"github.com/aristide12005/ERNAM--sub002/internal/domain/models"
	"go.uber.org/zap"
)

type listResponse struct {
	Organizations []models.Organization `json:"organizations"`
}

// HandleList handles GET /organizations. Supports ?status=, ?limit= and
// ?offset= query parameters.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	filter := organizationstore.Filter{
		Status: r.URL.Query().Get("status"),
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			filter.Limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			filter.Offset = n
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	orgs, err := h.Orgs.List(ctx, filter)
	if err != nil {
		h.Log.Error("organization list failed", zap.Error(err))
		shared.RespondError(w, http.StatusInternalServerError, "", "could not list organizations")
		return
	}
	if orgs == nil {
		orgs = []models.Organization{}
	}

	shared.RespondJSON(w, http.StatusOK, listResponse{Organizations: orgs})
}
