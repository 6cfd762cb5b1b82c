// internal/app/features/applications/list.go
package applications

import (
	"context"
	"net/http"
	"strconv"

	"github.com/aristide12005/ERNAM--sub002/internal/app/features/shared"
	applicationstore "github.com/aristide12005/ERNAM--sub002/internal/app/store/applications"
	"github.com/aristide12005/ERNAM--sub002/internal/app/system/timeouts"
	"github.com/aristide12005/ERNAM--sub002/internal/domain/models"
	"go.uber.org/zap"
)

// HandleList handles GET /applications for the admin review queue.
// Supports ?status=, ?limit= and ?offset= query parameters.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	filter := applicationstore.Filter{
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

	apps, err := h.Apps.List(ctx, filter)
	if err != nil {
		h.Log.Error("application list failed", zap.Error(err))
		shared.RespondError(w, http.StatusInternalServerError, "", "could not list applications")
		return
	}
	total, err := h.Apps.Count(ctx, filter)
	if err != nil {
		h.Log.Error("application count failed", zap.Error(err))
		shared.RespondError(w, http.StatusInternalServerError, "", "could not list applications")
		return
	}
	if apps == nil {
		apps = []models.Application{}
	}

	shared.RespondJSON(w, http.StatusOK, listResponse{Applications: apps, Total: total})
}
