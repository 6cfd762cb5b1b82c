// internal/app/features/auditlog/list.go
package auditlog

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/aristide12005/ERNAM--sub002/internal/app/features/shared"
	"github.com/aristide12005/ERNAM--sub002/internal/app/store/audit"
	"github.com/aristide12005/ERNAM--sub002/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type listResponse struct {
	Entries []audit.Entry `json:"entries"`
	Total   int64         `json:"total"`
}

// HandleList handles GET /auditlog for platform admins. Query parameters:
// action, target, actor, start, end (RFC 3339), limit, offset.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := audit.QueryFilter{
		Action:         q.Get("action"),
		TargetResource: q.Get("target"),
	}

	if v := q.Get("actor"); v != "" {
		actor, err := primitive.ObjectIDFromHex(v)
		if err != nil {
			shared.RespondError(w, http.StatusBadRequest, "validation", "actor is not a valid id")
			return
		}
		filter.ActorID = &actor
	}
	if v := q.Get("start"); v != "" {
		ts, err := time.Parse(time.RFC3339, v)
		if err != nil {
			shared.RespondError(w, http.StatusBadRequest, "validation", "start must be RFC 3339")
			return
		}
		filter.StartTime = &ts
	}
	if v := q.Get("end"); v != "" {
		ts, err := time.Parse(time.RFC3339, v)
		if err != nil {
			shared.RespondError(w, http.StatusBadRequest, "validation", "end must be RFC 3339")
			return
		}
		filter.EndTime = &ts
	}
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			filter.Limit = n
		}
	}
	if v := q.Get("offset"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			filter.Offset = n
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	entries, err := h.Audit.Query(ctx, filter)
	if err != nil {
		h.Log.Error("audit query failed", zap.Error(err))
		shared.RespondError(w, http.StatusInternalServerError, "", "could not query audit log")
		return
	}
	total, err := h.Audit.CountByFilter(ctx, filter)
	if err != nil {
		h.Log.Error("audit count failed", zap.Error(err))
		shared.RespondError(w, http.StatusInternalServerError, "", "could not query audit log")
		return
	}
	if entries == nil {
		entries = []audit.Entry{}
	}

	shared.RespondJSON(w, http.StatusOK, listResponse{Entries: entries, Total: total})
}

// HandleTarget handles GET /auditlog/target/{id}: the recent history of a
// single resource.
func (h *Handler) HandleTarget(w http.ResponseWriter, r *http.Request) {
	target := chi.URLParam(r, "id")
	if target == "" {
		shared.RespondError(w, http.StatusBadRequest, "validation", "target id is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	entries, err := h.Audit.GetByTarget(ctx, target, 50)
	if err != nil {
		h.Log.Error("audit target query failed", zap.Error(err))
		shared.RespondError(w, http.StatusInternalServerError, "", "could not query audit log")
		return
	}
	if entries == nil {
		entries = []audit.Entry{}
	}

	shared.RespondJSON(w, http.StatusOK, map[string][]audit.Entry{"entries": entries})
}
