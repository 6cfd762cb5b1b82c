// internal/app/features/applications/view.go
package applications

import (
	"context"
	"errors"
	"net/http"

	"github.com/aristide12005/ERNAM--sub002/internal/app/features/shared"
	"github.com/aristide12005/ERNAM--sub002/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleView handles GET /applications/{id}.
func (h *Handler) HandleView(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondError(w, http.StatusBadRequest, "validation", "invalid application id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	app, err := h.Apps.GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		shared.RespondError(w, http.StatusNotFound, "not_found", "application not found")
		return
	}
	if err != nil {
		h.Log.Error("application view failed", zap.Error(err), zap.String("id", id.Hex()))
		shared.RespondError(w, http.StatusInternalServerError, "", "could not load application")
		return
	}

	shared.RespondJSON(w, http.StatusOK, app)
}
