// Package logout clears the session cookie.
package logout

import (
	"net/http"

	"github.com/aristide12005/ERNAM--sub002/internal/app/features/shared"
	"github.com/aristide12005/ERNAM--sub002/internal/app/system/auth"
	"go.uber.org/zap"
)

type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// HandleLogout handles POST /auth/logout. Signing out an anonymous
// session is a no-op success.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := auth.SignOut(w, r); err != nil {
		h.Log.Error("session clear failed", zap.Error(err))
		shared.RespondError(w, http.StatusInternalServerError, "", "could not sign out")
		return
	}
	shared.RespondJSON(w, http.StatusOK, map[string]string{"message": "signed out"})
}
