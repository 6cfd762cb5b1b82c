// internal/app/features/auditlog/routes.go
package auditlog

import (
	"github.com/aristide12005/ERNAM--sub002/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the audit log routes (typically under "/auditlog").
// The audit trail is platform-admin only.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Use(auth.RequireRole("ernam_admin"))

		pr.Get("/", h.HandleList)
		pr.Get("/target/{id}", h.HandleTarget)
	})

	return r
}
