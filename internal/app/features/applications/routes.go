// internal/app/features/applications/routes.go
package applications

import (
	"github.com/aristide12005/ERNAM--sub002/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts all application routes under the base path
// (typically "/applications" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// Public submission: anyone can apply on behalf of an organization.
	r.Post("/", h.HandleSubmit)

	// Review queue and decisions are restricted to platform admins.
	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Use(auth.RequireRole("ernam_admin"))

		pr.Get("/", h.HandleList)
		pr.Get("/{id}", h.HandleView)

		// Approve via explicit body (application_id or organization_id)
		// or via the path id.
		pr.Post("/approve", h.HandleApprove)
		pr.Post("/{id}/approve", h.HandleApproveByID)

		pr.Post("/{id}/reject", h.HandleReject)
		pr.Post("/{id}/reactivate", h.HandleReactivate)
	})

	return r
}
