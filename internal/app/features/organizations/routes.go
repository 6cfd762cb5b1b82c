// internal/app/features/organizations/routes.go
package organizations

import (
	"github.com/aristide12005/ERNAM--sub002/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts all organization routes under the base path
// (typically "/organizations" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// Detail views are open to any signed-in user; org-scoped roles are
	// limited to their own organization inside the handlers.
	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Get("/{id}", h.HandleView)
		pr.Get("/{id}/admins", h.HandleListAdmins)
	})

	// Listing and shell creation are platform-admin operations.
	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Use(auth.RequireRole("ernam_admin"))

		pr.Get("/", h.HandleList)
		pr.Post("/", h.HandleCreate)
	})

	return r
}
