// Package organizations exposes the partner-organization API: admin
// creation of organization shells ahead of an application, listing, and
// detail views including the linked organization admins.
package organizations

import (
	orgadminstore "github.com/aristide12005/ERNAM--sub002/internal/app/store/orgadmins"
	organizationstore "github.com/aristide12005/ERNAM--sub002/internal/app/store/organizations"
	userstore "github.com/aristide12005/ERNAM--sub002/internal/app/store/users"
	"github.com/aristide12005/ERNAM--sub002/internal/app/system/auditlog"
	"go.uber.org/zap"
)

// Handler holds the dependencies for the organization endpoints.
type Handler struct {
	Orgs  *organizationstore.Store
	Links *orgadminstore.Store
	Users *userstore.Store
	Audit *auditlog.Logger
	Log   *zap.Logger
}

// NewHandler constructs the organizations feature handler.
func NewHandler(orgs *organizationstore.Store, links *orgadminstore.Store, users *userstore.Store, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		Orgs:  orgs,
		Links: links,
		Users: users,
		Audit: audit,
		Log:   logger,
	}
}
