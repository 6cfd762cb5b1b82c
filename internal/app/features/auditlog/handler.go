// Package auditlog exposes the admin view over the audit trail of
// privileged actions.
package auditlog

import (
	"github.com/aristide12005/ERNAM--sub002/internal/app/store/audit"
	"go.uber.org/zap"
)

type Handler struct {
	Audit *audit.Store
	Log   *zap.Logger
}

// NewHandler constructs the audit log feature handler.
func NewHandler(store *audit.Store, logger *zap.Logger) *Handler {
	return &Handler{Audit: store, Log: logger}
}
