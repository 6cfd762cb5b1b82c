// Package applications exposes the organization-application API: public
// submission plus the admin review operations (list, detail, approve,
// reject, reactivate).
package applications

import (
	"time"

	"github.com/aristide12005/ERNAM--sub002/internal/app/approval"
	applicationstore "github.com/aristide12005/ERNAM--sub002/internal/app/store/applications"
	"github.com/aristide12005/ERNAM--sub002/internal/app/system/auditlog"
	"github.com/aristide12005/ERNAM--sub002/internal/app/system/mailer"
	"github.com/aristide12005/ERNAM--sub002/internal/app/system/ratelimit"
	"go.uber.org/zap"
)

// Handler holds the dependencies for the application endpoints.
type Handler struct {
	Apps        *applicationstore.Store
	Workflow    *approval.Orchestrator
	Audit       *auditlog.Logger
	Mail        *mailer.Mailer
	Submissions *ratelimit.Limiter
	SiteName    string
	Log         *zap.Logger
}

// NewHandler constructs the applications feature handler. Submission is
// a public endpoint, so it carries a per-IP rate limit.
func NewHandler(apps *applicationstore.Store, workflow *approval.Orchestrator, audit *auditlog.Logger, mail *mailer.Mailer, siteName string, logger *zap.Logger) *Handler {
	return &Handler{
		Apps:        apps,
		Workflow:    workflow,
		Audit:       audit,
		Mail:        mail,
		Submissions: ratelimit.New(20, time.Minute),
		SiteName:    siteName,
		Log:         logger,
	}
}
