// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/aristide12005/ERNAM--sub002/internal/app/approval"
	applicationsfeature "github.com/aristide12005/ERNAM--sub002/internal/app/features/applications"
	auditlogfeature "github.com/aristide12005/ERNAM--sub002/internal/app/features/auditlog"
	healthfeature "github.com/aristide12005/ERNAM--sub002/internal/app/features/health"
	loginfeature "github.com/aristide12005/ERNAM--sub002/internal/app/features/login"
	logoutfeature "github.com/aristide12005/ERNAM--sub002/internal/app/features/logout"
	organizationsfeature "github.com/aristide12005/ERNAM--sub002/internal/app/features/organizations"
	registerfeature "github.com/aristide12005/ERNAM--sub002/internal/app/features/register"
	userinfofeature "github.com/aristide12005/ERNAM--sub002/internal/app/features/userinfo"
	applicationstore "github.com/aristide12005/ERNAM--sub002/internal/app/store/applications"
	"github.com/aristide12005/ERNAM--sub002/internal/app/store/audit"
	orgadminstore "github.com/aristide12005/ERNAM--sub002/internal/app/store/orgadmins"
	organizationstore "github.com/aristide12005/ERNAM--sub002/internal/app/store/organizations"
	userstore "github.com/aristide12005/ERNAM--sub002/internal/app/store/users"
	"github.com/aristide12005/ERNAM--sub002/internal/app/system/auditlog"
	"github.com/aristide12005/ERNAM--sub002/internal/app/system/auth"
	"github.com/aristide12005/ERNAM--sub002/internal/app/system/mailer"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. The handler wires the stores, the
// approval workflow, and the JSON feature routers together.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	if err := auth.InitSessionStore(appCfg.SessionKey, appCfg.SessionDomain, secure, logger); err != nil {
		logger.Error("session store init failed", zap.Error(err))
		return nil, err
	}

	db := deps.MongoDatabase

	// Stores
	apps := applicationstore.New(db)
	orgs := organizationstore.New(db)
	users := userstore.New(db)
	links := orgadminstore.New(db)
	auditStore := audit.New(db)

	// Shared services
	auditLog := auditlog.New(auditStore, logger, auditlog.Config{Admin: appCfg.AuditLogAdmin})
	workflow := approval.NewOrchestrator(apps, orgs, users, links, auditLog, logger)
	mail := mailer.New(mailer.Config{
		Enabled:  appCfg.MailEnabled,
		Host:     appCfg.MailSMTPHost,
		Port:     appCfg.MailSMTPPort,
		Username: appCfg.MailSMTPUser,
		Password: appCfg.MailSMTPPass,
		From:     appCfg.MailFrom,
	}, logger)

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	// This makes the current user available to all handlers via auth.CurrentUser(r).
	r.Use(auth.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Account lifecycle
	registerHandler := registerfeature.NewHandler(users, auditLog, logger)
	r.Mount("/register", registerfeature.Routes(registerHandler))

	loginHandler := loginfeature.NewHandler(users, logger)
	r.Mount("/auth/login", loginfeature.Routes(loginHandler))

	logoutHandler := logoutfeature.NewHandler(logger)
	r.Mount("/auth/logout", logoutfeature.Routes(logoutHandler))

	userinfoHandler := userinfofeature.NewHandler()
	r.Mount("/userinfo", userinfofeature.Routes(userinfoHandler))

	// Organization applications and the approval workflow
	applicationsHandler := applicationsfeature.NewHandler(apps, workflow, auditLog, mail, appCfg.SiteName, logger)
	r.Mount("/applications", applicationsfeature.Routes(applicationsHandler))

	// Partner organizations
	orgHandler := organizationsfeature.NewHandler(orgs, links, users, auditLog, logger)
	r.Mount("/organizations", organizationsfeature.Routes(orgHandler))

	// Audit trail for platform admins
	auditHandler := auditlogfeature.NewHandler(auditStore, logger)
	r.Mount("/auditlog", auditlogfeature.Routes(auditHandler))

	return r, nil
}
