// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (HTTP ports, TLS,
// logging level, request limits); AppConfig is everything specific to the
// ERNAM service itself. The struct is passed to most lifecycle hooks, so
// any configuration needed during startup, request handling, or shutdown
// lives here.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI      string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase string // Database name within MongoDB

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionDomain string // Cookie domain (blank means current host)

	// Branding used in outgoing email.
	SiteName string

	// Email/SMTP configuration
	MailEnabled  bool   // False disables outgoing email entirely (dev default)
	MailSMTPHost string // SMTP server host (e.g., localhost for Mailpit)
	MailSMTPPort int    // SMTP server port (e.g., 1025 for Mailpit, 587 for SES)
	MailSMTPUser string // SMTP username (empty means no auth)
	MailSMTPPass string // SMTP password
	MailFrom     string // From email address (e.g., noreply@ernam.example)

	// Audit logging mode for privileged admin actions:
	// "all" (db+log), "db", "log", or "off".
	AuditLogAdmin string

	// BootstrapAdminEmail, when set, guarantees a platform admin account
	// exists on startup (created or promoted).
	BootstrapAdminEmail string
}
