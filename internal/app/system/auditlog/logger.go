// internal/app/system/auditlog/logger.go
package auditlog

import (
	"context"

	"github.com/aristide12005/ERNAM--sub002/internal/app/store/audit"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Config holds audit logging configuration.
type Config struct {
	// Admin controls logging for privileged admin actions.
	// Values: "all" (MongoDB + zap), "db" (MongoDB only), "log" (zap only), "off" (disabled)
	Admin string
}

// EntryWriter persists audit entries. *audit.Store satisfies it; tests
// substitute in-memory writers.
type EntryWriter interface {
	Log(ctx context.Context, entry audit.Entry) error
}

// Logger provides convenience methods for recording audit entries.
// It writes to both MongoDB (via audit.Store) and structured logs (via
// zap). A failed database write is logged and swallowed: audit persistence
// is a monitoring concern and must never fail the operation being audited.
type Logger struct {
	store  EntryWriter
	zapLog *zap.Logger
	config Config
}

// New creates a new audit Logger.
func New(store EntryWriter, zapLog *zap.Logger, config Config) *Logger {
	return &Logger{
		store:  store,
		zapLog: zapLog,
		config: config,
	}
}

// logToZap mirrors the entry into the structured log.
func (l *Logger) logToZap(entry audit.Entry) {
	fields := []zap.Field{
		zap.Bool("audit", true),
		zap.String("action", entry.Action),
		zap.String("target_resource", entry.TargetResource),
	}
	if entry.ActorID != nil {
		fields = append(fields, zap.String("actor_id", entry.ActorID.Hex()))
	}
	for k, v := range entry.Details {
		fields = append(fields, zap.String("detail_"+k, v))
	}
	l.zapLog.Info("audit entry", fields...)
}

// Log records an audit entry based on configuration. A nil logger is a
// no-op, which lets tests pass a nil audit logger.
func (l *Logger) Log(ctx context.Context, entry audit.Entry) {
	if l == nil {
		return
	}

	setting := l.config.Admin
	if setting == "" {
		setting = "all"
	}
	if setting == "off" {
		return
	}

	if setting == "all" || setting == "log" {
		l.logToZap(entry)
	}

	if setting == "all" || setting == "db" {
		if err := l.store.Log(ctx, entry); err != nil {
			l.zapLog.Error("failed to store audit entry",
				zap.Error(err),
				zap.String("action", entry.Action),
				zap.String("target_resource", entry.TargetResource),
			)
		}
	}
}

// OrganizationApproved records a successful organization approval.
func (l *Logger) OrganizationApproved(ctx context.Context, orgID primitive.ObjectID, actorID *primitive.ObjectID, applicationID primitive.ObjectID, applicantEmail string) {
	l.Log(ctx, audit.Entry{
		Action:         audit.ActionOrganizationApproved,
		TargetResource: orgID.Hex(),
		ActorID:        actorID,
		Details: map[string]string{
			"application_id":  applicationID.Hex(),
			"applicant_email": applicantEmail,
		},
	})
}

// ApplicationRejected records a rejection decision.
func (l *Logger) ApplicationRejected(ctx context.Context, applicationID primitive.ObjectID, actorID *primitive.ObjectID, reason string) {
	details := map[string]string{}
	if reason != "" {
		details["reason"] = reason
	}
	l.Log(ctx, audit.Entry{
		Action:         audit.ActionApplicationRejected,
		TargetResource: applicationID.Hex(),
		ActorID:        actorID,
		Details:        details,
	})
}

// ApplicationReactivated records a rejected → pending manual override.
func (l *Logger) ApplicationReactivated(ctx context.Context, applicationID primitive.ObjectID, actorID *primitive.ObjectID) {
	l.Log(ctx, audit.Entry{
		Action:         audit.ActionApplicationReactivated,
		TargetResource: applicationID.Hex(),
		ActorID:        actorID,
	})
}

// ApplicationSubmitted records an applicant-facing submission (no actor).
func (l *Logger) ApplicationSubmitted(ctx context.Context, applicationID primitive.ObjectID, organizationName, applicantEmail string) {
	l.Log(ctx, audit.Entry{
		Action:         audit.ActionApplicationSubmitted,
		TargetResource: applicationID.Hex(),
		Details: map[string]string{
			"organization_name": organizationName,
			"applicant_email":   applicantEmail,
		},
	})
}

// OrganizationCreated records an admin creating an organization shell.
func (l *Logger) OrganizationCreated(ctx context.Context, orgID primitive.ObjectID, actorID *primitive.ObjectID, name string) {
	l.Log(ctx, audit.Entry{
		Action:         audit.ActionOrganizationCreated,
		TargetResource: orgID.Hex(),
		ActorID:        actorID,
		Details:        map[string]string{"name": name},
	})
}

// UserRegistered records a new principal created by the registration flow.
func (l *Logger) UserRegistered(ctx context.Context, userID primitive.ObjectID, email string) {
	l.Log(ctx, audit.Entry{
		Action:         audit.ActionUserRegistered,
		TargetResource: userID.Hex(),
		Details:        map[string]string{"email": email},
	})
}
