// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aristide12005/ERNAM--sub002/internal/app/system/normalize"
	"github.com/aristide12005/ERNAM--sub002/internal/app/system/status"
	"github.com/aristide12005/ERNAM--sub002/internal/app/system/timeouts"
	"github.com/aristide12005/ERNAM--sub002/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections
// and schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if n := timeouts.ConfigureFromEnv(); n > 0 {
		logger.Info("timeouts configured from environment", zap.Int("count", n))
	}

	if appCfg.BootstrapAdminEmail != "" {
		if err := ensurePlatformAdmin(ctx, deps, appCfg.BootstrapAdminEmail, logger); err != nil {
			return fmt.Errorf("ensure platform admin: %w", err)
		}
	}

	return nil
}

// ensurePlatformAdmin guarantees an ernam_admin account exists for the
// given email: an existing user is promoted, a missing one is created
// without a password (set later through the normal credential flow).
func ensurePlatformAdmin(ctx context.Context, deps DBDeps, email string, logger *zap.Logger) error {
	email = normalize.Email(email)
	users := deps.MongoDatabase.Collection("users")
	now := time.Now().UTC()

	var existing models.User
	err := users.FindOne(ctx, bson.M{"email": email}).Decode(&existing)
	switch {
	case err == nil:
		if existing.Role == "ernam_admin" && existing.Status == status.Approved {
			return nil
		}
		_, err = users.UpdateByID(ctx, existing.ID, bson.M{"$set": bson.M{
			"role":       "ernam_admin",
			"status":     status.Approved,
			"updated_at": now,
		}})
		if err != nil {
			return err
		}
		logger.Info("promoted existing user to platform admin",
			zap.String("email", email),
			zap.String("user_id", existing.ID.Hex()))
		return nil

	case errors.Is(err, mongo.ErrNoDocuments):
		admin := models.User{
			ID:         primitive.NewObjectID(),
			FullName:   "Platform Admin",
			FullNameCI: text.Fold("Platform Admin"),
			Email:      email,
			Role:       "ernam_admin",
			Status:     status.Approved,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if _, err := users.InsertOne(ctx, admin); err != nil {
			return err
		}
		logger.Info("created platform admin account",
			zap.String("email", email),
			zap.String("user_id", admin.ID.Hex()))
		return nil

	default:
		return err
	}
}
