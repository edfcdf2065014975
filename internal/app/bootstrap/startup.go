// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built. For
// MagazineHub that means making sure the upload directories exist so the
// first upload does not race directory creation.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	for _, sub := range []string{"images", "videos"} {
		dir := filepath.Join(appCfg.UploadDir, sub)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating upload directory %s: %w", dir, err)
		}
	}
	logger.Info("upload directories ready", zap.String("dir", appCfg.UploadDir))
	return nil
}
