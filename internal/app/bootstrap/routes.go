// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	authfeature "github.com/dalemusser/magazinehub/internal/app/features/auth"
	healthfeature "github.com/dalemusser/magazinehub/internal/app/features/health"
	magazinesfeature "github.com/dalemusser/magazinehub/internal/app/features/magazines"
	siteconfigfeature "github.com/dalemusser/magazinehub/internal/app/features/siteconfig"
	uploadsfeature "github.com/dalemusser/magazinehub/internal/app/features/uploads"
	magazinestore "github.com/dalemusser/magazinehub/internal/app/store/magazines"
	siteconfigstore "github.com/dalemusser/magazinehub/internal/app/store/siteconfig"
	userstore "github.com/dalemusser/magazinehub/internal/app/store/users"
	"github.com/dalemusser/magazinehub/internal/app/system/auth"
	"github.com/dalemusser/magazinehub/internal/app/system/httperr"
	"github.com/dalemusser/magazinehub/internal/app/system/limits"
	"github.com/dalemusser/magazinehub/internal/app/system/token"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. MagazineHub builds the token service and
// stores, applies the global middleware stack, and mounts the JSON API
// features plus the static upload file server.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	tokens, err := token.NewService(appCfg.JWTSecret, appCfg.TokenTTL)
	if err != nil {
		logger.Error("token service init failed", zap.Error(err))
		return nil, err
	}

	users := userstore.New(deps.MongoDatabase)
	magazines := magazinestore.New(deps.MongoDatabase)
	siteConfig := siteconfigstore.New(deps.MongoDatabase)

	authMW := &auth.Middleware{Users: users, Tokens: tokens, Log: logger}

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(httperr.RequestLogger(logger))
	// Panic responses carry the stack trace outside production.
	r.Use(httperr.Recoverer(logger, coreCfg.Env != "prod"))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: appCfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	// Global auth middleware: resolves the bearer token, if any, so every
	// handler can see the current user via auth.CurrentUser(r).
	r.Use(authMW.Authenticate)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/api/health", healthfeature.Routes(healthHandler))

	// JSON API
	authHandler := authfeature.NewHandler(users, tokens, logger)
	r.Mount("/api/auth", authfeature.Routes(authHandler, authMW))

	magazinesHandler := magazinesfeature.NewHandler(magazines, users, logger)
	r.Mount("/api/magazines", magazinesfeature.Routes(magazinesHandler, authMW))

	siteConfigHandler := siteconfigfeature.NewHandler(siteConfig, logger)
	r.Mount("/api/config", siteconfigfeature.Routes(siteConfigHandler, authMW))

	uploadsHandler := uploadsfeature.NewHandler(appCfg.UploadDir, limits.MaxImageUploadSize, appCfg.MaxVideoUploadSize, logger)
	r.Mount("/api/upload", uploadsfeature.Routes(uploadsHandler, authMW))

	// Uploaded files with pre-compressed file support (gzip/brotli)
	r.Handle("/uploads/*", fileserver.Handler("/uploads", appCfg.UploadDir))

	return r, nil
}
