package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-matcher/internal/catalog"
	"resume-matcher/internal/jobs"
	"resume-matcher/internal/resumes"
	"resume-matcher/internal/services/health"
	"resume-matcher/internal/shared/cache"
	"resume-matcher/internal/shared/config"
	"resume-matcher/internal/shared/server"
	"resume-matcher/internal/shared/telemetry"
	"resume-matcher/internal/skills"
)

const cachePrefix = "resume-matcher:"

// App holds shared dependencies.
type App struct {
	Config        config.Config
	Router        *gin.Engine
	Catalog       catalog.Catalog
	Matcher       *skills.Matcher
	Scorer        *jobs.Scorer
	ResumeService *resumes.Service
	Cache         *cache.Redis
}

// Build prepares shared dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}

	ctx := context.Background()

	cat, err := loadCatalog(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	matcher := skills.NewMatcher(cat, skills.ParseMode(cfg.SkillMatchMode))
	scorer := jobs.NewScorer(cat)

	redisCache := cache.NewRedis(ctx, cache.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		Prefix:   cachePrefix,
	})

	var opts []resumes.Option
	if redisCache.Enabled() {
		opts = append(opts, resumes.WithCache(redisCache, cfg.CacheTTL))
	}
	resumeSvc := resumes.NewService(matcher, opts...)

	app := &App{
		Config:        cfg,
		Catalog:       cat,
		Matcher:       matcher,
		Scorer:        scorer,
		ResumeService: resumeSvc,
		Cache:         redisCache,
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:        cfg,
		ResumeHandler: resumes.NewHandler(resumeSvc, cfg.MaxUploadBytes),
		JobHandler:    jobs.NewHandler(scorer),
		Health:        health.NewService(cat),
	})

	telemetry.Info("bootstrap.ready", map[string]any{
		"env":        cfg.Env,
		"skills":     len(cat.Skills),
		"jobs":       len(cat.Jobs),
		"match_mode": string(matcher.Mode()),
		"cache":      redisCache.Enabled(),
	})

	return app, nil
}

// Close releases external connections.
func (a *App) Close() error {
	if a == nil {
		return nil
	}
	return a.Cache.Close()
}
