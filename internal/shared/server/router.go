package server

import (
	"net"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-matcher/internal/jobs"
	"resume-matcher/internal/resumes"
	"resume-matcher/internal/services/health"
	"resume-matcher/internal/shared/config"
	"resume-matcher/internal/shared/metrics"
	"resume-matcher/internal/shared/server/middleware"
	"resume-matcher/internal/shared/server/respond"
)

// RouterDeps contains the handlers the router mounts.
type RouterDeps struct {
	Config        config.Config
	ResumeHandler *resumes.Handler
	JobHandler    *jobs.Handler
	Health        *health.Service
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.MaxMultipartMemory = multipartMemory(deps.Config.MaxUploadBytes)

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		status := map[string]any{"ok": true}
		if deps.Health != nil {
			status = deps.Health.Status()
		}
		respond.JSON(c, http.StatusOK, status)
	})
	if deps.ResumeHandler != nil {
		deps.ResumeHandler.RegisterRoutes(api)
	}
	if deps.JobHandler != nil {
		deps.JobHandler.RegisterRoutes(api)
	}

	return r
}

// multipartMemory keeps uploads up to the size limit in memory so no
// temporary files are written.
func multipartMemory(maxUpload int64) int64 {
	const floor = 32 << 20
	if maxUpload+(1<<20) > floor {
		return maxUpload + (1 << 20)
	}
	return floor
}

// Addr normalizes the listen address.
func Addr(host, port string) string {
	if port == "" {
		port = "5000"
	}
	if port[0] == ':' {
		port = port[1:]
	}
	return net.JoinHostPort(host, port)
}
