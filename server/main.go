package server

import (
	"fmt"
	"net/http"
	"time"

	"govex/config"
	"govex/cookies"
	"govex/engine"
	"govex/provider"
	"govex/proxy"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server is the thin HTTP surface over the extraction core. Auth,
// accounts and billing live in the web application, not here.
type Server struct {
	manager     *provider.Manager
	engine      *engine.Engine
	cookieStore *cookies.Store
	proxies     *proxy.Pool
}

func New(
	manager *provider.Manager,
	e *engine.Engine,
	cookieStore *cookies.Store,
	proxies *proxy.Pool,
) *Server {
	return &Server{
		manager:     manager,
		engine:      e,
		cookieStore: cookieStore,
		proxies:     proxies,
	}
}

// Router assembles the gin engine with the global middleware chain
// and the three routes this service exposes.
func (s *Server) Router() *gin.Engine {
	if config.Env.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(Recovery())
	r.Use(RequestLogger())

	r.GET("/health", s.handleHealth)

	api := r.Group("/api")
	{
		api.POST("/extract", s.handleExtract)
		api.GET("/stream", s.handleStream)
	}
	return r
}

func (s *Server) Run(port int) error {
	addr := fmt.Sprintf(":%d", port)
	zap.S().Infof("listening on %s", addr)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return httpServer.ListenAndServe()
}

// respondJSON writes the payload through sonic instead of gin's
// default JSON renderer, keeping one codec across the module.
func respondJSON(c *gin.Context, status int, payload any) {
	body, err := sonic.ConfigFastest.Marshal(payload)
	if err != nil {
		zap.S().Errorf("failed to encode response: %v", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Data(status, "application/json; charset=utf-8", body)
}

func respondError(c *gin.Context, status int, message string) {
	respondJSON(c, status, gin.H{"error": message})
}
