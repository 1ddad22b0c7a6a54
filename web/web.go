// Package web provides the HTTP server for the eyecare application:
// routing, session handling, static upload serving and background job
// scheduling.
package web

import (
	"context"
	"io"
	"net"
	"net/http"

	"github.com/Goutham7675/eyecare-ai/classifier"
	"github.com/Goutham7675/eyecare-ai/config"
	"github.com/Goutham7675/eyecare-ai/logger"
	"github.com/Goutham7675/eyecare-ai/util/common"
	"github.com/Goutham7675/eyecare-ai/web/controller"
	"github.com/Goutham7675/eyecare-ai/web/job"
	"github.com/Goutham7675/eyecare-ai/web/middleware"
	"github.com/Goutham7675/eyecare-ai/web/service"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
)

// Server is the eyecare web server with its controllers, services and
// scheduled jobs.
type Server struct {
	httpServer *http.Server
	listener   net.Listener

	index    *controller.IndexController
	scan     *controller.ScanController
	history  *controller.HistoryController
	reports  *controller.ReportController
	feedback *controller.FeedbackController
	contact  *controller.ContactController

	auditService service.AuditService

	cron *cron.Cron

	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a new web server instance with a cancellable context.
func NewServer() *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{ctx: ctx, cancel: cancel}
}

// initRouter initializes gin, registers middleware and controllers and
// returns the configured engine.
func (s *Server) initRouter() (*gin.Engine, error) {
	if config.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.DefaultWriter = io.Discard
		gin.DefaultErrorWriter = io.Discard
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.Default()

	engine.Use(middleware.RequestId())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	store := cookie.NewStore([]byte(config.GetSessionSecret()))
	engine.Use(sessions.Sessions(config.GetName(), store))

	// Uploaded images are publicly servable by relative path.
	engine.Static("/static/uploads", config.GetUploadFolder())

	g := engine.Group("/")
	s.index = controller.NewIndexController(g)
	s.scan = controller.NewScanController(g, service.NewScanService(classifier.NewStub()))
	s.history = controller.NewHistoryController(g)
	s.reports = controller.NewReportController(g)
	s.feedback = controller.NewFeedbackController(g)
	s.contact = controller.NewContactController(g)

	engine.NoRoute(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusNotFound)
	})

	return engine, nil
}

// startTask schedules the background maintenance jobs.
func (s *Server) startTask() {
	s.cron.AddJob("@daily", job.NewCheckDbJob())
	s.cron.AddJob("@daily", job.NewUploadSweepJob())
}

// Start initializes and starts the web server.
func (s *Server) Start() (err error) {
	defer func() {
		if err != nil {
			_ = s.Stop()
		}
	}()

	s.auditService.Init()

	s.cron = cron.New()
	s.cron.Start()

	engine, err := s.initRouter()
	if err != nil {
		return err
	}

	listenAddr := net.JoinHostPort(config.GetListen(), config.GetPort())
	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return common.NewErrorf("listen on %s: %v", listenAddr, err)
	}
	logger.Info("Web server running HTTP on", listener.Addr())

	s.listener = listener
	s.httpServer = &http.Server{Handler: engine}

	go func() {
		_ = s.httpServer.Serve(listener)
	}()

	s.startTask()

	return nil
}

// Stop gracefully shuts down the web server and its cron jobs.
func (s *Server) Stop() error {
	s.cancel()
	if s.cron != nil {
		s.cron.Stop()
	}
	var err1, err2 error
	if s.httpServer != nil {
		err1 = s.httpServer.Shutdown(s.ctx)
	}
	if s.listener != nil {
		err2 = s.listener.Close()
	}
	return common.Combine(err1, err2)
}

// GetCtx returns the server's context.
func (s *Server) GetCtx() context.Context { return s.ctx }
