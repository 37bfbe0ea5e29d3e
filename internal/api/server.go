package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"themepark/ticketing/internal/config"
)

type Server struct {
	engine *gin.Engine
	logger *log.Logger
}

func New(appEnv config.AppEnv, logger *log.Logger) *Server {
	switch appEnv {
	case config.ProductionEnv:
		gin.SetMode(gin.ReleaseMode)
	case config.TestEnv:
		gin.SetMode(gin.TestMode)
	}

	r := gin.New()
	r.RedirectTrailingSlash = false
	r.Use(gin.Recovery())

	return &Server{
		engine: r,
		logger: logger,
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	s.engine.ServeHTTP(w, req)
}

func (s *Server) Serve(ctx context.Context, address string) error {
	srv := &http.Server{
		Addr:    address,
		Handler: s.engine,
	}

	s.logger.Info(fmt.Sprintf("rest server starting at: %s", address))
	srvError := make(chan error, 1)
	go func() {
		srvError <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		// graceful shutdown
		s.logger.Info("rest server is shutting down")
		return srv.Shutdown(context.WithoutCancel(ctx))
	case err := <-srvError:
		return err
	}
}
