// Package api runs a small HTTP server that receives delivery report
// callbacks from the SMS provider and keeps them queryable in memory.
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Server struct {
	engine  *gin.Engine
	logger  *logrus.Logger
	reports *reportStore
}

func New(logger *logrus.Logger) *Server {
	r := gin.New()
	r.Use(gin.Recovery())
	r.RedirectTrailingSlash = false

	s := &Server{
		engine:  r,
		logger:  logger,
		reports: newReportStore(),
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.POST("/callbacks/delivery-reports", s.receiveDeliveryReport)
	r.GET("/delivery-reports", s.listDeliveryReports)

	return s
}

// Serve runs the server until ctx is cancelled, then shuts it down
// gracefully.
func (s *Server) Serve(ctx context.Context, address string) error {
	srv := &http.Server{
		Addr:    address,
		Handler: s.engine,
	}

	s.logger.Info(fmt.Sprintf("callback server starting at: %s", address))
	srvError := make(chan error)
	go func() {
		srvError <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("callback server is shutting down")
		return srv.Shutdown(context.Background())
	case err := <-srvError:
		return err
	}
}
