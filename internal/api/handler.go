package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/SebbieMzingKe/beem-sms-go/beem"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

func (s *Server) receiveDeliveryReport(c *gin.Context) {
	var report beem.DeliveryCallback

	if err := c.ShouldBindJSON(&report); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid request",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	s.reports.add(report)

	s.logger.WithFields(logrus.Fields{
		"request_id": report.RequestID,
		"dest_addr":  report.DestAddr,
		"status":     report.Status,
	}).Info("delivery report received")

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) listDeliveryReports(c *gin.Context) {
	reports := s.reports.all()
	c.JSON(http.StatusOK, gin.H{
		"reports": reports,
		"total":   len(reports),
	})
}

// reportStore holds received callbacks in arrival order.
type reportStore struct {
	mu      sync.RWMutex
	reports []beem.DeliveryCallback
}

func newReportStore() *reportStore {
	return &reportStore{reports: make([]beem.DeliveryCallback, 0)}
}

func (r *reportStore) add(report beem.DeliveryCallback) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, report)
}

func (r *reportStore) all() []beem.DeliveryCallback {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]beem.DeliveryCallback, len(r.reports))
	copy(out, r.reports)
	return out
}
