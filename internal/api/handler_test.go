package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SebbieMzingKe/beem-sms-go/beem"
)

func newTestServer() *Server {
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return New(logger)
}

func postCallback(t *testing.T, s *Server, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/callbacks/delivery-reports", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	s.engine.ServeHTTP(w, req)
	return w
}

func TestReceiveDeliveryReport(t *testing.T) {
	s := newTestServer()

	report := beem.DeliveryCallback{
		RequestID: 35918915,
		DestAddr:  "255742892731",
		Status:    "DELIVERED",
	}
	body, _ := json.Marshal(report)

	w := postCallback(t, s, body)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/delivery-reports", nil)
	s.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var listed struct {
		Reports []beem.DeliveryCallback `json:"reports"`
		Total   int                     `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Equal(t, 1, listed.Total)
	assert.Equal(t, report, listed.Reports[0])
}

func TestReceiveDeliveryReportKeepsArrivalOrder(t *testing.T) {
	s := newTestServer()

	statuses := []string{"PENDING", "SENT", "DELIVERED"}
	for i, status := range statuses {
		body, _ := json.Marshal(beem.DeliveryCallback{
			RequestID: int64(i + 1),
			DestAddr:  "255742892731",
			Status:    status,
		})
		w := postCallback(t, s, body)
		require.Equal(t, http.StatusOK, w.Code)
	}

	reports := s.reports.all()
	require.Len(t, reports, 3)
	for i, status := range statuses {
		assert.Equal(t, int64(i+1), reports[i].RequestID)
		assert.Equal(t, status, reports[i].Status)
	}
}

func TestReceiveDeliveryReportRejectsBadPayloads(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"request_id":`},
		{name: "missing fields", body: `{"request_id":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer()

			w := postCallback(t, s, []byte(tt.body))
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var errorResponse ErrorResponse
			json.Unmarshal(w.Body.Bytes(), &errorResponse)
			assert.Equal(t, "invalid request", errorResponse.Error)
		})
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	s.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
