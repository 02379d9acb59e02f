// Package beem is a client for the Beem Africa SMS REST API. It sends
// single and bulk text messages, checks the vendor credit balance and
// fetches delivery reports, translating provider failures into a small
// set of typed errors.
package beem

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/SebbieMzingKe/beem-sms-go/phone"
)

const (
	DefaultBaseURL           = "https://apisms.beem.africa/v1/send"
	DefaultBalanceURL        = "https://apisms.beem.africa/public/v1/vendors/balance"
	DefaultDeliveryReportURL = "https://dlrapi.beem.africa/public/v1/delivery-reports"

	DefaultTimeout   = 30 * time.Second
	DefaultBatchSize = 100
)

// Credentials authenticate requests to the provider. They are read-only
// once the client is constructed.
type Credentials struct {
	APIKey    string
	SecretKey string
}

// Client sends SMS through the Beem API. It holds no mutable state and
// is safe for concurrent use.
type Client struct {
	creds      Credentials
	baseURL    string
	balanceURL string
	dlrURL     string
	httpClient *http.Client
	logger     *logrus.Logger
	validator  *phone.Validator
	batchSize  int
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient injects the HTTP transport. Tests use this to point
// the client at a mocked transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithBaseURL overrides the send endpoint.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithBalanceURL overrides the vendor balance endpoint.
func WithBalanceURL(u string) Option {
	return func(c *Client) { c.balanceURL = u }
}

// WithDeliveryReportURL overrides the delivery report endpoint.
func WithDeliveryReportURL(u string) Option {
	return func(c *Client) { c.dlrURL = u }
}

// WithTimeout sets the per-request timeout on the client's transport.
// Apply it after WithHTTPClient when combining the two.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithLogger replaces the default logger.
func WithLogger(l *logrus.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithValidator replaces the default phone validator.
func WithValidator(v *phone.Validator) Option {
	return func(c *Client) { c.validator = v }
}

// WithBatchSize sets the maximum recipients per bulk request.
func WithBatchSize(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.batchSize = n
		}
	}
}

// NewClient builds a Client for the given credentials. It fails with an
// AuthenticationError when either key is missing.
func NewClient(creds Credentials, opts ...Option) (*Client, error) {
	if creds.APIKey == "" || creds.SecretKey == "" {
		return nil, &AuthenticationError{Message: "api key and secret key are required"}
	}

	c := &Client{
		creds:      creds,
		baseURL:    DefaultBaseURL,
		balanceURL: DefaultBalanceURL,
		dlrURL:     DefaultDeliveryReportURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     logrus.New(),
		validator:  phone.New(),
		batchSize:  DefaultBatchSize,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Send validates and sends message to one or more recipients in a
// single request. Every recipient is validated before any network call;
// an invalid one fails the whole call.
func (c *Client) Send(ctx context.Context, sourceAddr string, destAddrs []string, message string, encoding Encoding) (*SendResponse, error) {
	if err := validateMessage(sourceAddr, message, encoding); err != nil {
		return nil, err
	}

	recipients, err := c.prepareRecipients(destAddrs)
	if err != nil {
		return nil, err
	}

	return c.submit(ctx, sendRequest{
		SourceAddr: sourceAddr,
		Encoding:   int(encoding),
		Message:    message,
		Recipients: recipients,
	})
}

// SendBulk sends message to a large recipient list, splitting it into
// requests of at most the configured batch size while preserving input
// order. The full list is validated before anything is sent. It returns
// one response per batch; on a failed batch it returns the responses
// collected so far together with the error.
func (c *Client) SendBulk(ctx context.Context, sourceAddr string, destAddrs []string, message string, encoding Encoding) ([]*SendResponse, error) {
	if err := validateMessage(sourceAddr, message, encoding); err != nil {
		return nil, err
	}

	recipients, err := c.prepareRecipients(destAddrs)
	if err != nil {
		return nil, err
	}

	total := (len(recipients) + c.batchSize - 1) / c.batchSize
	c.logger.WithFields(logrus.Fields{
		"recipients": len(recipients),
		"batches":    total,
	}).Info("sending bulk sms")

	var responses []*SendResponse
	for start := 0; start < len(recipients); start += c.batchSize {
		end := min(start+c.batchSize, len(recipients))

		resp, err := c.submit(ctx, sendRequest{
			SourceAddr: sourceAddr,
			Encoding:   int(encoding),
			Message:    message,
			Recipients: recipients[start:end],
		})
		if err != nil {
			return responses, errors.Wrapf(err, "batch %d of %d", start/c.batchSize+1, total)
		}
		responses = append(responses, resp)
	}

	return responses, nil
}

// Balance fetches the vendor's remaining SMS credit.
func (c *Client) Balance(ctx context.Context) (*BalanceResponse, error) {
	var out BalanceResponse
	if err := c.get(ctx, c.balanceURL, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeliveryReport fetches the delivery state of a sent message,
// identified by the destination number and the request id returned from
// Send.
func (c *Client) DeliveryReport(ctx context.Context, destAddr string, requestID int64) (*DeliveryReportResponse, error) {
	dest, err := c.validator.Validate(destAddr)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("dest_addr", dest)
	q.Set("request_id", strconv.FormatInt(requestID, 10))

	var out DeliveryReportResponse
	if err := c.get(ctx, c.dlrURL+"?"+q.Encode(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) prepareRecipients(destAddrs []string) ([]Recipient, error) {
	if len(destAddrs) == 0 {
		return nil, &ValidationError{Field: "recipients", Message: "at least one recipient is required"}
	}

	normalized, err := c.validator.ValidateBatch(destAddrs)
	if err != nil {
		return nil, err
	}

	recipients := make([]Recipient, len(normalized))
	for i, dest := range normalized {
		recipients[i] = Recipient{RecipientID: i + 1, DestAddr: dest}
	}
	return recipients, nil
}

func (c *Client) submit(ctx context.Context, payload sendRequest) (*SendResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "encode send payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "build send request")
	}

	requestID := uuid.NewString()
	c.setHeaders(req, requestID)

	c.logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"recipients": len(payload.Recipients),
		"length":     utf8.RuneCountInString(payload.Message),
	}).Info("sending sms")

	raw, err := c.do(req, requestID)
	if err != nil {
		return nil, err
	}

	var out SendResponse
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil, &APIError{StatusCode: http.StatusOK, Message: "malformed response body", Body: string(raw)}
		}
	}
	out.Raw = raw

	c.logger.WithFields(logrus.Fields{
		"request_id":      requestID,
		"beem_request_id": out.RequestID,
		"valid":           out.Valid,
		"invalid":         out.Invalid,
	}).Info("sms submitted")

	return &out, nil
}

func (c *Client) get(ctx context.Context, rawurl string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawurl, nil)
	if err != nil {
		return errors.Wrap(err, "build request")
	}

	requestID := uuid.NewString()
	c.setHeaders(req, requestID)

	raw, err := c.do(req, requestID)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return &APIError{StatusCode: http.StatusOK, Message: "malformed response body", Body: string(raw)}
	}
	return nil
}

func (c *Client) do(req *http.Request, requestID string) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithField("request_id", requestID).WithError(err).Error("request failed")
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: errors.Wrap(err, "read response body")}
	}

	if err := checkStatus(resp.StatusCode, raw); err != nil {
		c.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"status":     resp.StatusCode,
		}).WithError(err).Error("request rejected")
		return nil, err
	}

	return raw, nil
}

func (c *Client) setHeaders(req *http.Request, requestID string) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	req.SetBasicAuth(c.creds.APIKey, c.creds.SecretKey)
}

func checkStatus(status int, body []byte) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &AuthenticationError{StatusCode: status, Message: "check your api credentials"}
	default:
		return &APIError{StatusCode: status, Message: apiMessage(body), Body: string(body)}
	}
}

func apiMessage(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		if eb.Data.Message != "" {
			return eb.Data.Message
		}
		if eb.Message != "" {
			return eb.Message
		}
	}
	return "api request failed"
}

func validateMessage(sourceAddr, message string, encoding Encoding) error {
	if sourceAddr == "" {
		return &ValidationError{Field: "source_addr", Message: "source address is required"}
	}

	if strings.TrimSpace(message) == "" {
		return &ValidationError{Field: "message", Message: "message cannot be empty"}
	}

	if n := utf8.RuneCountInString(message); n > encoding.MaxLength() {
		return &ValidationError{
			Field:   "message",
			Message: "message too long, max " + strconv.Itoa(encoding.MaxLength()) + " characters",
		}
	}

	return nil
}
