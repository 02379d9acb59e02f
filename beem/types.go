package beem

import "encoding/json"

// Encoding selects the SMS character encoding.
type Encoding int

const (
	EncodingPlainText Encoding = 0
	EncodingUnicode   Encoding = 8
)

const (
	// MaxMessageLength is the single-segment limit for plain text.
	MaxMessageLength = 160
	// MaxUnicodeLength is the single-segment limit for UCS-2.
	MaxUnicodeLength = 70
)

// MaxLength returns the message length limit for the encoding.
func (e Encoding) MaxLength() int {
	if e == EncodingUnicode {
		return MaxUnicodeLength
	}
	return MaxMessageLength
}

// Recipient pairs a normalized destination number with the positional
// id used to correlate provider results with input order.
type Recipient struct {
	RecipientID int    `json:"recipient_id"`
	DestAddr    string `json:"dest_addr"`
}

type sendRequest struct {
	SourceAddr string      `json:"source_addr"`
	Encoding   int         `json:"encoding"`
	Message    string      `json:"message"`
	Recipients []Recipient `json:"recipients"`
}

// SendResponse is the provider's answer to a send request. Raw keeps
// the unparsed body for fields this struct does not model.
type SendResponse struct {
	Successful bool   `json:"successful"`
	RequestID  int64  `json:"request_id"`
	Code       int    `json:"code"`
	Message    string `json:"message"`
	Valid      int    `json:"valid"`
	Invalid    int    `json:"invalid"`
	Duplicates int    `json:"duplicates"`

	Raw json.RawMessage `json:"-"`
}

// BalanceResponse holds the vendor's remaining SMS credit.
type BalanceResponse struct {
	Data struct {
		CreditBalance string `json:"credit_balance"`
	} `json:"data"`
}

// DeliveryReportResponse is the delivery state of one sent message.
type DeliveryReportResponse struct {
	DestAddr  string `json:"dest_addr"`
	RequestID int64  `json:"request_id"`
	Status    string `json:"status"`
}

// DeliveryCallback is the payload the provider posts to a configured
// delivery report callback URL.
type DeliveryCallback struct {
	RequestID int64  `json:"request_id" binding:"required"`
	DestAddr  string `json:"dest_addr" binding:"required"`
	Status    string `json:"status" binding:"required"`
}

type errorBody struct {
	Message string `json:"message"`
	Data    struct {
		Message string `json:"message"`
	} `json:"data"`
}
