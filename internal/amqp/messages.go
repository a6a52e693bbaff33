package amqp

import (
	"encoding/json"
	"time"

	"risparmi/internal/core"
)

// ReportRequestMessage asks the worker to run a full returns calculation.
// It carries the complete request: rule lists are request-scoped and have no
// identity outside one computation, so there is nothing to look up.
type ReportRequestMessage struct {
	ID           string             `json:"id"`
	Scheme       core.Scheme        `json:"scheme"`
	Age          int                `json:"age"`
	Wage         float64            `json:"wage"`
	Inflation    float64            `json:"inflation"`
	Q            []core.QPeriod     `json:"q"`
	P            []core.PPeriod     `json:"p"`
	K            []core.KPeriod     `json:"k"`
	Transactions []core.Transaction `json:"transactions"`
	Timestamp    time.Time          `json:"timestamp"`
}

// ReportResultMessage is the worker's answer: the computed report, or an
// error string when the request could not be calculated.
type ReportResultMessage struct {
	ID        string       `json:"id"`
	Report    *core.Report `json:"report,omitempty"`
	Error     string       `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// NewReportRequestMessage stamps a request with its ID and the current time.
func NewReportRequestMessage(id string, scheme core.Scheme, age int, wage, inflation float64, q []core.QPeriod, p []core.PPeriod, k []core.KPeriod, txs []core.Transaction) *ReportRequestMessage {
	return &ReportRequestMessage{
		ID:           id,
		Scheme:       scheme,
		Age:          age,
		Wage:         wage,
		Inflation:    inflation,
		Q:            q,
		P:            p,
		K:            k,
		Transactions: txs,
		Timestamp:    time.Now(),
	}
}

// NewReportResultMessage wraps a computed report for publication.
func NewReportResultMessage(id string, report *core.Report) *ReportResultMessage {
	return &ReportResultMessage{ID: id, Report: report, Timestamp: time.Now()}
}

// NewReportErrorMessage wraps a calculation failure for publication.
func NewReportErrorMessage(id string, err error) *ReportResultMessage {
	return &ReportResultMessage{ID: id, Error: err.Error(), Timestamp: time.Now()}
}

// ToJSON converts the message to JSON bytes
func (m *ReportRequestMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ReportRequestMessageFromJSON creates a message from JSON bytes
func ReportRequestMessageFromJSON(data []byte) (*ReportRequestMessage, error) {
	var msg ReportRequestMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// ToJSON converts the message to JSON bytes
func (m *ReportResultMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ReportResultMessageFromJSON creates a message from JSON bytes
func ReportResultMessageFromJSON(data []byte) (*ReportResultMessage, error) {
	var msg ReportResultMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
