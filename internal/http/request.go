package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"risparmi/internal/core"
)

const maxBodyBytes = 1 << 20 // 1MB

type ParseRequest struct {
	Expenses []core.Expense `json:"expenses"`
}

type ValidateRequest struct {
	Wage         float64            `json:"wage"`
	Transactions []core.Transaction `json:"transactions"`
}

type RulesRequest struct {
	Q            []core.QPeriod     `json:"q"`
	P            []core.PPeriod     `json:"p"`
	K            []core.KPeriod     `json:"k"`
	Transactions []core.Transaction `json:"transactions"`
}

type ReturnsRequest struct {
	Age          int                `json:"age"`
	Wage         float64            `json:"wage"`
	Inflation    float64            `json:"inflation"`
	Q            []core.QPeriod     `json:"q"`
	P            []core.PPeriod     `json:"p"`
	K            []core.KPeriod     `json:"k"`
	Transactions []core.Transaction `json:"transactions"`
}

// AsyncReturnsRequest is a ReturnsRequest submitted to the report queue
// instead of being computed inline, so the scheme travels in the body.
type AsyncReturnsRequest struct {
	Scheme core.Scheme `json:"scheme"`
	ReturnsRequest
}

// decodeJSON reads and decodes a request body, rejecting unknown fields and
// oversized payloads.
func decodeJSON(r *http.Request, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return fmt.Errorf("read request body: %w", err)
	}
	if len(body) > maxBodyBytes {
		return fmt.Errorf("request body exceeds %d bytes", maxBodyBytes)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode request: %w", err)
	}
	return nil
}

func (req *ParseRequest) Validate() error {
	if len(req.Expenses) == 0 {
		return fmt.Errorf("%w: expenses are required", core.ErrEmptyTransactions)
	}
	return nil
}

func (req *ValidateRequest) Validate() error {
	var errs []string
	if len(req.Transactions) == 0 {
		errs = append(errs, core.ErrEmptyTransactions.Error())
	}
	if req.Wage <= 0 {
		errs = append(errs, core.ErrInvalidWage.Error())
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func (req *RulesRequest) Validate() error {
	if len(req.Transactions) == 0 {
		return core.ErrEmptyTransactions
	}
	return nil
}

func (req *AsyncReturnsRequest) Validate() error {
	if _, err := req.Scheme.Rate(); err != nil {
		return err
	}
	return req.ReturnsRequest.Validate()
}

func (req *ReturnsRequest) Validate() error {
	var errs []string
	if len(req.Transactions) == 0 {
		errs = append(errs, core.ErrEmptyTransactions.Error())
	}
	if req.Wage <= 0 {
		errs = append(errs, core.ErrInvalidWage.Error())
	}
	if req.Age <= 0 {
		errs = append(errs, core.ErrInvalidAge.Error())
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}
