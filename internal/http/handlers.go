package http

import (
	"errors"
	"net/http"

	"risparmi/internal/core"
	"risparmi/internal/log"
	"risparmi/internal/services"
)

// engineError maps a core failure to an HTTP status: malformed timestamps
// are the caller's fault, anything else is unexpected.
func (s *Server) engineError(w http.ResponseWriter, r *http.Request, err error) {
	var parseErr *core.ParseError
	if errors.As(err, &parseErr) {
		s.logger.WarnContext(r.Context(), "Request rejected",
			log.FieldError, err,
			log.FieldPath, r.URL.Path)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.logger.ErrorContext(r.Context(), "Engine failure",
		log.FieldError, err,
		log.FieldPath, r.URL.Path)
	writeError(w, http.StatusInternalServerError, err.Error())
}

func requirePOST(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return false
	}
	return true
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	if !requirePOST(w, r) {
		return
	}
	var req ParseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := core.Parse(req.Expenses)
	if err != nil {
		s.engineError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	if !requirePOST(w, r) {
		return
	}
	var req ValidateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Consistency failures are data, not errors: the call still succeeds
	// with the transactions partitioned by outcome.
	part := core.Validate(req.Wage, req.Transactions)
	writeJSON(w, http.StatusOK, part)
}

func (s *Server) handleFilter(w http.ResponseWriter, r *http.Request) {
	if !requirePOST(w, r) {
		return
	}
	var req RulesRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := core.Filter(req.Q, req.P, req.K, req.Transactions)
	if err != nil {
		s.engineError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleGroups(w http.ResponseWriter, r *http.Request) {
	if !requirePOST(w, r) {
		return
	}
	var req RulesRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	groups, err := core.ComputeGroups(req.Q, req.P, req.K, req.Transactions)
	if err != nil {
		s.engineError(w, r, err)
		return
	}
	// Presentation edge: amounts leave the engine in full precision.
	for i := range groups {
		groups[i].Amount = core.Round2(groups[i].Amount)
	}
	writeJSON(w, http.StatusOK, map[string]any{"savings": groups})
}

func (s *Server) handleReturnsNPS(w http.ResponseWriter, r *http.Request) {
	s.handleReturns(w, r, core.SchemeNPS)
}

func (s *Server) handleReturnsIndex(w http.ResponseWriter, r *http.Request) {
	s.handleReturns(w, r, core.SchemeIndex)
}

// handleReturnsAsync accepts a returns calculation for queue-backed
// processing and answers with the message ID for result correlation.
func (s *Server) handleReturnsAsync(w http.ResponseWriter, r *http.Request) {
	if !requirePOST(w, r) {
		return
	}
	var req AsyncReturnsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	id := generateRequestID()
	err := s.service.Enqueue(r.Context(), id, services.ReturnsRequest{
		Scheme:       req.Scheme,
		Age:          req.Age,
		Wage:         req.Wage,
		Inflation:    req.Inflation,
		Q:            req.Q,
		P:            req.P,
		K:            req.K,
		Transactions: req.Transactions,
	})
	if err != nil {
		if errors.Is(err, services.ErrAsyncDisabled) {
			writeError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		s.logger.ErrorContext(r.Context(), "Failed to enqueue report request",
			log.FieldError, err,
			log.FieldMessageID, id)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]string{"id": id})
}

func (s *Server) handleReturns(w http.ResponseWriter, r *http.Request, scheme core.Scheme) {
	if !requirePOST(w, r) {
		return
	}
	var req ReturnsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	report, err := s.service.Calculate(r.Context(), services.ReturnsRequest{
		Scheme:       scheme,
		Age:          req.Age,
		Wage:         req.Wage,
		Inflation:    req.Inflation,
		Q:            req.Q,
		P:            req.P,
		K:            req.K,
		Transactions: req.Transactions,
	})
	if err != nil {
		s.engineError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
