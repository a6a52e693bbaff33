package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"risparmi/internal/core"
	"risparmi/internal/services"
)

func testServer() *Server {
	return NewServer(":0", services.NewReportService(nil, nil), 1000)
}

func doJSON(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	srv.Handler.ServeHTTP(rr, req)
	return rr
}

const sampleExpenses = `{"expenses":[
	{"timestamp":"2023-10-12 20:15:00","amount":250},
	{"timestamp":"2023-02-28T10:10","amount":375},
	{"timestamp":"2023-07-01 12:00:00","amount":620},
	{"timestamp":"2023-12-17 08:09:00","amount":480}
]}`

const sampleTransactions = `[
	{"date":"2023-10-12 20:15:00","amount":250,"ceiling":300,"remanent":50},
	{"date":"2023-02-28 10:10:00","amount":375,"ceiling":400,"remanent":25},
	{"date":"2023-07-01 12:00:00","amount":620,"ceiling":700,"remanent":80},
	{"date":"2023-12-17 08:09:00","amount":480,"ceiling":500,"remanent":20}
]`

func TestHealthAndStatus(t *testing.T) {
	srv := testServer()

	rr := doJSON(t, srv, http.MethodGet, "/healthz", "")
	if rr.Code != http.StatusOK || rr.Body.String() != "ok" {
		t.Fatalf("healthz = %d %q", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, srv, http.MethodGet, "/statusz", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("statusz status = %d", rr.Code)
	}
	var status map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &status); err != nil {
		t.Fatalf("statusz body: %v", err)
	}
	if _, ok := status["startedAt"]; !ok {
		t.Fatalf("statusz missing startedAt: %v", status)
	}
}

func TestHandleParse(t *testing.T) {
	srv := testServer()
	rr := doJSON(t, srv, http.MethodPost, "/api/parse", sampleExpenses)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}

	var res core.ParseResult
	if err := json.Unmarshal(rr.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(res.Transactions) != 4 {
		t.Fatalf("expected 4 transactions, got %d", len(res.Transactions))
	}
	if res.Totals.Amount != 1725 || res.Totals.Ceiling != 1900 || res.Totals.Remanent != 175 {
		t.Fatalf("totals = %+v", res.Totals)
	}
	// The T-separated, second-less input comes back canonical.
	if res.Transactions[1].Date != "2023-02-28 10:10:00" {
		t.Fatalf("date not normalized: %s", res.Transactions[1].Date)
	}
}

func TestHandleParseBadTimestamp(t *testing.T) {
	srv := testServer()
	rr := doJSON(t, srv, http.MethodPost, "/api/parse",
		`{"expenses":[{"timestamp":"12/10/2023","amount":250}]}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "matches no accepted format") {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}
}

func TestHandleParseEmptyListRejected(t *testing.T) {
	srv := testServer()
	rr := doJSON(t, srv, http.MethodPost, "/api/parse", `{"expenses":[]}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}

func TestHandleValidate(t *testing.T) {
	srv := testServer()
	rr := doJSON(t, srv, http.MethodPost, "/api/validate",
		`{"wage":50000,"transactions":`+sampleTransactions+`}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}
	var part core.Partition
	if err := json.Unmarshal(rr.Body.Bytes(), &part); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(part.Valid) != 4 || len(part.Invalid) != 0 || len(part.Duplicates) != 0 {
		t.Fatalf("partition = %d/%d/%d", len(part.Valid), len(part.Invalid), len(part.Duplicates))
	}
}

func TestHandleValidateConfigurationErrors(t *testing.T) {
	srv := testServer()
	cases := []string{
		`{"wage":50000,"transactions":[]}`,
		`{"wage":0,"transactions":` + sampleTransactions + `}`,
		`{"wage":-1,"transactions":` + sampleTransactions + `}`,
	}
	for i, body := range cases {
		rr := doJSON(t, srv, http.MethodPost, "/api/validate", body)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("case %d: status = %d, want 400", i, rr.Code)
		}
	}
}

func TestHandleFilter(t *testing.T) {
	srv := testServer()
	body := `{
		"q":[{"fixed":0,"start":"2023-07-01 00:00:00","end":"2023-07-31 23:59:59"}],
		"p":[{"extra":25,"start":"2023-10-01 00:00:00","end":"2023-12-31 19:59:00"}],
		"k":[{"start":"2023-07-01 00:00:00","end":"2023-12-31 23:59:59"}],
		"transactions":` + sampleTransactions + `}`
	rr := doJSON(t, srv, http.MethodPost, "/api/filter", body)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}
	var res core.FilterResult
	if err := json.Unmarshal(rr.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(res.Valid) != 3 || len(res.Invalid) != 1 {
		t.Fatalf("filter = %d valid / %d invalid", len(res.Valid), len(res.Invalid))
	}
	if res.Invalid[0].Reason == "" {
		t.Fatalf("rejected transaction missing reason")
	}
}

func TestHandleGroups(t *testing.T) {
	srv := testServer()
	body := `{
		"q":[{"fixed":0,"start":"2023-07-01 00:00:00","end":"2023-07-31 23:59:59"}],
		"p":[{"extra":25,"start":"2023-10-01 00:00:00","end":"2023-12-31 19:59:00"}],
		"k":[{"start":"2023-01-01 00:00:00","end":"2023-06-30 23:59:59"},
		     {"start":"2023-07-01 00:00:00","end":"2023-12-31 23:59:59"}],
		"transactions":` + sampleTransactions + `}`
	rr := doJSON(t, srv, http.MethodPost, "/api/groups", body)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}
	var res struct {
		Savings []core.SavingByDate `json:"savings"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(res.Savings) != 2 || res.Savings[0].Amount != 25 || res.Savings[1].Amount != 120 {
		t.Fatalf("savings = %+v", res.Savings)
	}
}

func TestHandleReturns(t *testing.T) {
	srv := testServer()
	body := `{
		"age":30,"wage":100000,"inflation":0.05,
		"k":[{"start":"2023-01-01 00:00:00","end":"2023-12-31 23:59:59"}],
		"transactions":` + sampleTransactions + `}`

	rr := doJSON(t, srv, http.MethodPost, "/api/returns/nps", body)
	if rr.Code != http.StatusOK {
		t.Fatalf("nps status = %d, body %s", rr.Code, rr.Body.String())
	}
	var report core.Report
	if err := json.Unmarshal(rr.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(report.Savings) != 1 || report.Savings[0].Amount != 175 {
		t.Fatalf("report = %+v", report)
	}
	if report.Savings[0].TaxBenefit <= 0 {
		t.Fatalf("nps report should carry a tax benefit")
	}

	rr = doJSON(t, srv, http.MethodPost, "/api/returns/index", body)
	if rr.Code != http.StatusOK {
		t.Fatalf("index status = %d", rr.Code)
	}
	var indexReport core.Report
	if err := json.Unmarshal(rr.Body.Bytes(), &indexReport); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if indexReport.Savings[0].TaxBenefit != 0 {
		t.Fatalf("index scheme must not report a tax benefit")
	}
	if indexReport.Savings[0].Profits <= report.Savings[0].Profits {
		t.Fatalf("index profits should exceed nps profits")
	}
}

func TestHandleReturnsConfigurationErrors(t *testing.T) {
	srv := testServer()
	cases := []string{
		`{"age":0,"wage":100000,"transactions":` + sampleTransactions + `}`,
		`{"age":30,"wage":0,"transactions":` + sampleTransactions + `}`,
		`{"age":30,"wage":100000,"transactions":[]}`,
	}
	for i, body := range cases {
		rr := doJSON(t, srv, http.MethodPost, "/api/returns/nps", body)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("case %d: status = %d, want 400", i, rr.Code)
		}
	}
}

func TestHandleReturnsAsync(t *testing.T) {
	srv := testServer()

	body := `{
		"scheme":"nps","age":30,"wage":100000,
		"transactions":` + sampleTransactions + `}`
	rr := doJSON(t, srv, http.MethodPost, "/api/returns/async", body)
	// No AMQP client configured, so the queue is unavailable.
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rr.Code)
	}

	rr = doJSON(t, srv, http.MethodPost, "/api/returns/async",
		`{"scheme":"bonds","age":30,"wage":100000,"transactions":`+sampleTransactions+`}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("bad scheme status = %d, want 400", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "unknown investment scheme") {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}
}

func TestMethodNotAllowed(t *testing.T) {
	srv := testServer()
	rr := doJSON(t, srv, http.MethodGet, "/api/parse", "")
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rr.Code)
	}
	if rr.Header().Get("Allow") != http.MethodPost {
		t.Fatalf("missing Allow header")
	}
}

func TestUnknownFieldsRejected(t *testing.T) {
	srv := testServer()
	rr := doJSON(t, srv, http.MethodPost, "/api/parse",
		`{"expenses":[{"timestamp":"2023-10-12 20:15:00","amount":250}],"extra":true}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}
