package deck_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/dalemusser/mbticards/internal/app/features/deck"
	uierrors "github.com/dalemusser/mbticards/internal/app/features/errors"
	"github.com/dalemusser/mbticards/internal/app/system/flash"
	"github.com/dalemusser/mbticards/internal/app/system/limits"
	"github.com/dalemusser/mbticards/internal/app/system/metrics"
	"github.com/dalemusser/mbticards/internal/testutil"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T, defaultFilter string) *deck.Handler {
	t.Helper()
	logger := zap.NewNop()
	fm, err := flash.NewManager("test-key-0123456789abcdef0123456789abcdef", "", false, logger)
	if err != nil {
		t.Fatalf("flash.NewManager: %v", err)
	}
	rec := metrics.New(prometheus.NewRegistry())
	return deck.NewHandler(defaultFilter, fm, rec, uierrors.NewErrorLogger(logger), logger)
}

type apiResponse struct {
	Filter string   `json:"filter"`
	Sort   []string `json:"sort"`
	Types  []struct {
		Type      string   `json:"type"`
		Rank      int      `json:"rank"`
		Functions []string `json:"functions"`
	} `json:"types"`
}

func getJSON(t *testing.T, h *deck.Handler, target string) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	deck.Routes(h).ServeHTTP(rec, httptest.NewRequest("GET", target, nil))

	var resp apiResponse
	if rec.Code == http.StatusOK {
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
	}
	return rec, resp
}

func typeNames(resp apiResponse) []string {
	out := make([]string, len(resp.Types))
	for i, e := range resp.Types {
		out[i] = e.Type
	}
	return out
}

func TestNewHandler(t *testing.T) {
	if h := newTestHandler(t, ""); h == nil {
		t.Fatal("NewHandler() returned nil")
	}
}

func TestServeDeckJSON_Default(t *testing.T) {
	rec, resp := getJSON(t, newTestHandler(t, ""), "/api/deck")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	got := strings.Join(typeNames(resp), " ")
	want := "INTP ISTP ESTP ESFP ISFP INFP ENFP ENTP ENTJ ESTJ ISTJ ISFJ ESFJ ENFJ INFJ INTJ"
	if got != want {
		t.Errorf("types = %s\nwant    %s", got, want)
	}
	for _, e := range resp.Types {
		if e.Rank != 0 {
			t.Errorf("%s rank = %d, want 0 with no sort", e.Type, e.Rank)
		}
		if len(e.Functions) != 8 {
			t.Errorf("%s has %d functions", e.Type, len(e.Functions))
		}
	}
}

func TestServeDeckJSON_FilterAndSort(t *testing.T) {
	rec, resp := getJSON(t, newTestHandler(t, ""), "/api/deck?filter=ni&sort=Ni")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if resp.Filter != "IN" {
		t.Errorf("filter = %q, want IN", resp.Filter)
	}
	if len(resp.Sort) != 1 || resp.Sort[0] != "Ni" {
		t.Errorf("sort = %v, want [Ni]", resp.Sort)
	}
	if got := strings.Join(typeNames(resp), " "); got != "INFJ INTJ INTP INFP" {
		t.Errorf("types = %s, want INFJ INTJ INTP INFP", got)
	}
	if resp.Types[0].Rank != 8 || resp.Types[2].Rank != 3 {
		t.Errorf("ranks = %d, %d; want 8, 3", resp.Types[0].Rank, resp.Types[2].Rank)
	}
}

func TestServeDeckJSON_CommaFilter(t *testing.T) {
	_, resp := getJSON(t, newTestHandler(t, ""), "/api/deck?filter=INFJ,EST")
	if got := strings.Join(typeNames(resp), " "); got != "ESTP ESTJ INFJ" {
		t.Errorf("types = %s, want ESTP ESTJ INFJ", got)
	}
}

func TestServeDeckJSON_BadSort(t *testing.T) {
	rec, _ := getJSON(t, newTestHandler(t, ""), "/api/deck?sort=Qq")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "error") {
		t.Errorf("body should carry an error: %s", rec.Body.String())
	}
}

func TestServeDeckJSON_DefaultFilter(t *testing.T) {
	h := newTestHandler(t, "EJ")

	_, resp := getJSON(t, h, "/api/deck")
	if resp.Filter != "EJ" || len(resp.Types) != 4 {
		t.Errorf("default filter: filter=%q types=%d, want EJ/4", resp.Filter, len(resp.Types))
	}

	_, resp = getJSON(t, h, "/api/deck?filter=")
	if resp.Filter != "" || len(resp.Types) != 16 {
		t.Errorf("explicit empty filter: filter=%q types=%d, want \"\"/16", resp.Filter, len(resp.Types))
	}
}

func TestHandleSort_Redirects(t *testing.T) {
	h := newTestHandler(t, "")
	rec := testutil.NewRecorder()
	deck.Routes(h).ServeHTTP(rec, httptest.NewRequest("GET", "/sort/ni?filter=IN&hidden=1", nil))

	rec.AssertRedirect(t, "/?filter=IN&hidden=1&sort=Ni")
}

func TestHandleSort_ReplacesPriority(t *testing.T) {
	h := newTestHandler(t, "")
	rec := testutil.NewRecorder()
	// An existing sort parameter is ignored; the click replaces it.
	deck.Routes(h).ServeHTTP(rec, httptest.NewRequest("GET", "/sort/Te?sort=Ni,Fe", nil))

	rec.AssertRedirect(t, "/?sort=Te")
}

func TestHandleSort_DirectCall(t *testing.T) {
	h := newTestHandler(t, "")
	req := testutil.WithChiURLParam(testutil.NewRequest("GET", "/sort/FE?filter=EJ"), "function", "FE")
	rec := testutil.NewRecorder()
	h.HandleSort(rec, req)

	rec.AssertRedirect(t, "/?filter=EJ&sort=Fe")
}

func TestHandleSort_UnknownFunction(t *testing.T) {
	h := newTestHandler(t, "")
	rec := httptest.NewRecorder()

	// Error page rendering may panic without initialized templates; the
	// status is written first.
	func() {
		defer func() { _ = recover() }()
		deck.Routes(h).ServeHTTP(rec, httptest.NewRequest("GET", "/sort/Xx", nil))
	}()

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func postForm(t *testing.T, h *deck.Handler, form url.Values) *testutil.ResponseRecorder {
	t.Helper()
	rec := testutil.NewRecorder()
	deck.Routes(h).ServeHTTP(rec, testutil.NewFormRequest("/filter", form))
	return rec
}

func TestHandleFilter_NormalizesAndKeepsSort(t *testing.T) {
	h := newTestHandler(t, "")
	rec := postForm(t, h, url.Values{"filter": {"in"}, "sort": {"Ni"}})

	rec.AssertRedirect(t, "/?filter=IN&sort=Ni")
	if len(rec.Result().Cookies()) != 0 {
		t.Error("a case-only change should not set a flash notice")
	}
}

func TestHandleFilter_AdjustedSetsFlash(t *testing.T) {
	h := newTestHandler(t, "")
	rec := postForm(t, h, url.Values{"filter": {"ie,n"}, "hidden": {"1"}})

	rec.AssertRedirect(t, "/?filter=%2CN&hidden=1")
	if len(rec.Result().Cookies()) == 0 {
		t.Error("an adjusted filter should set a flash notice cookie")
	}
}

func TestHandleFilter_ClearedFilterOverridesDefault(t *testing.T) {
	h := newTestHandler(t, "EJ")
	rec := postForm(t, h, url.Values{"filter": {""}})

	rec.AssertRedirect(t, "/?filter=")

	loc, err := url.Parse(rec.Header().Get("Location"))
	if err != nil {
		t.Fatalf("parse Location: %v", err)
	}
	_, resp := getJSON(t, h, "/api/deck?"+loc.RawQuery)
	if resp.Filter != "" || len(resp.Types) != 16 {
		t.Errorf("after clearing: filter=%q types=%d, want \"\"/16", resp.Filter, len(resp.Types))
	}
}

func TestHandleSort_DefaultFilter(t *testing.T) {
	h := newTestHandler(t, "EJ")

	rec := testutil.NewRecorder()
	deck.Routes(h).ServeHTTP(rec, httptest.NewRequest("GET", "/sort/Ni?filter=", nil))
	rec.AssertRedirect(t, "/?filter=&sort=Ni")

	rec = testutil.NewRecorder()
	deck.Routes(h).ServeHTTP(rec, httptest.NewRequest("GET", "/sort/Ni", nil))
	rec.AssertRedirect(t, "/?filter=EJ&sort=Ni")
}

func TestHandleFilter_BadSortField(t *testing.T) {
	h := newTestHandler(t, "")
	var rec *testutil.ResponseRecorder
	func() {
		defer func() { _ = recover() }()
		rec = testutil.NewRecorder()
		deck.Routes(h).ServeHTTP(rec, testutil.NewFormRequest("/filter", url.Values{"filter": {"IN"}, "sort": {"Zz"}}))
	}()
	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestHandleFilter_OversizedBody(t *testing.T) {
	h := newTestHandler(t, "")
	var rec *testutil.ResponseRecorder
	func() {
		defer func() { _ = recover() }()
		rec = testutil.NewRecorder()
		big := url.Values{"filter": {strings.Repeat("I", limits.MaxFilterFormSize+1)}}
		deck.Routes(h).ServeHTTP(rec, testutil.NewFormRequest("/filter", big))
	}()
	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestServeDeck_BadSort(t *testing.T) {
	h := newTestHandler(t, "")
	rec := httptest.NewRecorder()
	func() {
		defer func() { _ = recover() }()
		h.ServeDeck(rec, httptest.NewRequest("GET", "/?sort=Qq", nil))
	}()
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
