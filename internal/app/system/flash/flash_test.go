package flash

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
)

const testKey = "test-key-0123456789abcdef0123456789abcdef"

func TestNewManager_EmptyKey(t *testing.T) {
	_, err := NewManager("", "", false, zap.NewNop())
	if err == nil {
		t.Fatal("expected error for empty key")
	}
	if !strings.Contains(err.Error(), "session key is empty") {
		t.Errorf("error = %q, want it to name the empty session key", err)
	}
}

func TestNewManager_DefaultName(t *testing.T) {
	m, err := NewManager(testKey, "", false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if m.name != DefaultName {
		t.Errorf("name = %q, want %q", m.name, DefaultName)
	}
}

func TestAddThenPop(t *testing.T) {
	m, err := NewManager(testKey, "flash-test", false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	// POST: queue a notice
	rec := httptest.NewRecorder()
	m.Add(rec, httptest.NewRequest("POST", "/filter", nil), "Filter adjusted")
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a flash cookie")
	}

	// GET: read it back
	req := httptest.NewRequest("GET", "/", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec2 := httptest.NewRecorder()
	got := m.Pop(rec2, req)
	if len(got) != 1 || got[0] != "Filter adjusted" {
		t.Fatalf("Pop = %v, want [Filter adjusted]", got)
	}

	// The response must carry a cookie with the notice cleared.
	req3 := httptest.NewRequest("GET", "/", nil)
	for _, c := range rec2.Result().Cookies() {
		req3.AddCookie(c)
	}
	if again := m.Pop(httptest.NewRecorder(), req3); len(again) != 0 {
		t.Errorf("second Pop = %v, want empty", again)
	}
}

func TestPop_InvalidCookie(t *testing.T) {
	m, err := NewManager(testKey, "flash-test", false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: "flash-test", Value: "garbage"})
	if got := m.Pop(httptest.NewRecorder(), req); len(got) != 0 {
		t.Errorf("Pop with bad cookie = %v, want empty", got)
	}
}

func TestNilManager(t *testing.T) {
	var m *Manager
	m.Add(httptest.NewRecorder(), httptest.NewRequest("POST", "/", nil), "x")
	if got := m.Pop(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil)); got != nil {
		t.Errorf("nil Manager Pop = %v, want nil", got)
	}
}

func TestGenerateKey(t *testing.T) {
	k := GenerateKey()
	if len(k) != 64 {
		t.Errorf("GenerateKey length = %d, want 64", len(k))
	}
}
