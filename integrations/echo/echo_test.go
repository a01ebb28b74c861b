package echo

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	aitriage "github.com/blackwell-systems/aitriage"
	"github.com/labstack/echo/v4"
)

func TestFail(t *testing.T) {
	var published []aitriage.Signal
	cls := aitriage.New(aitriage.WithBus(aitriage.BusFunc(func(sig aitriage.Signal) {
		published = append(published, sig)
	})))

	e := echo.New()
	e.GET("/generate", func(c echo.Context) error {
		return Fail(c, cls, errors.New("Resource exhausted: quota exceeded"))
	})

	req := httptest.NewRequest("GET", "/generate", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("expected status %d, got %d", http.StatusTooManyRequests, rec.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response["message"] != aitriage.MsgCapacity {
		t.Errorf("expected capacity message, got %q", response["message"])
	}
	if len(published) != 0 {
		t.Errorf("expected no signals, got %v", published)
	}
}

func TestFailAuthError(t *testing.T) {
	cls := aitriage.New()

	e := echo.New()
	e.GET("/generate", func(c echo.Context) error {
		return Fail(c, cls, errors.New("Permission denied [401]"))
	})

	req := httptest.NewRequest("GET", "/generate", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response["message"] != aitriage.MsgInvalidKey {
		t.Errorf("expected invalid-key message, got %q", response["message"])
	}
}
