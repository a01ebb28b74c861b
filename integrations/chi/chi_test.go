package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	chirouter "github.com/go-chi/chi/v5"

	aitriage "github.com/blackwell-systems/aitriage"
)

func TestFail(t *testing.T) {
	var published []aitriage.Signal
	cls := aitriage.New(aitriage.WithBus(aitriage.BusFunc(func(sig aitriage.Signal) {
		published = append(published, sig)
	})))

	r := chirouter.NewRouter()
	r.Get("/generate", func(w http.ResponseWriter, req *http.Request) {
		Fail(w, cls, errors.New(`{"error":{"code":403,"message":"veo auth token rejected"}}`))
	})

	req := httptest.NewRequest("GET", "/generate", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected status %d, got %d", http.StatusForbidden, rec.Code)
	}

	var response aitriage.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Message != aitriage.MsgVeoAuth {
		t.Errorf("expected Veo auth message, got %q", response.Message)
	}
	if len(published) != 1 || published[0] != aitriage.SignalVeoKeyClaim {
		t.Errorf("expected %s, got %v", aitriage.SignalVeoKeyClaim, published)
	}
}

func TestFailUnclassified(t *testing.T) {
	cls := aitriage.New()

	r := chirouter.NewRouter()
	r.Get("/generate", func(w http.ResponseWriter, req *http.Request) {
		Fail(w, cls, errors.New("odd failure"))
	})

	req := httptest.NewRequest("GET", "/generate", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, rec.Code)
	}
}
