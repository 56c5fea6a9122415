package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"abe-voice/internal/middleware"
	"abe-voice/internal/model"
	"abe-voice/internal/skill"
	skillHTTP "abe-voice/internal/skill/delivery/http"
	"abe-voice/pkg/log"
)

type mockUseCase struct {
	out skill.DispatchOutput
	err error
	got *skill.DispatchInput
}

func (m *mockUseCase) Dispatch(ctx context.Context, input skill.DispatchInput) (skill.DispatchOutput, error) {
	m.got = &input
	return m.out, m.err
}

func newRouter(uc skill.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(log.NewNop(), middleware.Config{})
	skillHTTP.RegisterRoutes(r, "", skillHTTP.New(log.NewNop(), uc), mw)
	return r
}

func post(r http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, skillHTTP.DefaultPath, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) skill.Response {
	t.Helper()
	var resp skill.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not an envelope: %v (%s)", err, w.Body.String())
	}
	return resp
}

func TestHandleAlexa(t *testing.T) {
	t.Run("Launch", func(t *testing.T) {
		uc := &mockUseCase{out: skill.DispatchOutput{Response: skill.RenderWelcome("Olin"), Outcome: skill.OutcomeWelcome}}
		w := post(newRouter(uc), `{"version":"1.0","session":{"application":{"applicationId":"amzn1.ask.skill.1"}},"request":{"type":"LaunchRequest","requestId":"r1"}}`)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		want := `{"version":"1.0","response":{"outputSpeech":{"type":"PlainText","text":"Welcome to the ABE, the Olin calendar. How may I help you?"}}}`
		if w.Body.String() != want {
			t.Errorf("got %s\nwant %s", w.Body.String(), want)
		}
		if uc.got == nil || uc.got.Envelope.ApplicationID() != "amzn1.ask.skill.1" {
			t.Errorf("envelope not forwarded: %+v", uc.got)
		}
	})

	t.Run("Intent slots are bound", func(t *testing.T) {
		uc := &mockUseCase{out: skill.DispatchOutput{Response: skill.RenderSpeech("ok")}}
		post(newRouter(uc), `{"request":{"type":"IntentRequest","intent":{"name":"WhatsHappeningOn","slots":{"date":{"name":"date","value":"2018-02-20"}}}}}`)

		req, err := model.ParseIntentRequest(uc.got.Envelope)
		if err != nil {
			t.Fatalf("unexpected parse error: %v", err)
		}
		slot, ok := req.Slot("date")
		if !ok || slot.Value == nil || *slot.Value != "2018-02-20" {
			t.Errorf("unexpected slot %+v", slot)
		}
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		uc := &mockUseCase{}
		w := post(newRouter(uc), `{"request":`)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := decode(t, w).Text(); got != skill.MsgMalformed {
			t.Errorf("unexpected text %q", got)
		}
		if uc.got != nil {
			t.Errorf("usecase should not be called for invalid JSON")
		}
	})

	t.Run("Malformed request", func(t *testing.T) {
		uc := &mockUseCase{err: skill.ErrMissingDateSlot}
		w := post(newRouter(uc), `{"request":{"type":"IntentRequest","intent":{"name":"WhatsHappeningOn"}}}`)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := decode(t, w).Text(); got != skill.MsgMalformed {
			t.Errorf("unexpected text %q", got)
		}
	})

	t.Run("Unexpected error", func(t *testing.T) {
		uc := &mockUseCase{err: errors.New("boom")}
		w := post(newRouter(uc), `{"request":{"type":"LaunchRequest"}}`)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := decode(t, w).Text(); got != skill.MsgInternal {
			t.Errorf("unexpected text %q", got)
		}
	})
}
