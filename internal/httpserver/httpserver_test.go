package httpserver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"abe-voice/internal/httpserver"
	"abe-voice/internal/middleware"
	"abe-voice/internal/skill"
	"abe-voice/pkg/log"
	"abe-voice/pkg/response"
)

type stubHandler struct{}

func (stubHandler) HandleAlexa(c *gin.Context) {
	c.JSON(http.StatusOK, skill.RenderWelcome("Olin"))
}

func newServer(t *testing.T, cfg httpserver.Config) *httpserver.HTTPServer {
	t.Helper()
	srv, err := httpserver.New(log.NewNop(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return srv
}

func baseConfig() httpserver.Config {
	return httpserver.Config{
		Logger:       log.NewNop(),
		Port:         8080,
		Mode:         gin.TestMode,
		Environment:  "production",
		SkillHandler: stubHandler{},
		Middleware:   middleware.New(log.NewNop(), middleware.Config{}),
	}
}

func TestNewValidation(t *testing.T) {
	cfg := baseConfig()
	cfg.SkillHandler = nil
	if _, err := httpserver.New(log.NewNop(), cfg); err == nil {
		t.Errorf("expected error without skill handler")
	}

	cfg = baseConfig()
	cfg.Port = 0
	if _, err := httpserver.New(log.NewNop(), cfg); err == nil {
		t.Errorf("expected error without port")
	}
}

func TestRoutes(t *testing.T) {
	srv := newServer(t, baseConfig())

	for _, path := range []string{"/health", "/ready", "/live"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			var resp response.Resp
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			data, _ := resp.Data.(map[string]any)
			if data["service"] != httpserver.ServiceName || data["environment"] != "production" {
				t.Errorf("unexpected payload %v", resp.Data)
			}
		})
	}

	t.Run("Webhook", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/webhook/alexa", strings.NewReader(`{}`))
		srv.Handler().ServeHTTP(w, req)
		if w.Code != http.StatusOK || w.Header().Get(middleware.HeaderRequestID) == "" {
			t.Errorf("expected 200 with request id, got %d %v", w.Code, w.Header())
		}
	})

	t.Run("Custom webhook path", func(t *testing.T) {
		cfg := baseConfig()
		cfg.WebhookPath = "/alexa"
		custom := newServer(t, cfg)
		w := httptest.NewRecorder()
		custom.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/alexa", strings.NewReader(`{}`)))
		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
	})
}

func TestRunStopsOnCancel(t *testing.T) {
	cfg := baseConfig()
	cfg.Port = 18087
	srv := newServer(t, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := srv.Run(ctx); err != nil {
		t.Errorf("expected clean shutdown, got %v", err)
	}
}
