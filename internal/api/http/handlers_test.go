package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orbitbuilder/internal/assets"
	"orbitbuilder/internal/domain/blueprint"
	"orbitbuilder/internal/infrastructure/config"
	"orbitbuilder/internal/infrastructure/monitoring"
)

type stubGenerator struct {
	outcome blueprint.Outcome
	calls   int
}

func (s *stubGenerator) Generate(_ context.Context, _ string) blueprint.Outcome {
	s.calls++
	return s.outcome
}

func newTestRouter(gen blueprint.Generator, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)

	if cfg == nil {
		cfg = config.Default()
	}
	composer := blueprint.NewComposer(gen)
	handlers := NewHandlers(composer, cfg, monitoring.NewMetrics())

	router := gin.New()
	router.GET("/", handlers.Index)
	router.GET("/animation", handlers.Animation)
	router.POST("/blueprint", handlers.ProcessBlueprint)
	router.GET("/health", handlers.Health)
	return router
}

func postBlueprint(t *testing.T, router *gin.Engine, body any) (*httptest.ResponseRecorder, BlueprintResponse) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/blueprint", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp BlueprintResponse
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func TestProcessBlueprintTemplateMode(t *testing.T) {
	gen := &stubGenerator{outcome: blueprint.Success("never used")}
	router := newTestRouter(gen, nil)

	w, resp := postBlueprint(t, router, BlueprintRequest{Idea: "a todo app", UseRemote: false})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, blueprint.ModeTemplate, resp.Mode)
	assert.Contains(t, resp.Blueprint, "# Project Blueprint: a todo app")
	assert.Equal(t, 0, gen.calls)
}

func TestProcessBlueprintRemoteMode(t *testing.T) {
	gen := &stubGenerator{outcome: blueprint.Success("# Remote plan")}
	router := newTestRouter(gen, nil)

	w, resp := postBlueprint(t, router, BlueprintRequest{Idea: "a todo app", UseRemote: true})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, blueprint.ModeRemote, resp.Mode)
	assert.Equal(t, "# Remote plan", resp.Blueprint)
	assert.Equal(t, 1, gen.calls)
}

func TestProcessBlueprintFallback(t *testing.T) {
	gen := &stubGenerator{outcome: blueprint.Failure("upstream timeout")}
	router := newTestRouter(gen, nil)

	w, resp := postBlueprint(t, router, BlueprintRequest{Idea: "a todo app", UseRemote: true})

	require.Equal(t, http.StatusOK, w.Code, "generation failures never produce an error status")
	assert.Equal(t, blueprint.ModeFallback, resp.Mode)
	assert.Equal(t, "upstream timeout", resp.Notice)
	assert.Contains(t, resp.Blueprint, "upstream timeout")
	assert.Contains(t, resp.Blueprint, "## Tech Stack")
}

func TestProcessBlueprintAnimationIsConstant(t *testing.T) {
	router := newTestRouter(nil, nil)

	_, first := postBlueprint(t, router, BlueprintRequest{Idea: "one idea"})
	_, second := postBlueprint(t, router, BlueprintRequest{Idea: "a completely different idea", UseRemote: true})

	assert.Equal(t, assets.AnimationHTML, first.Animation)
	assert.Equal(t, first.Animation, second.Animation)
}

func TestProcessBlueprintBadRequest(t *testing.T) {
	router := newTestRouter(nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/blueprint", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnimationEndpoint(t *testing.T) {
	router := newTestRouter(nil, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/animation", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Equal(t, assets.AnimationHTML, w.Body.String())
}

func TestIndexToggleState(t *testing.T) {
	t.Run("unconfigured remote disables toggle", func(t *testing.T) {
		router := newTestRouter(nil, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, `<div class="toggle" data-disabled="true">`)
		assert.NotContains(t, body, "__REMOTE_DEFAULT__")
		assert.NotContains(t, body, "__REMOTE_AVAILABLE__")
		assert.NotContains(t, body, "__REMOTE_DISABLED__")
	})

	t.Run("configured remote with demo mode off checks toggle", func(t *testing.T) {
		cfg := config.Default()
		cfg.DemoMode = false
		gen := &stubGenerator{outcome: blueprint.Success("x")}
		router := newTestRouter(gen, cfg)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Contains(t, w.Body.String(), `id="use-remote" checked`)
	})
}

func TestHealth(t *testing.T) {
	gen := &stubGenerator{outcome: blueprint.Success("x")}
	router := newTestRouter(gen, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, true, body["remote_configured"])
}
