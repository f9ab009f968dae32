package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"orbitbuilder/internal/assets"
	"orbitbuilder/internal/domain/blueprint"
	"orbitbuilder/internal/infrastructure/config"
	"orbitbuilder/internal/infrastructure/monitoring"
)

// Handlers contains all HTTP handlers.
type Handlers struct {
	composer *blueprint.Composer
	cfg      *config.Config
	metrics  *monitoring.Metrics

	indexPage string
}

// NewHandlers creates a new handler set.
func NewHandlers(composer *blueprint.Composer, cfg *config.Config, metrics *monitoring.Metrics) *Handlers {
	return &Handlers{
		composer:  composer,
		cfg:       cfg,
		metrics:   metrics,
		indexPage: renderIndexPage(cfg, composer.RemoteConfigured()),
	}
}

// BlueprintRequest is the body of POST /blueprint.
type BlueprintRequest struct {
	Idea      string `json:"idea"`
	UseRemote bool   `json:"use_remote"`
}

// BlueprintResponse pairs the animation artifact with the document.
type BlueprintResponse struct {
	Animation string         `json:"animation"`
	Blueprint string         `json:"blueprint"`
	Mode      blueprint.Mode `json:"mode"`
	Notice    string         `json:"notice,omitempty"`
}

// Index serves the demo page.
func (h *Handlers) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(h.indexPage))
}

// Animation serves the static animation artifact. The content is the
// same on every request regardless of inputs.
func (h *Handlers) Animation(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(assets.AnimationHTML))
}

// Health handles health checks.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":            "healthy",
		"service":           "orbit-builder",
		"remote_configured": h.composer.RemoteConfigured(),
		"demo_mode":         h.cfg.DemoMode,
	})
}

// ProcessBlueprint produces an animation artifact and a blueprint
// document for the submitted idea. It never returns an error status
// for generation problems; failures surface as fallback content.
func (h *Handlers) ProcessBlueprint(c *gin.Context) {
	var req BlueprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.composer.Compose(c.Request.Context(), req.Idea, req.UseRemote)
	h.metrics.RecordBlueprint(string(result.Mode))

	c.JSON(http.StatusOK, BlueprintResponse{
		Animation: assets.AnimationHTML,
		Blueprint: result.Document,
		Mode:      result.Mode,
		Notice:    result.Notice,
	})
}

// renderIndexPage fills the toggle-state tokens in the demo page.
// Configuration influences only the default toggle state, never the
// correctness of a request.
func renderIndexPage(cfg *config.Config, remoteConfigured bool) string {
	checked := ""
	if !cfg.DemoMode && remoteConfigured {
		checked = "checked"
	}
	available := ""
	disabled := "false"
	if !remoteConfigured {
		available = "disabled"
		disabled = "true"
	}

	page := strings.ReplaceAll(assets.IndexHTML, "__REMOTE_DEFAULT__", checked)
	page = strings.ReplaceAll(page, "__REMOTE_AVAILABLE__", available)
	page = strings.ReplaceAll(page, "__REMOTE_DISABLED__", disabled)
	return page
}
