package blueprint

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Mode identifies which path produced a blueprint document.
type Mode string

const (
	// ModeTemplate means the deterministic template was chosen directly.
	ModeTemplate Mode = "template"
	// ModeRemote means the remote service produced the document.
	ModeRemote Mode = "remote"
	// ModeFallback means remote generation failed and the template was
	// returned with a failure notice.
	ModeFallback Mode = "fallback"
)

// Result is the output of one Compose call.
type Result struct {
	Document string `json:"blueprint"`
	Mode     Mode   `json:"mode"`
	Notice   string `json:"notice,omitempty"`
}

// Composer decides between the deterministic template and remote
// generation, absorbing every remote failure into fallback content.
type Composer struct {
	generator Generator
	logger    *zap.Logger
}

// NewComposer creates a composer. A nil generator means remote
// generation is not configured; remote requests then take the template
// path.
func NewComposer(generator Generator) *Composer {
	return &Composer{
		generator: generator,
		logger:    zap.NewNop(),
	}
}

// WithLogger attaches a logger and returns the composer.
func (c *Composer) WithLogger(logger *zap.Logger) *Composer {
	if logger != nil {
		c.logger = logger
	}
	return c
}

// RemoteConfigured reports whether a generator is attached.
func (c *Composer) RemoteConfigured() bool {
	return c.generator != nil
}

// Compose produces the blueprint document for an idea. It never fails:
// remote errors are converted into a notice plus the full template.
func (c *Composer) Compose(ctx context.Context, idea string, useRemote bool) Result {
	if !useRemote {
		return Result{Document: RenderTemplate(idea), Mode: ModeTemplate}
	}

	if c.generator == nil {
		// Remote requested but unavailable: same document as the
		// template path, surfaced only through the mode field.
		return Result{Document: RenderTemplate(idea), Mode: ModeTemplate}
	}

	outcome := c.generator.Generate(ctx, idea)
	if outcome.Failed() {
		c.logger.Warn("remote generation failed, falling back to template",
			zap.String("reason", outcome.Reason),
		)
		return Result{
			Document: fallbackDocument(idea, outcome.Reason),
			Mode:     ModeFallback,
			Notice:   outcome.Reason,
		}
	}

	return Result{Document: outcome.Text, Mode: ModeRemote}
}

// fallbackDocument prefixes the full template with the failure reason.
func fallbackDocument(idea, reason string) string {
	return fmt.Sprintf("❌ Error generating blueprint: %s\n\nFalling back to demo mode...\n\n%s",
		reason, RenderTemplate(idea))
}
