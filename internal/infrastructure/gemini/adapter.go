package gemini

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"orbitbuilder/internal/domain/blueprint"
	"orbitbuilder/internal/infrastructure/monitoring"
)

// Adapter implements blueprint.Generator over a TextCaller.
type Adapter struct {
	caller  TextCaller
	models  []string
	logger  *zap.Logger
	metrics *monitoring.Metrics
}

// NewAdapter creates an adapter trying models strictly in order.
func NewAdapter(caller TextCaller, models []string) *Adapter {
	return &Adapter{
		caller: caller,
		models: models,
		logger: zap.NewNop(),
	}
}

// WithLogger attaches a logger and returns the adapter.
func (a *Adapter) WithLogger(logger *zap.Logger) *Adapter {
	if logger != nil {
		a.logger = logger
	}
	return a
}

// WithMetrics attaches a metrics collector and returns the adapter.
func (a *Adapter) WithMetrics(metrics *monitoring.Metrics) *Adapter {
	a.metrics = metrics
	return a
}

// Generate tries each candidate model in order and short-circuits on the
// first success. When every candidate fails, the outcome carries the
// last candidate's error message.
func (a *Adapter) Generate(ctx context.Context, idea string) blueprint.Outcome {
	prompt := buildPrompt(idea)

	var lastErr error
	for _, model := range a.models {
		if a.metrics != nil {
			a.metrics.RecordCandidateAttempt(model)
		}

		text, err := a.caller.Call(ctx, model, prompt)
		if err != nil {
			lastErr = err
			if a.metrics != nil {
				a.metrics.RecordCandidateFailure(model)
			}
			a.logger.Warn("candidate model failed",
				zap.String("model", model),
				zap.Error(err),
			)
			continue
		}

		a.logger.Info("blueprint generated",
			zap.String("model", model),
			zap.Int("chars", len(text)),
		)
		return blueprint.Success(text)
	}

	if lastErr == nil {
		return blueprint.Failure("no candidate models configured")
	}
	return blueprint.Failure(lastErr.Error())
}

// buildPrompt embeds the idea verbatim into the fixed generation prompt.
func buildPrompt(idea string) string {
	return fmt.Sprintf(`Create a concise full-stack project blueprint for: %s

Include:
1. Tech stack recommendations
2. Architecture overview (ASCII diagram preferred)
3. Key files structure
4. Implementation steps

Format as markdown. Be practical and production-ready.`, idea)
}
