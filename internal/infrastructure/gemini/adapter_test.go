package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedCaller returns canned results per model and records call order.
type scriptedCaller struct {
	results map[string]callResult
	calls   []string
	prompts []string
}

type callResult struct {
	text string
	err  error
}

func (s *scriptedCaller) Call(_ context.Context, model, prompt string) (string, error) {
	s.calls = append(s.calls, model)
	s.prompts = append(s.prompts, prompt)
	res := s.results[model]
	return res.text, res.err
}

func TestGenerateFirstCandidateSucceeds(t *testing.T) {
	caller := &scriptedCaller{results: map[string]callResult{
		"fast-model": {text: "generated blueprint"},
		"big-model":  {text: "should never be used"},
	}}
	adapter := NewAdapter(caller, []string{"fast-model", "big-model"})

	outcome := adapter.Generate(context.Background(), "a chat app")

	require.False(t, outcome.Failed())
	assert.Equal(t, "generated blueprint", outcome.Text)
	assert.Equal(t, []string{"fast-model"}, caller.calls, "second candidate never invoked")
}

func TestGenerateFallsThroughToSecondCandidate(t *testing.T) {
	caller := &scriptedCaller{results: map[string]callResult{
		"fast-model": {err: errors.New("model not found")},
		"big-model":  {text: "plan from the big model"},
	}}
	adapter := NewAdapter(caller, []string{"fast-model", "big-model"})

	outcome := adapter.Generate(context.Background(), "a chat app")

	require.False(t, outcome.Failed())
	assert.Equal(t, "plan from the big model", outcome.Text)
	assert.Equal(t, []string{"fast-model", "big-model"}, caller.calls, "candidates tried in order")
}

func TestGenerateAllCandidatesFail(t *testing.T) {
	caller := &scriptedCaller{results: map[string]callResult{
		"fast-model": {err: errors.New("auth error")},
		"big-model":  {err: errors.New("quota exceeded")},
	}}
	adapter := NewAdapter(caller, []string{"fast-model", "big-model"})

	outcome := adapter.Generate(context.Background(), "a chat app")

	require.True(t, outcome.Failed())
	assert.Equal(t, "quota exceeded", outcome.Reason, "only the last candidate's error is retained")
	assert.Equal(t, []string{"fast-model", "big-model"}, caller.calls)
}

func TestGenerateNoCandidates(t *testing.T) {
	adapter := NewAdapter(&scriptedCaller{}, nil)

	outcome := adapter.Generate(context.Background(), "anything")

	require.True(t, outcome.Failed())
	assert.Equal(t, "no candidate models configured", outcome.Reason)
}

func TestGenerateStartsFreshEveryCall(t *testing.T) {
	caller := &scriptedCaller{results: map[string]callResult{
		"fast-model": {err: errors.New("down")},
		"big-model":  {text: "ok"},
	}}
	adapter := NewAdapter(caller, []string{"fast-model", "big-model"})

	adapter.Generate(context.Background(), "idea")
	adapter.Generate(context.Background(), "idea")

	// No circuit breaking: the failing head of the list is retried on
	// every Generate call.
	assert.Equal(t, []string{"fast-model", "big-model", "fast-model", "big-model"}, caller.calls)
}

func TestGeneratePromptEmbedsIdeaVerbatim(t *testing.T) {
	caller := &scriptedCaller{results: map[string]callResult{
		"fast-model": {text: "ok"},
	}}
	adapter := NewAdapter(caller, []string{"fast-model"})

	idea := "  a social network for plants, unfiltered!  "
	adapter.Generate(context.Background(), idea)

	require.Len(t, caller.prompts, 1)
	assert.Contains(t, caller.prompts[0], idea)
	assert.Contains(t, caller.prompts[0], "Format as markdown")
}
