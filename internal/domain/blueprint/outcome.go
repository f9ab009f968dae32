package blueprint

import "context"

// Outcome is the tagged result of a single remote generation attempt.
type Outcome struct {
	Text   string
	Reason string
}

// Success wraps generated text.
func Success(text string) Outcome {
	return Outcome{Text: text}
}

// Failure wraps a human-readable failure reason.
func Failure(reason string) Outcome {
	return Outcome{Reason: reason}
}

// Failed reports whether the attempt produced no text.
func (o Outcome) Failed() bool {
	return o.Reason != ""
}

// Generator produces blueprint text from a remote service.
// Implementations never return an error; failures are carried in the Outcome.
type Generator interface {
	Generate(ctx context.Context, idea string) Outcome
}
