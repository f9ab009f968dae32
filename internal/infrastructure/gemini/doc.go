// Package gemini wraps the Google generative-language API behind a
// narrow text-generation interface.
//
// The Adapter walks an ordered list of candidate models, calling each
// with fixed generation parameters until one succeeds. There is no
// retry, no backoff and no circuit breaking: every Generate call starts
// fresh at the head of the list, and only the last candidate's error is
// surfaced when all of them fail.
package gemini
