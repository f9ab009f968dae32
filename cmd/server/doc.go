// Package main is the entry point for the blueprint builder server.
//
// The server renders a small demo UI where a user types a one-line
// project idea and gets back a decorative animation plus a project
// blueprint document: either a fixed template with the idea substituted
// in, or the output of a single Gemini API call with an ordered model
// fallback.
//
// Configuration:
//   - Environment variables (12-factor), optionally from a .env file
//   - CLI flags (override env vars)
//
// Usage:
//
//	# Template-only demo mode
//	./server
//
//	# With remote generation
//	GEMINI_API_KEY=... DEMO_MODE=false ./server -port 7860
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
