// Package blueprint produces project blueprint documents from one-line
// project ideas.
//
// A blueprint is opaque markdown text. The Composer chooses between two
// paths:
//   - Template: a fixed document with the project name substituted in
//   - Remote: text from a generative API, supplied by a Generator
//
// Remote failures never escape Compose; they are folded into a notice
// plus the full template so every call yields a usable document.
package blueprint
