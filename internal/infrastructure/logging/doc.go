// Package logging provides structured logging built on zap.
//
// Production output is JSON to stdout; development output is colored
// console with debug level enabled.
package logging
