// Package assets holds the static artifacts served by the demo UI.
package assets

import _ "embed"

// AnimationHTML is the orbiting-orbs visualization. It is a fixed,
// parameterless document returned byte-identical on every request.
//
//go:embed animation.html
var AnimationHTML string

// IndexHTML is the demo page shell. The server substitutes the
// __REMOTE_DEFAULT__, __REMOTE_AVAILABLE__ and __REMOTE_DISABLED__
// tokens before serving; they only set the initial toggle state.
//
//go:embed index.html
var IndexHTML string
