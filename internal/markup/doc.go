// Package markup turns the delimiter annotation syntax used in study notes
// into styled HTML. A Registry describes every delimiter rule; a Renderer
// applies the rules as an ordered pipeline of string-to-string passes and
// composes the final note. The package also strips base labels back to
// plain text and extracts the text content of rendered fragments.
package markup
