// Package template defines the engine-agnostic seam the HTML helpers are
// registered on. The gotemplate subpackage provides the pongo2 implementation.
package template
