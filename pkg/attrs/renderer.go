package attrs

import (
	"github.com/goliatone/go-htmlextra/pkg/escape"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithEscaper overrides the escaper used for attribute values.
func WithEscaper(e escape.Escaper) Option {
	return func(r *Renderer) {
		if e != nil {
			r.escaper = e
		}
	}
}

// WithClassNormalizer overrides how token attributes are joined.
func WithClassNormalizer(fn ClassNormalizer) Option {
	return func(r *Renderer) {
		if fn != nil {
			r.classList = fn
		}
	}
}

// WithClassifier overrides the attribute classification.
func WithClassifier(fn Classifier) Option {
	return func(r *Renderer) {
		if fn != nil {
			r.classify = fn
		}
	}
}

// WithMaxDepth bounds how deeply nested values may be.
func WithMaxDepth(depth int) Option {
	return func(r *Renderer) {
		if depth > 0 {
			r.maxDepth = depth
		}
	}
}

// Renderer merges and renders attribute sets. A Renderer holds no mutable
// state and is safe for concurrent use.
type Renderer struct {
	escaper   escape.Escaper
	classList ClassNormalizer
	classify  Classifier
	maxDepth  int
}

// New constructs a Renderer applying the provided options.
func New(options ...Option) *Renderer {
	r := &Renderer{
		escaper:   escape.HTML,
		classList: NormalizeClassList,
		classify:  Classify,
		maxDepth:  DefaultMaxDepth,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

var defaultRenderer = New()

// Default returns the shared Renderer configured with the default options.
func Default() *Renderer {
	return defaultRenderer
}

// Merge merges sources with the default Renderer.
func Merge(sources ...any) (*Map, error) {
	return defaultRenderer.Merge(sources...)
}

// Attributes renders sources with the default Renderer.
func Attributes(sources ...any) (string, error) {
	return defaultRenderer.Attributes(sources...)
}

// Attribute renders a single attribute with the default Renderer.
func Attribute(name string, value any, topLevel bool) (string, error) {
	return defaultRenderer.Attribute(name, value, topLevel)
}

// Styles serialises CSS properties with the default Renderer.
func Styles(properties any) (*string, error) {
	return defaultRenderer.Styles(properties)
}

// Coerce converts raw into the canonical value for the attribute name using
// the default Renderer.
func Coerce(name string, raw any) (Value, error) {
	return defaultRenderer.Coerce(name, raw)
}
