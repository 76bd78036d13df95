// Package ids hands out element IDs that are unique within a Registry.
// A Registry is meant to live for one render session; there is no global
// registry.
package ids

import (
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// Registry remembers the IDs it handed out. It is safe for concurrent use.
type Registry struct {
	mu     sync.Mutex
	taken  map[string]struct{}
	suffix map[string]int
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	r := &Registry{}
	r.reset()
	return r
}

// Unique slugifies base and returns it the first time it is requested, then
// base-2, base-3 and so on. A base that slugifies to nothing gets a random ID.
func (r *Registry) Unique(base string) string {
	id := slug.Make(strings.TrimSpace(base))
	if id == "" {
		return r.Random()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensure()

	if _, ok := r.taken[id]; !ok {
		r.taken[id] = struct{}{}
		return id
	}

	n := max(r.suffix[id], 2)
	candidate := id + "-" + strconv.Itoa(n)
	for {
		if _, ok := r.taken[candidate]; !ok {
			break
		}
		n++
		candidate = id + "-" + strconv.Itoa(n)
	}
	r.suffix[id] = n + 1
	r.taken[candidate] = struct{}{}
	return candidate
}

// Random returns "id-" followed by eight hex characters. The value is
// registered so Unique never hands it out again.
func (r *Registry) Random() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensure()

	for {
		id := "id-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
		if _, ok := r.taken[id]; ok {
			continue
		}
		r.taken[id] = struct{}{}
		return id
	}
}

// Reset forgets every ID handed out so far.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reset()
}

func (r *Registry) ensure() {
	if r.taken == nil {
		r.reset()
	}
}

func (r *Registry) reset() {
	r.taken = make(map[string]struct{})
	r.suffix = make(map[string]int)
}
