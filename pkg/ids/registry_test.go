package ids_test

import (
	"regexp"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-htmlextra/pkg/ids"
)

func TestRegistry_Unique(t *testing.T) {
	r := ids.NewRegistry()

	got := []string{
		r.Unique("Main Menu"),
		r.Unique("main menu"),
		r.Unique("main-menu"),
		r.Unique("main-menu-2"),
		r.Unique("Footer"),
	}
	want := []string{"main-menu", "main-menu-2", "main-menu-3", "main-menu-2-2", "footer"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}

	r.Reset()
	if id := r.Unique("footer"); id != "footer" {
		t.Fatalf("expected reset registry to hand out footer again, got %q", id)
	}
}

func TestRegistry_RandomFallback(t *testing.T) {
	r := ids.NewRegistry()
	pattern := regexp.MustCompile(`^id-[0-9a-f]{8}$`)

	for _, base := range []string{"", "   ", "!!!"} {
		id := r.Unique(base)
		if !pattern.MatchString(id) {
			t.Fatalf("expected random id for %q, got %q", base, id)
		}
	}
}

func TestRegistry_Concurrent(t *testing.T) {
	r := ids.NewRegistry()
	const workers = 16

	results := make(chan string, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- r.Unique("item")
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[string]struct{}, workers)
	for id := range results {
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = struct{}{}
	}
	if len(seen) != workers {
		t.Fatalf("expected %d ids, got %d", workers, len(seen))
	}
}
