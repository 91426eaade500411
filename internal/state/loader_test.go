// ABOUTME: Tests for the generation-guarded load cycle.
// ABOUTME: A stale cycle's result must never overwrite a newer one.
package state

import "testing"

func TestStaleGenerationDiscarded(t *testing.T) {
	var l loader[string]

	gen1 := l.begin()
	gen2 := l.begin()

	if !l.finish(gen2, "fresh") {
		t.Fatal("current generation should apply")
	}
	if l.finish(gen1, "stale") {
		t.Error("stale generation must be discarded")
	}

	got, ok := l.get()
	if !ok || got != "fresh" {
		t.Errorf("data = %q, want fresh", got)
	}
}

func TestFailKeepsLastKnownValue(t *testing.T) {
	var l loader[int]

	gen := l.begin()
	l.finish(gen, 42)

	gen = l.begin()
	if !l.fail(gen) {
		t.Fatal("current generation should resolve")
	}

	got, ok := l.get()
	if !ok || got != 42 {
		t.Errorf("data = %d, want last-known 42", got)
	}
	if l.isLoading() {
		t.Error("expected loading resolved after fail")
	}
}

func TestStaleFailDoesNotClearLoading(t *testing.T) {
	var l loader[int]

	gen1 := l.begin()
	l.begin() // newer cycle in flight

	if l.fail(gen1) {
		t.Error("stale fail must not resolve the newer cycle")
	}
	if !l.isLoading() {
		t.Error("newer cycle should still be loading")
	}
}
