package id

import (
	"strings"
	"sync"
	"testing"
)

func TestGenerate(t *testing.T) {
	gen := NewGenerator()

	id1 := gen.Generate()
	id2 := gen.Generate()

	if id1.String() == id2.String() {
		t.Error("Generated IDs should be unique")
	}
}

func TestGenerateWithPrefix(t *testing.T) {
	gen := NewGenerator()

	for _, prefix := range []string{RequestPrefix, TracePrefix, SpanPrefix} {
		id := gen.GenerateWithPrefix(prefix)

		if !strings.HasPrefix(id, prefix+"_") {
			t.Errorf("ID should start with '%s_', got: %s", prefix, id)
		}

		parts := strings.Split(id, "_")
		if len(parts) != 2 {
			t.Fatalf("Prefixed ID should have format 'prefix_ulid', got: %s", id)
		}
		if len(parts[1]) != 26 {
			t.Errorf("ULID should be 26 characters, got %d in ID: %s", len(parts[1]), id)
		}
		if !IsValid(id) {
			t.Errorf("Prefixed ID should be valid: %s", id)
		}
	}
}

func TestTypedIDGeneration(t *testing.T) {
	if !strings.HasPrefix(NewRequestID().String(), "req_") {
		t.Error("RequestID should start with 'req_'")
	}
	if !strings.HasPrefix(NewTraceID().String(), "trace_") {
		t.Error("TraceID should start with 'trace_'")
	}
	if !strings.HasPrefix(NewSpanID().String(), "span_") {
		t.Error("SpanID should start with 'span_'")
	}
}

func TestIsValid(t *testing.T) {
	validIDs := []string{
		NewGenerator().Generate().String(),
		NewRequestID().String(),
		NewTraceID().String(),
		NewSpanID().String(),
	}

	for _, id := range validIDs {
		if !IsValid(id) {
			t.Errorf("ID should be valid: %s", id)
		}
	}

	invalidIDs := []string{
		"",
		"invalid",
		"req_1234567890",
		"zzzzzzzzzzzzzzzzzzzzzzzzzzz",
		"trace_inbound",
		"evil\nvalue_" + NewGenerator().Generate().String(),
		"Trace_" + NewGenerator().Generate().String(),
		"trace_" + NewGenerator().Generate().String() + "_x",
	}

	for _, id := range invalidIDs {
		if IsValid(id) {
			t.Errorf("ID should be invalid: %s", id)
		}
	}
}

func TestConcurrentGeneration(t *testing.T) {
	gen := NewGenerator()

	const goroutines = 50
	const idsPerGoroutine = 50

	var wg sync.WaitGroup
	idChan := make(chan string, goroutines*idsPerGoroutine)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < idsPerGoroutine; j++ {
				idChan <- gen.GenerateWithPrefix(SpanPrefix)
			}
		}()
	}

	wg.Wait()
	close(idChan)

	seen := make(map[string]bool)
	for id := range idChan {
		if seen[id] {
			t.Errorf("Duplicate ID generated: %s", id)
		}
		seen[id] = true
	}
}
