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

	id := gen.GenerateWithPrefix("req")

	if !strings.HasPrefix(id, "req_") {
		t.Errorf("ID should start with 'req_', got: %s", id)
	}

	parts := strings.Split(id, "_")
	if len(parts) != 2 {
		t.Errorf("Prefixed ID should have format 'prefix_ulid', got: %s", id)
	}
	if len(parts[1]) != 26 {
		t.Errorf("ULID part should be 26 characters, got %d", len(parts[1]))
	}
}

func TestNewRequestID(t *testing.T) {
	reqID := NewRequestID()

	if !strings.HasPrefix(reqID.String(), "req_") {
		t.Errorf("RequestID should start with 'req_', got: %s", reqID)
	}
}

func TestConcurrentGeneration(t *testing.T) {
	gen := NewGenerator()
	const n = 100

	var wg sync.WaitGroup
	seen := sync.Map{}

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := gen.Generate().String()
			if _, dup := seen.LoadOrStore(id, true); dup {
				t.Errorf("duplicate ID generated: %s", id)
			}
		}()
	}
	wg.Wait()
}
