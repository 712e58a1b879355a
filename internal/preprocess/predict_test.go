package preprocess

import (
	"errors"
	"slices"
	"testing"

	apperrors "imageprep-api/internal/errors"
)

func TestPredict_ReturnsMember(t *testing.T) {
	labels := []string{"cat", "dog", "frog", "horse"}
	r := NewSeededRandom(7)

	for i := 0; i < 50; i++ {
		got, err := Predict(r, labels)
		if err != nil {
			t.Fatalf("Predict failed: %v", err)
		}
		if !slices.Contains(labels, got) {
			t.Fatalf("Predict returned %q, not in %v", got, labels)
		}
	}
}

func TestPredict_UsesRandomIndex(t *testing.T) {
	r := &stubRandom{intVal: 2}
	got, err := Predict(r, []string{"cat", "dog", "frog", "horse"})
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	if got != "frog" {
		t.Errorf("got %q, want frog", got)
	}
	if r.intCalls != 1 {
		t.Errorf("IntN calls: got %d, want 1", r.intCalls)
	}
}

func TestPredict_EmptyLabels(t *testing.T) {
	for _, labels := range [][]string{nil, {}} {
		_, err := Predict(DefaultRandom(), labels)
		if !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Errorf("Predict(%v): got %v, want ErrInvalidInput", labels, err)
		}
	}
}
