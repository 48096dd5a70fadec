package memento

import (
	"errors"
	"fmt"
	"testing"
)

func TestHistoryAddGetIdentity(t *testing.T) {
	h := NewHistory()
	o := NewOriginator()

	o.SetState("first")
	first := o.Save()
	h.Add(first)

	o.SetState("second")
	second := o.Save()
	h.Add(second)

	got, err := h.Get(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != first {
		t.Errorf("Get(0) returned a different reference than the one added")
	}

	got, err = h.Get(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != second {
		t.Errorf("Get(1) returned a different reference than the one added")
	}
}

func TestHistoryGetOutOfRange(t *testing.T) {
	h := NewHistory()
	o := NewOriginator()
	o.SetState("only")
	h.Add(o.Save())

	tests := []struct {
		name  string
		index int
	}{
		{
			name:  "negative index",
			index: -1,
		},
		{
			name:  "index equal to length",
			index: 1,
		},
		{
			name:  "index far past end",
			index: 42,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap, err := h.Get(tt.index)
			if err == nil {
				t.Fatal("expected error for out-of-range index")
			}
			if !errors.Is(err, ErrIndexOutOfRange) {
				t.Errorf("expected ErrIndexOutOfRange, got %v", err)
			}
			if snap != nil {
				t.Errorf("expected nil snapshot on error, got %+v", snap)
			}
		})
	}
}

func TestHistoryGetEmpty(t *testing.T) {
	h := NewHistory()

	if _, err := h.Get(0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange on empty history, got %v", err)
	}
}

func TestHistoryOrderAndDuplicates(t *testing.T) {
	h := NewHistory()
	o := NewOriginator()

	var added []*Snapshot
	for i := 0; i < 5; i++ {
		o.SetState(fmt.Sprintf("state-%d", i))
		s := o.Save()
		added = append(added, s)
		h.Add(s)
	}

	// The same snapshot may be stored more than once.
	h.Add(added[0])
	added = append(added, added[0])

	if got := h.Len(); got != len(added) {
		t.Fatalf("Len() = %d, want %d", got, len(added))
	}

	for i, want := range added {
		got, err := h.Get(i)
		if err != nil {
			t.Fatalf("Get(%d): unexpected error: %v", i, err)
		}
		if got != want {
			t.Errorf("Get(%d) out of insertion order", i)
		}
	}
}
