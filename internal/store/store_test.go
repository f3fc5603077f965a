package store

import (
	"errors"
	"testing"
)

func filled(n int) *Store {
	s := New(nil)
	for i := 0; i < n; i++ {
		if _, err := s.Add("entry", i); err != nil {
			panic(err)
		}
	}
	return s
}

func TestAddReturnsNewIndex(t *testing.T) {
	s := New(nil)
	for want := 0; want < MaxEntries; want++ {
		idx, err := s.Add("Espresso", 15)
		if err != nil {
			t.Fatalf("add %d: %v", want, err)
		}
		if idx != want {
			t.Fatalf("expected index %d, got %d", want, idx)
		}
	}
}

func TestAddRejectsWhenFull(t *testing.T) {
	s := filled(MaxEntries)
	if _, err := s.Add("overflow", 1); !errors.Is(err, ErrCapacity) {
		t.Fatalf("expected ErrCapacity, got %v", err)
	}
	if s.Len() != MaxEntries {
		t.Fatalf("expected length unchanged at %d, got %d", MaxEntries, s.Len())
	}
}

func TestAddClampsValue(t *testing.T) {
	s := New(nil)
	if _, err := s.Add("hot", 150); err != nil {
		t.Fatalf("add: %v", err)
	}
	if e, _ := s.At(0); e.Value != MaxValue {
		t.Fatalf("expected value clamped to %d, got %d", MaxValue, e.Value)
	}
}

func TestUpdateClampsAndAssigns(t *testing.T) {
	cases := []struct {
		name  string
		value int
		want  int
	}{
		{"in band", 42, 42},
		{"above band", 120, MaxValue},
		{"below band", -5, MinValue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := New([]Entry{{Name: "V60", Value: 22}})
			if err := s.Update(0, tc.value); err != nil {
				t.Fatalf("update: %v", err)
			}
			if e, _ := s.At(0); e.Value != tc.want {
				t.Fatalf("expected value %d, got %d", tc.want, e.Value)
			}
		})
	}
}

func TestUpdateOutOfRange(t *testing.T) {
	s := New([]Entry{{Name: "V60", Value: 22}})
	for _, idx := range []int{-1, 1, 5} {
		if err := s.Update(idx, 10); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("index %d: expected ErrOutOfRange, got %v", idx, err)
		}
	}
}

func TestDeleteShiftsLater(t *testing.T) {
	s := New([]Entry{
		{Name: "a", Value: 1},
		{Name: "b", Value: 2},
		{Name: "c", Value: 3},
		{Name: "d", Value: 4},
	})
	removed, err := s.Delete(1)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if removed.Name != "b" {
		t.Fatalf("expected removed entry b, got %s", removed.Name)
	}
	wantNames := []string{"a", "c", "d"}
	got := s.Names()
	if len(got) != len(wantNames) {
		t.Fatalf("expected %d entries, got %d", len(wantNames), len(got))
	}
	for i, name := range wantNames {
		if got[i] != name {
			t.Fatalf("position %d: expected %s, got %s", i, name, got[i])
		}
	}
}

func TestDeleteOutOfRange(t *testing.T) {
	s := New([]Entry{{Name: "a", Value: 1}})
	if _, err := s.Delete(1); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if _, err := s.Delete(-1); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
}

func TestReplaceAllDropsNamelessAndTruncates(t *testing.T) {
	batch := make([]Entry, 0, MaxEntries+3)
	batch = append(batch, Entry{Name: "", Value: 5})
	batch = append(batch, Entry{Name: "   ", Value: 9})
	for i := 0; i < MaxEntries+1; i++ {
		batch = append(batch, Entry{Name: "keep", Value: i})
	}
	s := New(nil)
	s.ReplaceAll(batch)
	if s.Len() != MaxEntries {
		t.Fatalf("expected length %d, got %d", MaxEntries, s.Len())
	}
	for i := 0; i < s.Len(); i++ {
		e, _ := s.At(i)
		if e.Name != "keep" {
			t.Fatalf("position %d: unexpected entry %q", i, e.Name)
		}
	}
}

func TestReplaceAllClampsValues(t *testing.T) {
	s := New(nil)
	s.ReplaceAll([]Entry{{Name: "V60", Value: 500}})
	if e, _ := s.At(0); e.Value != MaxValue {
		t.Fatalf("expected clamped value %d, got %d", MaxValue, e.Value)
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	s := New([]Entry{{Name: "a", Value: 1}})
	dup := s.Entries()
	dup[0].Value = 99
	if e, _ := s.At(0); e.Value != 1 {
		t.Fatalf("mutating the copy leaked into the store: %d", e.Value)
	}
}

func TestValueBandInvariantUnderMixedOps(t *testing.T) {
	s := New(nil)
	ops := []func(){
		func() { s.Add("x", 200) },
		func() { s.Add("y", -7) },
		func() { s.Update(0, 1000) },
		func() { s.Delete(1) },
		func() { s.Add("z", 50) },
	}
	for _, op := range ops {
		op()
		if s.Len() > MaxEntries {
			t.Fatalf("length %d exceeds cap", s.Len())
		}
		for _, e := range s.Entries() {
			if e.Value < MinValue || e.Value > MaxValue {
				t.Fatalf("value %d outside band", e.Value)
			}
		}
	}
}
