package entity

import (
	"context"
	"errors"
	"testing"
)

type refTarget struct{ ID int64 }

func refLookup(existing map[int64]*refTarget, calls *int) LookupFunc[*refTarget] {
	return func(_ context.Context, id int64) (*refTarget, error) {
		if calls != nil {
			*calls++
		}
		if tgt, ok := existing[id]; ok {
			return tgt, nil
		}
		return nil, NewNotFound(KindDoctor, id)
	}
}

func TestResolveRequired(t *testing.T) {
	lookup := refLookup(map[int64]*refTarget{5: {ID: 5}}, nil)
	tgt, err := ResolveRequired(context.Background(), "doctor", NewRef(5), lookup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tgt.ID != 5 {
		t.Errorf("expected target 5, got %d", tgt.ID)
	}
}

func TestResolveRequired_NilRef(t *testing.T) {
	calls := 0
	lookup := refLookup(map[int64]*refTarget{}, &calls)

	_, err := ResolveRequired(context.Background(), "doctor", nil, lookup)
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatal("expected a ValidationError")
	}
	if ve.Fields["doctor"] != "required" {
		t.Errorf("expected doctor: required, got %v", ve.Fields)
	}
	if calls != 0 {
		t.Errorf("expected no lookup for a nil ref, got %d calls", calls)
	}
}

func TestResolveRequired_RefWithoutID(t *testing.T) {
	calls := 0
	lookup := refLookup(map[int64]*refTarget{}, &calls)

	_, err := ResolveRequired(context.Background(), "doctor", &Ref{}, lookup)
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if calls != 0 {
		t.Errorf("expected no lookup for a ref without id, got %d calls", calls)
	}
}

func TestResolveRequired_Dangling(t *testing.T) {
	lookup := refLookup(map[int64]*refTarget{}, nil)
	_, err := ResolveRequired(context.Background(), "doctor", NewRef(99), lookup)
	if !IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestResolveOptional_Absent(t *testing.T) {
	calls := 0
	lookup := refLookup(map[int64]*refTarget{}, &calls)

	_, ok, err := ResolveOptional(context.Background(), nil, lookup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected ok=false for an absent ref")
	}
	if calls != 0 {
		t.Errorf("expected no lookup for an absent ref, got %d calls", calls)
	}
}

func TestResolveOptional_Present(t *testing.T) {
	lookup := refLookup(map[int64]*refTarget{3: {ID: 3}}, nil)
	tgt, ok, err := ResolveOptional(context.Background(), NewRef(3), lookup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || tgt.ID != 3 {
		t.Errorf("expected target 3, got ok=%v tgt=%v", ok, tgt)
	}
}

func TestResolveOptional_Dangling(t *testing.T) {
	lookup := refLookup(map[int64]*refTarget{}, nil)
	_, _, err := ResolveOptional(context.Background(), NewRef(99), lookup)
	if !IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
