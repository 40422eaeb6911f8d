package entity

import "context"

// Ref is the wire form of a foreign-key reference: a nested object carrying
// only the identifier of the target entity. Any other fields on the nested
// object are ignored by JSON binding.
type Ref struct {
	ID *int64 `json:"id"`
}

// NewRef is a convenience constructor used mostly by tests.
func NewRef(id int64) *Ref {
	return &Ref{ID: &id}
}

// LookupFunc loads the entity of one kind by id. A miss must surface as a
// NotFoundError for that kind; repositories guarantee this at the pgx
// boundary.
type LookupFunc[T any] func(ctx context.Context, id int64) (T, error)

// ResolveRequired resolves a mandatory reference field. A nil ref or a ref
// without an id fails validation before any lookup is attempted; a lookup
// miss propagates the store's NotFoundError.
func ResolveRequired[T any](ctx context.Context, field string, ref *Ref, lookup LookupFunc[T]) (T, error) {
	var zero T
	if ref == nil || ref.ID == nil {
		return zero, NewFieldError(field, "required")
	}
	return lookup(ctx, *ref.ID)
}

// ResolveOptional resolves a reference field that may be absent. It returns
// ok=false when the caller did not supply a usable id, without error.
func ResolveOptional[T any](ctx context.Context, ref *Ref, lookup LookupFunc[T]) (T, bool, error) {
	var zero T
	if ref == nil || ref.ID == nil {
		return zero, false, nil
	}
	v, err := lookup(ctx, *ref.ID)
	if err != nil {
		return zero, false, err
	}
	return v, true, nil
}
