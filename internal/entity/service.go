package entity

import "context"

// Store is the persistence collaborator for one entity kind. GetByID and
// Delete must report a miss as a NotFoundError for the store's kind.
type Store[T any] interface {
	List(ctx context.Context) ([]*T, error)
	GetByID(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, e *T) (*T, error)
	Update(ctx context.Context, e *T) (*T, error)
	Delete(ctx context.Context, id int64) error
}

// Spec plugs one entity kind into the generic service flow. The same payload
// type P serves both create and update: every field is a pointer (or a Ref),
// and a nil field means "not supplied".
type Spec[T any, P any] struct {
	Kind Kind

	// New builds a fresh entity from a create payload, resolving every
	// reference field against its store first.
	New func(ctx context.Context, p *P) (*T, error)

	// Apply copies the supplied (non-nil) payload fields onto an existing
	// entity, re-resolving any supplied reference. Absent fields are left
	// untouched.
	Apply func(ctx context.Context, e *T, p *P) error

	// Check runs field and cross-field rules on a fully merged entity. It
	// runs on both create and update, always before persisting.
	Check func(e *T) error

	// Default fills unset fields before the first persist. Create only.
	Default func(e *T)
}

// Service is the generic entity service: list, get, create with reference
// resolution and defaults, partial update, delete with existence check. One
// instance exists per entity kind, parameterized by its Spec.
type Service[T any, P any] struct {
	spec  Spec[T, P]
	store Store[T]
}

func NewService[T any, P any](spec Spec[T, P], store Store[T]) *Service[T, P] {
	return &Service[T, P]{spec: spec, store: store}
}

func (s *Service[T, P]) Kind() Kind { return s.spec.Kind }

func (s *Service[T, P]) List(ctx context.Context) ([]*T, error) {
	return s.store.List(ctx)
}

func (s *Service[T, P]) Get(ctx context.Context, id int64) (*T, error) {
	return s.store.GetByID(ctx, id)
}

func (s *Service[T, P]) Create(ctx context.Context, p *P) (*T, error) {
	e, err := s.spec.New(ctx, p)
	if err != nil {
		return nil, err
	}
	if err := s.spec.Check(e); err != nil {
		return nil, err
	}
	if s.spec.Default != nil {
		s.spec.Default(e)
	}
	return s.store.Create(ctx, e)
}

func (s *Service[T, P]) Update(ctx context.Context, id int64, p *P) (*T, error) {
	e, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.spec.Apply(ctx, e, p); err != nil {
		return nil, err
	}
	if err := s.spec.Check(e); err != nil {
		return nil, err
	}
	return s.store.Update(ctx, e)
}

func (s *Service[T, P]) Delete(ctx context.Context, id int64) error {
	if _, err := s.store.GetByID(ctx, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}
