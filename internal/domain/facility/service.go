package facility

import (
	"context"

	"github.com/clinic/clinic/internal/entity"
)

// NewRoomService wires the Room rules into the generic entity service.
func NewRoomService(store entity.Store[Room]) *entity.Service[Room, RoomInput] {
	spec := entity.Spec[Room, RoomInput]{
		Kind: entity.KindRoom,
		New: func(ctx context.Context, in *RoomInput) (*Room, error) {
			var rm Room
			applyRoom(&rm, in)
			return &rm, nil
		},
		Apply: func(ctx context.Context, rm *Room, in *RoomInput) error {
			applyRoom(rm, in)
			return nil
		},
		Check: checkRoom,
	}
	return entity.NewService(spec, store)
}

func applyRoom(rm *Room, in *RoomInput) {
	if in.Name != nil {
		rm.Name = *in.Name
	}
	if in.Floor != nil {
		rm.Floor = in.Floor
	}
	if in.Description != nil {
		rm.Description = in.Description
	}
}

func checkRoom(rm *Room) error {
	f := entity.CheckFields()
	f.Require("name", rm.Name)
	f.MaxLen("name", rm.Name, 50)
	f.MaxLenPtr("floor", rm.Floor, 20)
	f.MaxLenPtr("description", rm.Description, 255)
	return f.Err()
}

// NewSpecialtyService wires the Specialty rules into the generic entity
// service.
func NewSpecialtyService(store entity.Store[Specialty]) *entity.Service[Specialty, SpecialtyInput] {
	spec := entity.Spec[Specialty, SpecialtyInput]{
		Kind: entity.KindSpecialty,
		New: func(ctx context.Context, in *SpecialtyInput) (*Specialty, error) {
			var s Specialty
			applySpecialty(&s, in)
			return &s, nil
		},
		Apply: func(ctx context.Context, s *Specialty, in *SpecialtyInput) error {
			applySpecialty(s, in)
			return nil
		},
		Check: checkSpecialty,
	}
	return entity.NewService(spec, store)
}

func applySpecialty(s *Specialty, in *SpecialtyInput) {
	if in.Name != nil {
		s.Name = *in.Name
	}
	if in.Description != nil {
		s.Description = in.Description
	}
}

func checkSpecialty(s *Specialty) error {
	f := entity.CheckFields()
	f.Require("name", s.Name)
	f.MaxLen("name", s.Name, 100)
	f.MaxLenPtr("description", s.Description, 255)
	return f.Err()
}
