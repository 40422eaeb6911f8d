package facility

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/clinic/clinic/internal/entity"
)

type mockRoomStore struct {
	rooms  map[int64]*Room
	nextID int64
}

func newMockRoomStore() *mockRoomStore {
	return &mockRoomStore{rooms: make(map[int64]*Room)}
}

func (m *mockRoomStore) List(_ context.Context) ([]*Room, error) {
	var items []*Room
	for _, rm := range m.rooms {
		items = append(items, rm)
	}
	return items, nil
}

func (m *mockRoomStore) GetByID(_ context.Context, id int64) (*Room, error) {
	rm, ok := m.rooms[id]
	if !ok {
		return nil, entity.NewNotFound(entity.KindRoom, id)
	}
	cp := *rm
	return &cp, nil
}

func (m *mockRoomStore) Create(_ context.Context, rm *Room) (*Room, error) {
	m.nextID++
	rm.ID = m.nextID
	cp := *rm
	m.rooms[rm.ID] = &cp
	return rm, nil
}

func (m *mockRoomStore) Update(_ context.Context, rm *Room) (*Room, error) {
	if _, ok := m.rooms[rm.ID]; !ok {
		return nil, entity.NewNotFound(entity.KindRoom, rm.ID)
	}
	cp := *rm
	m.rooms[rm.ID] = &cp
	return rm, nil
}

func (m *mockRoomStore) Delete(_ context.Context, id int64) error {
	if _, ok := m.rooms[id]; !ok {
		return entity.NewNotFound(entity.KindRoom, id)
	}
	delete(m.rooms, id)
	return nil
}

type mockSpecialtyStore struct {
	specialties map[int64]*Specialty
	nextID      int64
}

func newMockSpecialtyStore() *mockSpecialtyStore {
	return &mockSpecialtyStore{specialties: make(map[int64]*Specialty)}
}

func (m *mockSpecialtyStore) List(_ context.Context) ([]*Specialty, error) {
	var items []*Specialty
	for _, s := range m.specialties {
		items = append(items, s)
	}
	return items, nil
}

func (m *mockSpecialtyStore) GetByID(_ context.Context, id int64) (*Specialty, error) {
	s, ok := m.specialties[id]
	if !ok {
		return nil, entity.NewNotFound(entity.KindSpecialty, id)
	}
	cp := *s
	return &cp, nil
}

func (m *mockSpecialtyStore) Create(_ context.Context, s *Specialty) (*Specialty, error) {
	m.nextID++
	s.ID = m.nextID
	cp := *s
	m.specialties[s.ID] = &cp
	return s, nil
}

func (m *mockSpecialtyStore) Update(_ context.Context, s *Specialty) (*Specialty, error) {
	if _, ok := m.specialties[s.ID]; !ok {
		return nil, entity.NewNotFound(entity.KindSpecialty, s.ID)
	}
	cp := *s
	m.specialties[s.ID] = &cp
	return s, nil
}

func (m *mockSpecialtyStore) Delete(_ context.Context, id int64) error {
	if _, ok := m.specialties[id]; !ok {
		return entity.NewNotFound(entity.KindSpecialty, id)
	}
	delete(m.specialties, id)
	return nil
}

func strptr(s string) *string { return &s }

func TestCreateRoom(t *testing.T) {
	svc := NewRoomService(newMockRoomStore())

	rm, err := svc.Create(context.Background(), &RoomInput{
		Name:  strptr("Exam Room 1"),
		Floor: strptr("2"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rm.ID == 0 || rm.Name != "Exam Room 1" {
		t.Errorf("unexpected room: %+v", rm)
	}
}

func TestCreateRoom_NameRequired(t *testing.T) {
	svc := NewRoomService(newMockRoomStore())

	_, err := svc.Create(context.Background(), &RoomInput{Floor: strptr("2")})
	var ve *entity.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected a ValidationError, got %v", err)
	}
	if ve.Fields["name"] != "is required" {
		t.Errorf("unexpected violations: %v", ve.Fields)
	}
}

func TestUpdateRoom_PartialMerge(t *testing.T) {
	svc := NewRoomService(newMockRoomStore())

	rm, err := svc.Create(context.Background(), &RoomInput{
		Name:  strptr("Exam Room 1"),
		Floor: strptr("2"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := svc.Update(context.Background(), rm.ID, &RoomInput{Description: strptr("renovated")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "Exam Room 1" || updated.Floor == nil || *updated.Floor != "2" {
		t.Errorf("absent fields must stay untouched: %+v", updated)
	}
	if updated.Description == nil || *updated.Description != "renovated" {
		t.Errorf("supplied field must overwrite: %v", updated.Description)
	}
}

func TestCreateSpecialty(t *testing.T) {
	svc := NewSpecialtyService(newMockSpecialtyStore())

	s, err := svc.Create(context.Background(), &SpecialtyInput{Name: strptr("Cardiology")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.ID == 0 || s.Name != "Cardiology" {
		t.Errorf("unexpected specialty: %+v", s)
	}
}

func TestCreateSpecialty_DescriptionTooLong(t *testing.T) {
	svc := NewSpecialtyService(newMockSpecialtyStore())

	_, err := svc.Create(context.Background(), &SpecialtyInput{
		Name:        strptr("Cardiology"),
		Description: strptr(strings.Repeat("x", 256)),
	})
	var ve *entity.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected a ValidationError, got %v", err)
	}
	if _, ok := ve.Fields["description"]; !ok {
		t.Errorf("expected a description violation, got %v", ve.Fields)
	}
}

func TestDeleteSpecialty_NotFound(t *testing.T) {
	svc := NewSpecialtyService(newMockSpecialtyStore())
	if err := svc.Delete(context.Background(), 404); !entity.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
