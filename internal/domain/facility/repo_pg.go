package facility

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clinic/clinic/internal/entity"
)

// =========== Room Repository ===========

type roomRepoPG struct{ pool *pgxpool.Pool }

func NewRoomRepoPG(pool *pgxpool.Pool) entity.Store[Room] {
	return &roomRepoPG{pool: pool}
}

const roomCols = `id, name, floor, description, created_at, updated_at`

func scanRoom(row pgx.Row) (*Room, error) {
	var rm Room
	err := row.Scan(&rm.ID, &rm.Name, &rm.Floor, &rm.Description, &rm.CreatedAt, &rm.UpdatedAt)
	return &rm, err
}

func (r *roomRepoPG) List(ctx context.Context) ([]*Room, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+roomCols+` FROM rooms ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Room
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, rm)
	}
	return items, rows.Err()
}

func (r *roomRepoPG) GetByID(ctx context.Context, id int64) (*Room, error) {
	rm, err := scanRoom(r.pool.QueryRow(ctx, `SELECT `+roomCols+` FROM rooms WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, entity.NewNotFound(entity.KindRoom, id)
	}
	if err != nil {
		return nil, err
	}
	return rm, nil
}

func (r *roomRepoPG) Create(ctx context.Context, rm *Room) (*Room, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO rooms (name, floor, description)
		VALUES ($1,$2,$3)
		RETURNING id, created_at, updated_at`,
		rm.Name, rm.Floor, rm.Description).
		Scan(&rm.ID, &rm.CreatedAt, &rm.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return rm, nil
}

func (r *roomRepoPG) Update(ctx context.Context, rm *Room) (*Room, error) {
	err := r.pool.QueryRow(ctx, `
		UPDATE rooms SET name=$2, floor=$3, description=$4, updated_at=NOW()
		WHERE id = $1
		RETURNING updated_at`,
		rm.ID, rm.Name, rm.Floor, rm.Description).
		Scan(&rm.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, entity.NewNotFound(entity.KindRoom, rm.ID)
	}
	if err != nil {
		return nil, err
	}
	return rm, nil
}

func (r *roomRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return entity.NewNotFound(entity.KindRoom, id)
	}
	return nil
}

// =========== Specialty Repository ===========

type specialtyRepoPG struct{ pool *pgxpool.Pool }

func NewSpecialtyRepoPG(pool *pgxpool.Pool) entity.Store[Specialty] {
	return &specialtyRepoPG{pool: pool}
}

const specialtyCols = `id, name, description, created_at, updated_at`

func scanSpecialty(row pgx.Row) (*Specialty, error) {
	var s Specialty
	err := row.Scan(&s.ID, &s.Name, &s.Description, &s.CreatedAt, &s.UpdatedAt)
	return &s, err
}

func (r *specialtyRepoPG) List(ctx context.Context) ([]*Specialty, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+specialtyCols+` FROM specialties ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Specialty
	for rows.Next() {
		s, err := scanSpecialty(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

func (r *specialtyRepoPG) GetByID(ctx context.Context, id int64) (*Specialty, error) {
	s, err := scanSpecialty(r.pool.QueryRow(ctx, `SELECT `+specialtyCols+` FROM specialties WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, entity.NewNotFound(entity.KindSpecialty, id)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *specialtyRepoPG) Create(ctx context.Context, s *Specialty) (*Specialty, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO specialties (name, description)
		VALUES ($1,$2)
		RETURNING id, created_at, updated_at`,
		s.Name, s.Description).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *specialtyRepoPG) Update(ctx context.Context, s *Specialty) (*Specialty, error) {
	err := r.pool.QueryRow(ctx, `
		UPDATE specialties SET name=$2, description=$3, updated_at=NOW()
		WHERE id = $1
		RETURNING updated_at`,
		s.ID, s.Name, s.Description).
		Scan(&s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, entity.NewNotFound(entity.KindSpecialty, s.ID)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *specialtyRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM specialties WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return entity.NewNotFound(entity.KindSpecialty, id)
	}
	return nil
}
