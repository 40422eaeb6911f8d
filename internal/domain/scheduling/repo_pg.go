package scheduling

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clinic/clinic/internal/entity"
)

// refID unwraps an optional reference for use as a nullable FK column value.
func refID(r *entity.Ref) *int64 {
	if r == nil {
		return nil
	}
	return r.ID
}

// =========== DoctorAvailability Repository ===========

type availabilityRepoPG struct{ pool *pgxpool.Pool }

func NewAvailabilityRepoPG(pool *pgxpool.Pool) entity.Store[DoctorAvailability] {
	return &availabilityRepoPG{pool: pool}
}

const availCols = `id, doctor_id, day_of_week, start_time, end_time, created_at, updated_at`

func scanAvailability(row pgx.Row) (*DoctorAvailability, error) {
	var a DoctorAvailability
	var doctorID int64
	err := row.Scan(&a.ID, &doctorID, &a.DayOfWeek, &a.StartTime, &a.EndTime,
		&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	a.Doctor = *entity.NewRef(doctorID)
	return &a, nil
}

func (r *availabilityRepoPG) List(ctx context.Context) ([]*DoctorAvailability, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+availCols+` FROM doctor_availabilities ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*DoctorAvailability
	for rows.Next() {
		a, err := scanAvailability(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

func (r *availabilityRepoPG) GetByID(ctx context.Context, id int64) (*DoctorAvailability, error) {
	a, err := scanAvailability(r.pool.QueryRow(ctx,
		`SELECT `+availCols+` FROM doctor_availabilities WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, entity.NewNotFound(entity.KindDoctorAvailability, id)
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *availabilityRepoPG) Create(ctx context.Context, a *DoctorAvailability) (*DoctorAvailability, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO doctor_availabilities (doctor_id, day_of_week, start_time, end_time)
		VALUES ($1,$2,$3,$4)
		RETURNING id, created_at, updated_at`,
		a.Doctor.ID, a.DayOfWeek, a.StartTime, a.EndTime).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *availabilityRepoPG) Update(ctx context.Context, a *DoctorAvailability) (*DoctorAvailability, error) {
	err := r.pool.QueryRow(ctx, `
		UPDATE doctor_availabilities SET doctor_id=$2, day_of_week=$3,
			start_time=$4, end_time=$5, updated_at=NOW()
		WHERE id = $1
		RETURNING updated_at`,
		a.ID, a.Doctor.ID, a.DayOfWeek, a.StartTime, a.EndTime).
		Scan(&a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, entity.NewNotFound(entity.KindDoctorAvailability, a.ID)
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *availabilityRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM doctor_availabilities WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return entity.NewNotFound(entity.KindDoctorAvailability, id)
	}
	return nil
}

// =========== Appointment Repository ===========

type appointmentRepoPG struct{ pool *pgxpool.Pool }

func NewAppointmentRepoPG(pool *pgxpool.Pool) entity.Store[Appointment] {
	return &appointmentRepoPG{pool: pool}
}

const apptCols = `id, patient_id, doctor_id, room_id, start_time, end_time,
	reason, status, created_at, updated_at`

func scanAppointment(row pgx.Row) (*Appointment, error) {
	var a Appointment
	var patientID, doctorID int64
	var roomID *int64
	err := row.Scan(&a.ID, &patientID, &doctorID, &roomID, &a.StartTime, &a.EndTime,
		&a.Reason, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	a.Patient = *entity.NewRef(patientID)
	a.Doctor = *entity.NewRef(doctorID)
	if roomID != nil {
		a.Room = entity.NewRef(*roomID)
	}
	return &a, nil
}

func (r *appointmentRepoPG) List(ctx context.Context) ([]*Appointment, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+apptCols+` FROM appointments ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

func (r *appointmentRepoPG) GetByID(ctx context.Context, id int64) (*Appointment, error) {
	a, err := scanAppointment(r.pool.QueryRow(ctx,
		`SELECT `+apptCols+` FROM appointments WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, entity.NewNotFound(entity.KindAppointment, id)
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *appointmentRepoPG) Create(ctx context.Context, a *Appointment) (*Appointment, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO appointments (patient_id, doctor_id, room_id, start_time, end_time, reason, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id, created_at, updated_at`,
		a.Patient.ID, a.Doctor.ID, refID(a.Room), a.StartTime, a.EndTime, a.Reason, a.Status).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *appointmentRepoPG) Update(ctx context.Context, a *Appointment) (*Appointment, error) {
	err := r.pool.QueryRow(ctx, `
		UPDATE appointments SET patient_id=$2, doctor_id=$3, room_id=$4,
			start_time=$5, end_time=$6, reason=$7, status=$8, updated_at=NOW()
		WHERE id = $1
		RETURNING updated_at`,
		a.ID, a.Patient.ID, a.Doctor.ID, refID(a.Room), a.StartTime, a.EndTime,
		a.Reason, a.Status).
		Scan(&a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, entity.NewNotFound(entity.KindAppointment, a.ID)
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *appointmentRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return entity.NewNotFound(entity.KindAppointment, id)
	}
	return nil
}
