package billing

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clinic/clinic/internal/entity"
)

type invoiceRepoPG struct{ pool *pgxpool.Pool }

func NewInvoiceRepoPG(pool *pgxpool.Pool) entity.Store[Invoice] {
	return &invoiceRepoPG{pool: pool}
}

const invoiceCols = `id, patient_id, appointment_id, amount, currency,
	issue_date, due_date, status, description, created_at, updated_at`

func scanInvoice(row pgx.Row) (*Invoice, error) {
	var inv Invoice
	var patientID int64
	var appointmentID *int64
	err := row.Scan(&inv.ID, &patientID, &appointmentID, &inv.Amount, &inv.Currency,
		&inv.IssueDate, &inv.DueDate, &inv.Status, &inv.Description,
		&inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	inv.Patient = *entity.NewRef(patientID)
	if appointmentID != nil {
		inv.Appointment = entity.NewRef(*appointmentID)
	}
	return &inv, nil
}

func refID(r *entity.Ref) *int64 {
	if r == nil {
		return nil
	}
	return r.ID
}

func (r *invoiceRepoPG) List(ctx context.Context) ([]*Invoice, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+invoiceCols+` FROM invoices ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, inv)
	}
	return items, rows.Err()
}

func (r *invoiceRepoPG) GetByID(ctx context.Context, id int64) (*Invoice, error) {
	inv, err := scanInvoice(r.pool.QueryRow(ctx,
		`SELECT `+invoiceCols+` FROM invoices WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, entity.NewNotFound(entity.KindInvoice, id)
	}
	if err != nil {
		return nil, err
	}
	return inv, nil
}

func (r *invoiceRepoPG) Create(ctx context.Context, inv *Invoice) (*Invoice, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO invoices (patient_id, appointment_id, amount, currency,
			issue_date, due_date, status, description)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id, created_at, updated_at`,
		inv.Patient.ID, refID(inv.Appointment), inv.Amount, inv.Currency,
		inv.IssueDate, inv.DueDate, inv.Status, inv.Description).
		Scan(&inv.ID, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return inv, nil
}

func (r *invoiceRepoPG) Update(ctx context.Context, inv *Invoice) (*Invoice, error) {
	err := r.pool.QueryRow(ctx, `
		UPDATE invoices SET patient_id=$2, appointment_id=$3, amount=$4, currency=$5,
			issue_date=$6, due_date=$7, status=$8, description=$9, updated_at=NOW()
		WHERE id = $1
		RETURNING updated_at`,
		inv.ID, inv.Patient.ID, refID(inv.Appointment), inv.Amount, inv.Currency,
		inv.IssueDate, inv.DueDate, inv.Status, inv.Description).
		Scan(&inv.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, entity.NewNotFound(entity.KindInvoice, inv.ID)
	}
	if err != nil {
		return nil, err
	}
	return inv, nil
}

func (r *invoiceRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return entity.NewNotFound(entity.KindInvoice, id)
	}
	return nil
}
