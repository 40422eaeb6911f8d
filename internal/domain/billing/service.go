package billing

import (
	"context"

	"github.com/clinic/clinic/internal/domain/identity"
	"github.com/clinic/clinic/internal/domain/scheduling"
	"github.com/clinic/clinic/internal/entity"
)

// NewInvoiceService wires the Invoice rules into the generic entity service.
// The patient reference is mandatory; the appointment reference is optional
// but must resolve when supplied.
func NewInvoiceService(
	store entity.Store[Invoice],
	patients entity.LookupFunc[*identity.Patient],
	appointments entity.LookupFunc[*scheduling.Appointment],
) *entity.Service[Invoice, InvoiceInput] {
	spec := entity.Spec[Invoice, InvoiceInput]{
		Kind: entity.KindInvoice,
		New: func(ctx context.Context, in *InvoiceInput) (*Invoice, error) {
			var inv Invoice
			if _, err := entity.ResolveRequired(ctx, "patient", in.Patient, patients); err != nil {
				return nil, err
			}
			inv.Patient = *in.Patient
			if _, ok, err := entity.ResolveOptional(ctx, in.Appointment, appointments); err != nil {
				return nil, err
			} else if ok {
				inv.Appointment = in.Appointment
			}
			applyInvoice(&inv, in)
			return &inv, nil
		},
		Apply: func(ctx context.Context, inv *Invoice, in *InvoiceInput) error {
			if in.Patient != nil {
				if _, err := entity.ResolveRequired(ctx, "patient", in.Patient, patients); err != nil {
					return err
				}
				inv.Patient = *in.Patient
			}
			if in.Appointment != nil {
				if _, ok, err := entity.ResolveOptional(ctx, in.Appointment, appointments); err != nil {
					return err
				} else if ok {
					inv.Appointment = in.Appointment
				}
			}
			applyInvoice(inv, in)
			return nil
		},
		Check: checkInvoice,
		Default: func(inv *Invoice) {
			if inv.Status == "" {
				inv.Status = StatusUnpaid
			}
			if inv.IssueDate == nil {
				today := entity.Today()
				inv.IssueDate = &today
			}
		},
	}
	return entity.NewService(spec, store)
}

func applyInvoice(inv *Invoice, in *InvoiceInput) {
	if in.Amount != nil {
		inv.Amount = in.Amount
	}
	if in.Currency != nil {
		inv.Currency = *in.Currency
	}
	if in.IssueDate != nil {
		inv.IssueDate = in.IssueDate
	}
	if in.DueDate != nil {
		inv.DueDate = in.DueDate
	}
	if in.Status != nil {
		inv.Status = *in.Status
	}
	if in.Description != nil {
		inv.Description = in.Description
	}
}

func checkInvoice(inv *Invoice) error {
	f := entity.CheckFields()
	if inv.Amount == nil || *inv.Amount < 0 {
		f.Add("amount", "must be non-negative")
	}
	f.Require("currency", inv.Currency)
	f.MaxLen("currency", inv.Currency, 10)
	if inv.Status != "" && !inv.Status.Valid() {
		f.Add("status", "must be one of UNPAID, PAID, CANCELLED")
	}
	f.MaxLenPtr("description", inv.Description, 255)
	return f.Err()
}
