package billing

import (
	"time"

	"github.com/clinic/clinic/internal/entity"
)

// InvoiceStatus is a plain enumeration; there is no transition graph.
type InvoiceStatus string

const (
	StatusUnpaid    InvoiceStatus = "UNPAID"
	StatusPaid      InvoiceStatus = "PAID"
	StatusCancelled InvoiceStatus = "CANCELLED"
)

func (s InvoiceStatus) Valid() bool {
	switch s {
	case StatusUnpaid, StatusPaid, StatusCancelled:
		return true
	}
	return false
}

// Invoice bills one patient, optionally tied to a specific appointment.
type Invoice struct {
	ID          int64         `json:"id"`
	Patient     entity.Ref    `json:"patient"`
	Appointment *entity.Ref   `json:"appointment,omitempty"`
	Amount      *float64      `json:"amount"`
	Currency    string        `json:"currency"`
	IssueDate   *entity.Date  `json:"issueDate"`
	DueDate     *entity.Date  `json:"dueDate,omitempty"`
	Status      InvoiceStatus `json:"status"`
	Description *string       `json:"description,omitempty"`
	CreatedAt   time.Time     `json:"-"`
	UpdatedAt   time.Time     `json:"-"`
}

// InvoiceInput is the create/update payload for Invoice.
type InvoiceInput struct {
	Patient     *entity.Ref    `json:"patient"`
	Appointment *entity.Ref    `json:"appointment"`
	Amount      *float64       `json:"amount"`
	Currency    *string        `json:"currency"`
	IssueDate   *entity.Date   `json:"issueDate"`
	DueDate     *entity.Date   `json:"dueDate"`
	Status      *InvoiceStatus `json:"status"`
	Description *string        `json:"description"`
}
