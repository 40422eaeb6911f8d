package identity

import (
	"time"

	"github.com/clinic/clinic/internal/entity"
)

// Patient is a person receiving care. Independent entity; nothing references
// it except appointments and invoices.
type Patient struct {
	ID          int64        `json:"id"`
	FirstName   string       `json:"firstName"`
	LastName    string       `json:"lastName"`
	Email       *string      `json:"email,omitempty"`
	Phone       *string      `json:"phone,omitempty"`
	DateOfBirth *entity.Date `json:"dateOfBirth,omitempty"`
	CreatedAt   time.Time    `json:"-"`
	UpdatedAt   time.Time    `json:"-"`
}

// PatientInput is the create/update payload for Patient. Every field is a
// pointer: nil means "not supplied", which a partial update leaves untouched.
type PatientInput struct {
	FirstName   *string      `json:"firstName"`
	LastName    *string      `json:"lastName"`
	Email       *string      `json:"email"`
	Phone       *string      `json:"phone"`
	DateOfBirth *entity.Date `json:"dateOfBirth"`
}

// Doctor is a clinician on staff.
type Doctor struct {
	ID             int64     `json:"id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          *string   `json:"email,omitempty"`
	Phone          *string   `json:"phone,omitempty"`
	Specialization string    `json:"specialization"`
	CreatedAt      time.Time `json:"-"`
	UpdatedAt      time.Time `json:"-"`
}

// DoctorInput is the create/update payload for Doctor.
type DoctorInput struct {
	FirstName      *string `json:"firstName"`
	LastName       *string `json:"lastName"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	Specialization *string `json:"specialization"`
}
