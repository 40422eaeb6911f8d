package identity

import (
	"context"

	"github.com/clinic/clinic/internal/entity"
)

// NewPatientService wires the Patient rules into the generic entity service.
func NewPatientService(store entity.Store[Patient]) *entity.Service[Patient, PatientInput] {
	spec := entity.Spec[Patient, PatientInput]{
		Kind: entity.KindPatient,
		New: func(ctx context.Context, in *PatientInput) (*Patient, error) {
			var p Patient
			applyPatient(&p, in)
			return &p, nil
		},
		Apply: func(ctx context.Context, p *Patient, in *PatientInput) error {
			applyPatient(p, in)
			return nil
		},
		Check: checkPatient,
	}
	return entity.NewService(spec, store)
}

func applyPatient(p *Patient, in *PatientInput) {
	if in.FirstName != nil {
		p.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		p.LastName = *in.LastName
	}
	if in.Email != nil {
		p.Email = in.Email
	}
	if in.Phone != nil {
		p.Phone = in.Phone
	}
	if in.DateOfBirth != nil {
		p.DateOfBirth = in.DateOfBirth
	}
}

func checkPatient(p *Patient) error {
	f := entity.CheckFields()
	f.Require("firstName", p.FirstName)
	f.MaxLen("firstName", p.FirstName, 50)
	f.Require("lastName", p.LastName)
	f.MaxLen("lastName", p.LastName, 50)
	f.Email("email", p.Email)
	f.MaxLenPtr("email", p.Email, 100)
	f.MaxLenPtr("phone", p.Phone, 20)
	f.Past("dateOfBirth", p.DateOfBirth)
	return f.Err()
}

// NewDoctorService wires the Doctor rules into the generic entity service.
func NewDoctorService(store entity.Store[Doctor]) *entity.Service[Doctor, DoctorInput] {
	spec := entity.Spec[Doctor, DoctorInput]{
		Kind: entity.KindDoctor,
		New: func(ctx context.Context, in *DoctorInput) (*Doctor, error) {
			var d Doctor
			applyDoctor(&d, in)
			return &d, nil
		},
		Apply: func(ctx context.Context, d *Doctor, in *DoctorInput) error {
			applyDoctor(d, in)
			return nil
		},
		Check: checkDoctor,
	}
	return entity.NewService(spec, store)
}

func applyDoctor(d *Doctor, in *DoctorInput) {
	if in.FirstName != nil {
		d.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		d.LastName = *in.LastName
	}
	if in.Email != nil {
		d.Email = in.Email
	}
	if in.Phone != nil {
		d.Phone = in.Phone
	}
	if in.Specialization != nil {
		d.Specialization = *in.Specialization
	}
}

func checkDoctor(d *Doctor) error {
	f := entity.CheckFields()
	f.Require("firstName", d.FirstName)
	f.MaxLen("firstName", d.FirstName, 50)
	f.Require("lastName", d.LastName)
	f.MaxLen("lastName", d.LastName, 50)
	f.Email("email", d.Email)
	f.MaxLenPtr("email", d.Email, 100)
	f.MaxLenPtr("phone", d.Phone, 20)
	f.Require("specialization", d.Specialization)
	f.MaxLen("specialization", d.Specialization, 100)
	return f.Err()
}
