package scheduling

import (
	"context"
	"time"

	"github.com/clinic/clinic/internal/domain/facility"
	"github.com/clinic/clinic/internal/domain/identity"
	"github.com/clinic/clinic/internal/entity"
)

// NewAvailabilityService wires the DoctorAvailability rules into the generic
// entity service. The doctor lookup resolves the required doctor reference
// before anything is persisted.
func NewAvailabilityService(
	store entity.Store[DoctorAvailability],
	doctors entity.LookupFunc[*identity.Doctor],
) *entity.Service[DoctorAvailability, DoctorAvailabilityInput] {
	spec := entity.Spec[DoctorAvailability, DoctorAvailabilityInput]{
		Kind: entity.KindDoctorAvailability,
		New: func(ctx context.Context, in *DoctorAvailabilityInput) (*DoctorAvailability, error) {
			var a DoctorAvailability
			if _, err := entity.ResolveRequired(ctx, "doctor", in.Doctor, doctors); err != nil {
				return nil, err
			}
			a.Doctor = *in.Doctor
			applyAvailability(&a, in)
			return &a, nil
		},
		Apply: func(ctx context.Context, a *DoctorAvailability, in *DoctorAvailabilityInput) error {
			if in.Doctor != nil {
				if _, err := entity.ResolveRequired(ctx, "doctor", in.Doctor, doctors); err != nil {
					return err
				}
				a.Doctor = *in.Doctor
			}
			applyAvailability(a, in)
			return nil
		},
		Check: checkAvailability,
	}
	return entity.NewService(spec, store)
}

func applyAvailability(a *DoctorAvailability, in *DoctorAvailabilityInput) {
	if in.DayOfWeek != nil {
		a.DayOfWeek = *in.DayOfWeek
	}
	if in.StartTime != nil {
		a.StartTime = *in.StartTime
	}
	if in.EndTime != nil {
		a.EndTime = *in.EndTime
	}
}

func checkAvailability(a *DoctorAvailability) error {
	f := entity.CheckFields()
	if a.DayOfWeek == "" {
		f.Add("dayOfWeek", "is required")
	} else if !a.DayOfWeek.Valid() {
		f.Add("dayOfWeek", "must be a day of the week")
	}
	f.Require("startTime", a.StartTime)
	f.TimeOfDay("startTime", a.StartTime)
	f.Require("endTime", a.EndTime)
	f.TimeOfDay("endTime", a.EndTime)
	return f.Err()
}

// NewAppointmentService wires the Appointment rules into the generic entity
// service. Patient and doctor references are mandatory; the room reference is
// optional but must resolve when supplied.
func NewAppointmentService(
	store entity.Store[Appointment],
	patients entity.LookupFunc[*identity.Patient],
	doctors entity.LookupFunc[*identity.Doctor],
	rooms entity.LookupFunc[*facility.Room],
) *entity.Service[Appointment, AppointmentInput] {
	spec := entity.Spec[Appointment, AppointmentInput]{
		Kind: entity.KindAppointment,
		New: func(ctx context.Context, in *AppointmentInput) (*Appointment, error) {
			var a Appointment
			if _, err := entity.ResolveRequired(ctx, "patient", in.Patient, patients); err != nil {
				return nil, err
			}
			a.Patient = *in.Patient
			if _, err := entity.ResolveRequired(ctx, "doctor", in.Doctor, doctors); err != nil {
				return nil, err
			}
			a.Doctor = *in.Doctor
			if _, ok, err := entity.ResolveOptional(ctx, in.Room, rooms); err != nil {
				return nil, err
			} else if ok {
				a.Room = in.Room
			}
			applyAppointment(&a, in)
			return &a, nil
		},
		Apply: func(ctx context.Context, a *Appointment, in *AppointmentInput) error {
			if in.Patient != nil {
				if _, err := entity.ResolveRequired(ctx, "patient", in.Patient, patients); err != nil {
					return err
				}
				a.Patient = *in.Patient
			}
			if in.Doctor != nil {
				if _, err := entity.ResolveRequired(ctx, "doctor", in.Doctor, doctors); err != nil {
					return err
				}
				a.Doctor = *in.Doctor
			}
			if in.Room != nil {
				if _, ok, err := entity.ResolveOptional(ctx, in.Room, rooms); err != nil {
					return err
				} else if ok {
					a.Room = in.Room
				}
			}
			applyAppointment(a, in)
			return nil
		},
		Check: checkAppointment,
		Default: func(a *Appointment) {
			if a.Status == "" {
				a.Status = StatusScheduled
			}
		},
	}
	return entity.NewService(spec, store)
}

func applyAppointment(a *Appointment, in *AppointmentInput) {
	if in.StartTime != nil {
		a.StartTime = in.StartTime
	}
	if in.EndTime != nil {
		a.EndTime = in.EndTime
	}
	if in.Reason != nil {
		a.Reason = *in.Reason
	}
	if in.Status != nil {
		a.Status = *in.Status
	}
}

func checkAppointment(a *Appointment) error {
	f := entity.CheckFields()
	if a.StartTime == nil {
		f.Add("startTime", "is required")
	} else if a.StartTime.Before(time.Now()) {
		f.Add("startTime", "must be in the present or future")
	}
	if a.EndTime == nil {
		f.Add("endTime", "is required")
	}
	if a.StartTime != nil && a.EndTime != nil && a.EndTime.Before(*a.StartTime) {
		f.Add("endTime", "must not precede startTime")
	}
	f.Require("reason", a.Reason)
	f.MaxLen("reason", a.Reason, 255)
	if a.Status != "" && !a.Status.Valid() {
		f.Add("status", "must be one of SCHEDULED, CONFIRMED, COMPLETED, CANCELLED, NO_SHOW")
	}
	return f.Err()
}
