package scheduling

import (
	"time"

	"github.com/clinic/clinic/internal/entity"
)

// DayOfWeek names a weekday for a recurring availability window.
type DayOfWeek string

const (
	Monday    DayOfWeek = "MONDAY"
	Tuesday   DayOfWeek = "TUESDAY"
	Wednesday DayOfWeek = "WEDNESDAY"
	Thursday  DayOfWeek = "THURSDAY"
	Friday    DayOfWeek = "FRIDAY"
	Saturday  DayOfWeek = "SATURDAY"
	Sunday    DayOfWeek = "SUNDAY"
)

func (d DayOfWeek) Valid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	}
	return false
}

// AppointmentStatus is a plain enumeration; any status may move to any other.
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "SCHEDULED"
	StatusConfirmed AppointmentStatus = "CONFIRMED"
	StatusCompleted AppointmentStatus = "COMPLETED"
	StatusCancelled AppointmentStatus = "CANCELLED"
	StatusNoShow    AppointmentStatus = "NO_SHOW"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// DoctorAvailability is a recurring weekly window during which one doctor
// accepts appointments. Times are clock times ("HH:MM"), not timestamps.
type DoctorAvailability struct {
	ID        int64      `json:"id"`
	Doctor    entity.Ref `json:"doctor"`
	DayOfWeek DayOfWeek  `json:"dayOfWeek"`
	StartTime string     `json:"startTime"`
	EndTime   string     `json:"endTime"`
	CreatedAt time.Time  `json:"-"`
	UpdatedAt time.Time  `json:"-"`
}

// DoctorAvailabilityInput is the create/update payload for DoctorAvailability.
type DoctorAvailabilityInput struct {
	Doctor    *entity.Ref `json:"doctor"`
	DayOfWeek *DayOfWeek  `json:"dayOfWeek"`
	StartTime *string     `json:"startTime"`
	EndTime   *string     `json:"endTime"`
}

// Appointment is a booked visit: one patient with one doctor, optionally in a
// room, over a concrete timestamp interval.
type Appointment struct {
	ID        int64             `json:"id"`
	Patient   entity.Ref        `json:"patient"`
	Doctor    entity.Ref        `json:"doctor"`
	Room      *entity.Ref       `json:"room,omitempty"`
	StartTime *time.Time        `json:"startTime"`
	EndTime   *time.Time        `json:"endTime"`
	Reason    string            `json:"reason"`
	Status    AppointmentStatus `json:"status"`
	CreatedAt time.Time         `json:"-"`
	UpdatedAt time.Time         `json:"-"`
}

// AppointmentInput is the create/update payload for Appointment.
type AppointmentInput struct {
	Patient   *entity.Ref        `json:"patient"`
	Doctor    *entity.Ref        `json:"doctor"`
	Room      *entity.Ref        `json:"room"`
	StartTime *time.Time         `json:"startTime"`
	EndTime   *time.Time         `json:"endTime"`
	Reason    *string            `json:"reason"`
	Status    *AppointmentStatus `json:"status"`
}
