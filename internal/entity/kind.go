package entity

// Kind identifies one of the clinic's entity kinds. It appears in error
// messages and is the tag the reference resolver reports on a failed lookup.
type Kind string

const (
	KindPatient            Kind = "Patient"
	KindDoctor             Kind = "Doctor"
	KindRoom               Kind = "Room"
	KindSpecialty          Kind = "Specialty"
	KindDoctorAvailability Kind = "DoctorAvailability"
	KindAppointment        Kind = "Appointment"
	KindInvoice            Kind = "Invoice"
)
