package scheduling

import (
	"github.com/labstack/echo/v4"

	"github.com/clinic/clinic/internal/entity"
)

// RegisterRoutes mounts the availability and appointment resources under the
// API group.
func RegisterRoutes(api *echo.Group,
	availabilities *entity.Service[DoctorAvailability, DoctorAvailabilityInput],
	appointments *entity.Service[Appointment, AppointmentInput],
) {
	entity.NewHandler(availabilities).Register(api, "/doctor-availabilities")
	entity.NewHandler(appointments).Register(api, "/appointments")
}
