package identity

import (
	"github.com/labstack/echo/v4"

	"github.com/clinic/clinic/internal/entity"
)

// RegisterRoutes mounts the patient and doctor resources under the API group.
func RegisterRoutes(api *echo.Group,
	patients *entity.Service[Patient, PatientInput],
	doctors *entity.Service[Doctor, DoctorInput],
) {
	entity.NewHandler(patients).Register(api, "/patients")
	entity.NewHandler(doctors).Register(api, "/doctors")
}
