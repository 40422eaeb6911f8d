package facility

import (
	"github.com/labstack/echo/v4"

	"github.com/clinic/clinic/internal/entity"
)

// RegisterRoutes mounts the room and specialty resources under the API group.
func RegisterRoutes(api *echo.Group,
	rooms *entity.Service[Room, RoomInput],
	specialties *entity.Service[Specialty, SpecialtyInput],
) {
	entity.NewHandler(rooms).Register(api, "/rooms")
	entity.NewHandler(specialties).Register(api, "/specialties")
}
