package billing

import (
	"github.com/labstack/echo/v4"

	"github.com/clinic/clinic/internal/entity"
)

// RegisterRoutes mounts the invoice resource under the API group.
func RegisterRoutes(api *echo.Group, invoices *entity.Service[Invoice, InvoiceInput]) {
	entity.NewHandler(invoices).Register(api, "/invoices")
}
