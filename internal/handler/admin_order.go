package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/concert-ticket-sales/internal/model"
	"github.com/iliyamo/concert-ticket-sales/internal/repository"
)

// OrderAdminHandler covers the back-office view of ticket orders.
// Orders are created only by the storefront purchase flow; here staff
// can list, inspect, correct contact details and delete.
type OrderAdminHandler struct {
	Orders *repository.OrderRepo
}

func NewOrderAdminHandler(orders *repository.OrderRepo) *OrderAdminHandler {
	if orders == nil {
		panic("nil repository passed to NewOrderAdminHandler")
	}
	return &OrderAdminHandler{Orders: orders}
}

// ListOrders returns orders newest first, narrowed by ?search=
// (customer name / order number), ?ticket_type= and ?date= (YYYY-MM-DD,
// the order date's day).
func (h *OrderAdminHandler) ListOrders(c echo.Context) error {
	ticketType := c.QueryParam("ticket_type")
	if ticketType != "" && !model.ValidTicketType(ticketType) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid ticket_type"})
	}
	q := repository.OrderSearchQuery{
		Search:     c.QueryParam("search"),
		TicketType: ticketType,
		Date:       queryDate(c, "date"),
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	out, err := h.Orders.Search(ctx, q)
	if err != nil {
		return writeRepoErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"orders": out})
}

func (h *OrderAdminHandler) GetOrder(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	o, err := h.Orders.GetByID(ctx, id)
	if err != nil {
		return writeRepoErr(c, err)
	}
	return c.JSON(http.StatusOK, o)
}

type orderContactReq struct {
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,max=30"`
}

// UpdateOrderContact corrects the buyer's contact details.  Number,
// date, quantity and total stay immutable.
func (h *OrderAdminHandler) UpdateOrderContact(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	var req orderContactReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, email and phone required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Orders.UpdateContact(ctx, id, req.Name, req.Email, req.Phone); err != nil {
		return writeRepoErr(c, err)
	}
	o, err := h.Orders.GetByID(ctx, id)
	if err != nil {
		return writeRepoErr(c, err)
	}
	return c.JSON(http.StatusOK, o)
}

func (h *OrderAdminHandler) DeleteOrder(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Orders.Delete(ctx, id); err != nil {
		return writeRepoErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
