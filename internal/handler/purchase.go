package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/concert-ticket-sales/internal/model"
	"github.com/iliyamo/concert-ticket-sales/internal/repository"
	"github.com/iliyamo/concert-ticket-sales/internal/service"
)

// OrderPlacer is the slice of the order workflow the purchase endpoints
// need.  *service.OrderService satisfies it.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, concertID uint64, in service.PlaceOrderInput) (*model.TicketOrder, error)
	GetOrder(ctx context.Context, id uint64) (*model.TicketOrder, error)
}

// PurchaseHandler serves the buy-ticket form submission and the order
// confirmation page.
type PurchaseHandler struct {
	Orders OrderPlacer
}

func NewPurchaseHandler(orders OrderPlacer) *PurchaseHandler {
	if orders == nil {
		panic("nil order workflow passed to NewPurchaseHandler")
	}
	return &PurchaseHandler{Orders: orders}
}

// purchaseForm is the buy-ticket submission.  Quantity must be at least
// one and the ticket type one of the storefront's three choices.
type purchaseForm struct {
	TicketID   uint64 `form:"ticket_id" json:"ticket_id" validate:"required"`
	Quantity   uint32 `form:"quantity" json:"quantity" validate:"required,min=1"`
	Name       string `form:"name" json:"name" validate:"required,max=100"`
	Email      string `form:"email" json:"email" validate:"required,email"`
	Phone      string `form:"phone" json:"phone" validate:"required,max=30"`
	TicketType string `form:"ticket_type" json:"ticket_type" validate:"required,oneof=dancefloor fan-zone vip"`
}

// BuyTicket handles the purchase submission for a concert.  On success
// the customer is redirected to the confirmation page for the new
// order; the redirect is a 303 so the browser re-requests with GET.
func (h *PurchaseHandler) BuyTicket(c echo.Context) error {
	concertID, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}

	var form purchaseForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid form"})
	}
	if err := validate.Struct(form); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid form"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	order, err := h.Orders.PlaceOrder(ctx, concertID, service.PlaceOrderInput{
		TicketID:     form.TicketID,
		Quantity:     form.Quantity,
		CustomerName: form.Name,
		Email:        form.Email,
		Phone:        form.Phone,
		TicketType:   form.TicketType,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrConcertNotFound), errors.Is(err, repository.ErrTicketNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
		case errors.Is(err, repository.ErrInsufficientStock):
			return c.JSON(http.StatusConflict, echo.Map{"error": "not enough tickets available"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}

	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/order-success/%d/", order.ID))
}

// BuyTicketPage redirects a direct GET on the buy endpoint back to the
// concert detail, which carries the purchase form.
func (h *PurchaseHandler) BuyTicketPage(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/concert/%d/", id))
}

// OrderSuccess renders the confirmation for a placed order.
func (h *PurchaseHandler) OrderSuccess(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	order, err := h.Orders.GetOrder(ctx, id)
	if err != nil {
		return writeRepoErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"order": order,
		"total": order.TotalPrice(),
	})
}
