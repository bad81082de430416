package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/concert-ticket-sales/internal/model"
	"github.com/iliyamo/concert-ticket-sales/internal/repository"
	"github.com/iliyamo/concert-ticket-sales/internal/service"
)

// fakeOrderStore implements OrderPlacer for handler tests.  It records
// calls and returns canned results.
type fakeOrderStore struct {
	placeErr   error
	placeCalls int
	lastInput  service.PlaceOrderInput
	order      *model.TicketOrder
}

func (f *fakeOrderStore) PlaceOrder(_ context.Context, concertID uint64, in service.PlaceOrderInput) (*model.TicketOrder, error) {
	f.placeCalls++
	f.lastInput = in
	if f.placeErr != nil {
		return nil, f.placeErr
	}
	o := *f.order
	o.ConcertID = concertID
	return &o, nil
}

func (f *fakeOrderStore) GetOrder(_ context.Context, id uint64) (*model.TicketOrder, error) {
	if f.order == nil || f.order.ID != id {
		return nil, repository.ErrOrderNotFound
	}
	return f.order, nil
}

func validForm() url.Values {
	return url.Values{
		"ticket_id":   {"3"},
		"quantity":    {"2"},
		"name":        {"Anna K"},
		"email":       {"anna@example.com"},
		"phone":       {"+49123456"},
		"ticket_type": {"vip"},
	}
}

func postPurchase(t *testing.T, store *fakeOrderStore, concertID string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/buy-ticket/"+concertID+"/", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/buy-ticket/:id/")
	c.SetParamNames("id")
	c.SetParamValues(concertID)

	h := NewPurchaseHandler(store)
	require.NoError(t, h.BuyTicket(c))
	return rec
}

func TestBuyTicketRedirectsToConfirmation(t *testing.T) {
	store := &fakeOrderStore{order: &model.TicketOrder{
		ID:              12,
		TicketID:        3,
		OrderNumber:     "T000012",
		Quantity:        2,
		TotalPriceCents: 300000,
		OrderDate:       time.Now(),
	}}

	rec := postPurchase(t, store, "7", validForm())

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/order-success/12/", rec.Header().Get("Location"))
	assert.Equal(t, 1, store.placeCalls)
	assert.Equal(t, uint64(3), store.lastInput.TicketID)
	assert.Equal(t, uint32(2), store.lastInput.Quantity)
	assert.Equal(t, "vip", store.lastInput.TicketType)
}

func TestBuyTicketInsufficientStock(t *testing.T) {
	store := &fakeOrderStore{placeErr: repository.ErrInsufficientStock}

	rec := postPurchase(t, store, "7", validForm())

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "not enough tickets")
}

func TestBuyTicketUnknownConcert(t *testing.T) {
	store := &fakeOrderStore{placeErr: repository.ErrConcertNotFound}
	rec := postPurchase(t, store, "999", validForm())
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBuyTicketUnknownTicket(t *testing.T) {
	store := &fakeOrderStore{placeErr: repository.ErrTicketNotFound}
	rec := postPurchase(t, store, "7", validForm())
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBuyTicketRejectsInvalidForm(t *testing.T) {
	cases := map[string]func(url.Values){
		"zero quantity":   func(f url.Values) { f.Set("quantity", "0") },
		"missing name":    func(f url.Values) { f.Del("name") },
		"bad email":       func(f url.Values) { f.Set("email", "not-an-email") },
		"bad ticket type": func(f url.Values) { f.Set("ticket_type", "balcony") },
		"missing ticket":  func(f url.Values) { f.Del("ticket_id") },
		"missing phone":   func(f url.Values) { f.Del("phone") },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			store := &fakeOrderStore{order: &model.TicketOrder{ID: 1}}
			form := validForm()
			mutate(form)

			rec := postPurchase(t, store, "7", form)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Zero(t, store.placeCalls)
		})
	}
}

func TestOrderSuccessReturnsOrder(t *testing.T) {
	store := &fakeOrderStore{order: &model.TicketOrder{
		ID:              12,
		OrderNumber:     "T000012",
		TotalPriceCents: 450000,
	}}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/order-success/12/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/order-success/:id/")
	c.SetParamNames("id")
	c.SetParamValues("12")

	h := NewPurchaseHandler(store)
	require.NoError(t, h.OrderSuccess(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "T000012")
	assert.Contains(t, rec.Body.String(), "4500.00")
}

func TestOrderSuccessUnknownOrder(t *testing.T) {
	store := &fakeOrderStore{}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/order-success/55/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/order-success/:id/")
	c.SetParamNames("id")
	c.SetParamValues("55")

	h := NewPurchaseHandler(store)
	require.NoError(t, h.OrderSuccess(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBuyTicketPageRedirectsToConcert(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/buy-ticket/7/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/buy-ticket/:id/")
	c.SetParamNames("id")
	c.SetParamValues("7")

	h := NewPurchaseHandler(&fakeOrderStore{})
	require.NoError(t, h.BuyTicketPage(c))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/concert/7/", rec.Header().Get("Location"))
}
