package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/concert-ticket-sales/internal/repository"
)

func newStaffingHandler() *StaffingHandler {
	return NewStaffingHandler(
		repository.NewPostRepo(nil), repository.NewStaffRepo(nil),
		repository.NewShiftRepo(nil), repository.NewConcertRepo(nil))
}

func putShift(t *testing.T, id, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/v1/admin/shifts/"+id, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/admin/shifts/:id")
	c.SetParamNames("id")
	c.SetParamValues(id)

	require.NoError(t, newStaffingHandler().UpdateShift(c))
	return rec
}

func TestUpdateShiftRejectsInvalidBody(t *testing.T) {
	cases := map[string]string{
		"missing hours":   `{"staff_id":1,"concert_id":2}`,
		"short hours":     `{"hours":"2:30","staff_id":1,"concert_id":2}`,
		"missing staff":   `{"hours":"02:30:00","concert_id":2}`,
		"missing concert": `{"hours":"02:30:00","staff_id":1}`,
		"not json":        `{not json`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := putShift(t, "5", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestUpdateShiftRejectsBadID(t *testing.T) {
	rec := putShift(t, "0", `{"hours":"02:30:00","staff_id":1,"concert_id":2}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
