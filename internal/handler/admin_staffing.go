package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/concert-ticket-sales/internal/model"
	"github.com/iliyamo/concert-ticket-sales/internal/repository"
)

// StaffingHandler covers the back-office staffing subsystem: posts,
// staff members and concert shifts.
type StaffingHandler struct {
	Posts    *repository.PostRepo
	Staff    *repository.StaffRepo
	Shifts   *repository.ShiftRepo
	Concerts *repository.ConcertRepo
}

func NewStaffingHandler(posts *repository.PostRepo, staff *repository.StaffRepo,
	shifts *repository.ShiftRepo, concerts *repository.ConcertRepo) *StaffingHandler {
	if posts == nil || staff == nil || shifts == nil || concerts == nil {
		panic("nil repository passed to NewStaffingHandler")
	}
	return &StaffingHandler{Posts: posts, Staff: staff, Shifts: shifts, Concerts: concerts}
}

// ----- posts -----

type postReq struct {
	Title  string `json:"title" validate:"required,max=100"`
	Salary string `json:"salary" validate:"required"`
}

func (h *StaffingHandler) ListPosts(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	out, err := h.Posts.List(ctx)
	if err != nil {
		return writeRepoErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"posts": out})
}

func (h *StaffingHandler) GetPost(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	p, err := h.Posts.GetByID(ctx, id)
	if err != nil {
		return writeRepoErr(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *StaffingHandler) CreatePost(c echo.Context) error {
	var req postReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title and salary required"})
	}
	cents, err := model.ParseAmountCents(req.Salary)
	if err != nil || cents < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid salary"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	p := &model.Post{Title: req.Title, SalaryCents: cents}
	if err := h.Posts.Create(ctx, p); err != nil {
		return writeRepoErr(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *StaffingHandler) UpdatePost(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	var req postReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title and salary required"})
	}
	cents, err := model.ParseAmountCents(req.Salary)
	if err != nil || cents < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid salary"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	p := &model.Post{ID: id, Title: req.Title, SalaryCents: cents}
	if err := h.Posts.Update(ctx, p); err != nil {
		return writeRepoErr(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// DeletePost removes a post; staff hired into it cascade away with
// their shifts.
func (h *StaffingHandler) DeletePost(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Posts.Delete(ctx, id); err != nil {
		return writeRepoErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ----- staff -----

type staffReq struct {
	FirstName  string `json:"first_name" validate:"required,max=100"`
	LastName   string `json:"last_name" validate:"required,max=100"`
	FatherName string `json:"father_name" validate:"max=100"`
	Phone      string `json:"phone" validate:"required,max=30"`
	PostID     uint64 `json:"post_id" validate:"required"`
}

// ListStaff returns employees ordered by name, narrowed by ?search=
// over names and phone.
func (h *StaffingHandler) ListStaff(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	out, err := h.Staff.List(ctx, c.QueryParam("search"))
	if err != nil {
		return writeRepoErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"staff": out})
}

func (h *StaffingHandler) GetStaff(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	s, err := h.Staff.GetByID(ctx, id)
	if err != nil {
		return writeRepoErr(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *StaffingHandler) CreateStaff(c echo.Context) error {
	var req staffReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid staff fields"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.Posts.GetByID(ctx, req.PostID); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown post"})
	}

	s := &model.Staff{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		FatherName: req.FatherName,
		Phone:      req.Phone,
		PostID:     req.PostID,
	}
	if err := h.Staff.Create(ctx, s); err != nil {
		return writeRepoErr(c, err)
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *StaffingHandler) UpdateStaff(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	var req staffReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid staff fields"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.Posts.GetByID(ctx, req.PostID); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown post"})
	}

	s := &model.Staff{
		ID:         id,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		FatherName: req.FatherName,
		Phone:      req.Phone,
		PostID:     req.PostID,
	}
	if err := h.Staff.Update(ctx, s); err != nil {
		return writeRepoErr(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *StaffingHandler) DeleteStaff(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Staff.Delete(ctx, id); err != nil {
		return writeRepoErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ----- shifts -----

type shiftReq struct {
	Hours     string `json:"hours" validate:"required,len=8"`
	StaffID   uint64 `json:"staff_id" validate:"required"`
	ConcertID uint64 `json:"concert_id" validate:"required"`
}

// ListShifts returns all shifts, or just one concert's when
// ?concert_id= is given.
func (h *StaffingHandler) ListShifts(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	var (
		out []*model.Shift
		err error
	)
	if concertID := queryID(c, "concert_id"); concertID != 0 {
		out, err = h.Shifts.ListByConcert(ctx, concertID)
	} else {
		out, err = h.Shifts.List(ctx)
	}
	if err != nil {
		return writeRepoErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"shifts": out})
}

func (h *StaffingHandler) GetShift(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	s, err := h.Shifts.GetByID(ctx, id)
	if err != nil {
		return writeRepoErr(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

// CreateShift assigns a staff member to work a concert for a duration
// given as HH:MM:SS.
func (h *StaffingHandler) CreateShift(c echo.Context) error {
	var req shiftReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "hours (HH:MM:SS), staff_id and concert_id required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.Staff.GetByID(ctx, req.StaffID); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown staff member"})
	}
	if _, err := h.Concerts.GetByID(ctx, req.ConcertID); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown concert"})
	}

	s := &model.Shift{Hours: req.Hours, StaffID: req.StaffID, ConcertID: req.ConcertID}
	if err := h.Shifts.Create(ctx, s); err != nil {
		return writeRepoErr(c, err)
	}
	return c.JSON(http.StatusCreated, s)
}

// UpdateShift replaces a shift's duration and assignment.
func (h *StaffingHandler) UpdateShift(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	var req shiftReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "hours (HH:MM:SS), staff_id and concert_id required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.Staff.GetByID(ctx, req.StaffID); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown staff member"})
	}
	if _, err := h.Concerts.GetByID(ctx, req.ConcertID); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown concert"})
	}

	s := &model.Shift{ID: id, Hours: req.Hours, StaffID: req.StaffID, ConcertID: req.ConcertID}
	if err := h.Shifts.Update(ctx, s); err != nil {
		return writeRepoErr(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *StaffingHandler) DeleteShift(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Shifts.Delete(ctx, id); err != nil {
		return writeRepoErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
