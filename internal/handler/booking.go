package handler

import (
	"fmt"
	"net/http"

	"github.com/stpnv0/SiPinjam/internal/domain"
	"github.com/stpnv0/SiPinjam/internal/handler/dto"
	"github.com/stpnv0/SiPinjam/internal/middleware"
	"github.com/stpnv0/SiPinjam/internal/submission"
	"github.com/wb-go/wbf/ginext"
)

// SubmitBooking отправляет форму бронирования от имени текущей сессии.
func (h *Handler) SubmitBooking(c *ginext.Context) {
	session := middleware.SessionFrom(c)
	if _, ok := session.User(); !ok {
		loginRequired(c)
		return
	}
	form := submission.NewForm()

	var req dto.SubmitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Set("error", err.Error())
		c.JSON(http.StatusBadRequest, dto.SubmitResponse{
			Notice: submission.Notice{Level: submission.NoticeError, Message: submission.NoticeFailed},
			State:  submission.StateFailed,
		})
		return
	}
	form.Open(domain.ItemType(req.Type), req.ItemID)

	input, err := h.toFormInput(req)
	if err != nil {
		c.Set("error", err.Error())
		c.JSON(http.StatusBadRequest, dto.SubmitResponse{
			Notice:   submission.Notice{Level: submission.NoticeError, Message: submission.NoticeFailed},
			State:    submission.StateFailed,
			FormOpen: form.IsOpen(),
		})
		return
	}

	outcome := h.submitter.Submit(c.Request.Context(), form, session, input)
	if outcome.Err != nil {
		c.Set("error", outcome.Err.Error())
		c.JSON(errorStatus(outcome.Err), dto.ToSubmitResponse(outcome, form))
		return
	}

	c.JSON(http.StatusCreated, dto.ToSubmitResponse(outcome, form))
}

func (h *Handler) toFormInput(req dto.SubmitBookingRequest) (domain.BookingFormInput, error) {
	start, ok := h.presenter.ParseDate(req.StartDate)
	if !ok {
		return domain.BookingFormInput{}, fmt.Errorf("%w: invalid start_date %q", domain.ErrValidation, req.StartDate)
	}
	end, ok := h.presenter.ParseDate(req.EndDate)
	if !ok {
		return domain.BookingFormInput{}, fmt.Errorf("%w: invalid end_date %q", domain.ErrValidation, req.EndDate)
	}

	return domain.BookingFormInput{
		Type:      domain.ItemType(req.Type),
		ItemID:    req.ItemID,
		StartDate: start,
		EndDate:   end,
		Purpose:   req.Purpose,
		Notes:     req.Notes,
	}, nil
}

func (h *Handler) ListBookings(c *ginext.Context) {
	var filter domain.BookingFilter
	if raw := c.Query("status"); raw != "" {
		s := domain.BookingStatus(raw)
		filter.Status = &s
	}
	if raw := c.Query("type"); raw != "" {
		t := domain.ItemType(raw)
		filter.Type = &t
	}
	if raw := c.Query("user_id"); raw != "" {
		if !validID(raw) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
			return
		}
		filter.UserID = raw
	}

	bookings, err := h.bookingService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingsResponse(bookings))
}

func (h *Handler) MyBookings(c *ginext.Context) {
	user, ok := middleware.SessionFrom(c).User()
	if !ok {
		loginRequired(c)
		return
	}

	bookings, err := h.bookingService.ListByUser(c.Request.Context(), user.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingsResponse(bookings))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id := c.Param("id")
	if !validID(id) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.bookingService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.presenter.Detail(booking))
}

// UpdateBookingStatus доступен только с сессией; ролей в модели нет.
func (h *Handler) UpdateBookingStatus(c *ginext.Context) {
	if _, ok := middleware.SessionFrom(c).User(); !ok {
		loginRequired(c)
		return
	}

	id := c.Param("id")
	if !validID(id) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.UpdateStatus(c.Request.Context(), id, domain.StatusChangeInput{
		Status:          domain.BookingStatus(req.Status),
		RejectionReason: req.RejectionReason,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// loginRequired отвечает 401 с уведомлением и переходом на страницу входа.
func loginRequired(c *ginext.Context) {
	c.Set("error", domain.ErrUnauthenticated.Error())
	c.JSON(http.StatusUnauthorized, dto.SubmitResponse{
		Notice:   submission.Notice{Level: submission.NoticeError, Message: submission.NoticeLoginRequired},
		Redirect: submission.RedirectLogin,
		State:    submission.StateFailed,
	})
}
