package handler

import (
	"net/http"

	"github.com/stpnv0/SiPinjam/internal/handler/dto"
	"github.com/stpnv0/SiPinjam/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	token, user, err := h.sessionService.Login(c.Request.Context(), req.Username)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.SetCookie(middleware.SessionCookie, token, int(h.sessionTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusCreated, dto.SessionResponse{Token: token, User: user})
}

func (h *Handler) Logout(c *ginext.Context) {
	if err := h.sessionService.Logout(c.Request.Context(), middleware.SessionToken(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Status(http.StatusNoContent)
}
