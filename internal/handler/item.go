package handler

import (
	"net/http"

	"github.com/stpnv0/SiPinjam/internal/domain"
	"github.com/stpnv0/SiPinjam/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) ListItems(c *ginext.Context) {
	var typ *domain.ItemType
	if raw := c.Query("type"); raw != "" {
		t := domain.ItemType(raw)
		typ = &t
	}

	items, err := h.itemService.List(c.Request.Context(), typ)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, dto.ToItemResponse(it))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetItem(c *ginext.Context) {
	id := c.Param("id")
	if !validID(id) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid item id"})
		return
	}

	item, err := h.itemService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}
