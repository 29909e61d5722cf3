package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"tableorder/internal/domain/model"
	"tableorder/internal/usecase"
)

type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{OK: false, Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{OK: false, Error: "internal error"})
}

// OrderHandler はスタッフ用ダッシュボードとステータス更新
type OrderHandler struct {
	query     *usecase.QueryUsecase
	lifecycle *usecase.LifecycleUsecase
}

func NewOrderHandler(query *usecase.QueryUsecase, lifecycle *usecase.LifecycleUsecase) *OrderHandler {
	return &OrderHandler{query: query, lifecycle: lifecycle}
}

type StatusUpdateRequest struct {
	Status string `json:"status" form:"status"`
}

type StatusUpdateResponse struct {
	OK     bool              `json:"ok"`
	ID     int64             `json:"id"`
	Status model.OrderStatus `json:"status"`
}

type OrderListResponse struct {
	Orders []model.Order `json:"orders"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/orders", h.page)
	e.GET("/orders.json", h.list)
	e.POST("/orders/:id/status", h.updateStatus)
}

func (h *OrderHandler) page(c echo.Context) error {
	return c.Render(http.StatusOK, "orders.html", nil)
}

func (h *OrderHandler) list(c echo.Context) error {
	orders, err := h.query.Dashboard(c.Request().Context(), c.QueryParam("filter"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, OrderListResponse{Orders: orders})
}

func (h *OrderHandler) updateStatus(c echo.Context) error {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{OK: false, Error: "order not found"})
	}

	var req StatusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{OK: false, Error: "invalid status"})
	}

	status, err := h.lifecycle.UpdateStatus(
		c.Request().Context(),
		orderID,
		usecase.UpdateStatusInput{Status: req.Status},
	)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, StatusUpdateResponse{
		OK:     true,
		ID:     orderID,
		Status: status,
	})
}
