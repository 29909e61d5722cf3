package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"tableorder/internal/domain/model"
	"tableorder/internal/menu"
	"tableorder/internal/usecase"
)

// IntakeHandler は注文フォームの表示と受付。
// 成功時は追跡ページへリダイレクト、入力エラーはプレーンテキスト400。
type IntakeHandler struct {
	uc      *usecase.IntakeUsecase
	catalog *menu.Catalog
}

func NewIntakeHandler(uc *usecase.IntakeUsecase, catalog *menu.Catalog) *IntakeHandler {
	return &IntakeHandler{uc: uc, catalog: catalog}
}

func (h *IntakeHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.tableForm)
	e.GET("/takeout", h.takeoutForm)
	e.POST("/order", h.placeTableOrder)
	e.POST("/takeout-order", h.placeTakeoutOrder)
}

func (h *IntakeHandler) tableForm(c echo.Context) error {
	return c.Render(http.StatusOK, "index.html", map[string]any{
		"Menu": h.catalog.Items(),
	})
}

func (h *IntakeHandler) takeoutForm(c echo.Context) error {
	return c.Render(http.StatusOK, "takeout.html", map[string]any{
		"Menu": h.catalog.Items(),
	})
}

func (h *IntakeHandler) placeTableOrder(c echo.Context) error {
	out, err := h.uc.PlaceOrder(c.Request().Context(), usecase.PlaceOrderInput{
		TableNumber: c.FormValue("table"),
		OrderType:   model.OrderTypeTable,
		Quantities:  h.quantities(c),
	})
	if err != nil {
		return writeFormError(c, err)
	}
	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/track/%d", out.ID))
}

func (h *IntakeHandler) placeTakeoutOrder(c echo.Context) error {
	out, err := h.uc.PlaceOrder(c.Request().Context(), usecase.PlaceOrderInput{
		CustomerName: c.FormValue("customer_name"),
		PhoneNumber:  c.FormValue("phone_number"),
		OrderType:    model.OrderTypeTakeout,
		Quantities:   h.quantities(c),
	})
	if err != nil {
		return writeFormError(c, err)
	}
	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/track/%d", out.ID))
}

// quantities は qty_<itemId> のフォーム値を生のまま集める（解釈はusecase側）
func (h *IntakeHandler) quantities(c echo.Context) map[int64]string {
	q := make(map[int64]string, h.catalog.Len())
	for _, it := range h.catalog.Items() {
		q[it.ID] = c.FormValue(fmt.Sprintf("qty_%d", it.ID))
	}
	return q
}

// フォームPOSTのエラーはプレーンテキストで返す
func writeFormError(c echo.Context, err error) error {
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.String(he.Status, he.Message)
	}
	return c.String(http.StatusInternalServerError, "internal error")
}
