package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"tableorder/internal/domain/model"
	"tableorder/internal/repository"
	"tableorder/internal/usecase"
)

// TrackHandler は客側の追跡ビュー（注文単位・識別子単位）とサマリ
type TrackHandler struct {
	query *usecase.QueryUsecase
}

func NewTrackHandler(query *usecase.QueryUsecase) *TrackHandler {
	return &TrackHandler{query: query}
}

type OrderResponse struct {
	OK    bool        `json:"ok"`
	Order model.Order `json:"order"`
}

type IdentifierOrdersResponse struct {
	OK     bool          `json:"ok"`
	Orders []model.Order `json:"orders"`
}

type StatsResponse struct {
	OK bool `json:"ok"`
	repository.OrderSummary
}

// echoのパスパラメータはセグメント単位なので、
// /table/5 と /table/5.json は同じルートで受けて拡張子で振り分ける
func (h *TrackHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/track/:id", h.trackPage)
	e.GET("/order/:id", h.orderJSON)
	e.GET("/table/:identifier", h.identifier)
	e.GET("/stats.json", h.statsJSON)
}

func (h *TrackHandler) trackPage(c echo.Context) error {
	return c.Render(http.StatusOK, "track.html", map[string]any{
		"OrderID": c.Param("id"),
	})
}

func (h *TrackHandler) orderJSON(c echo.Context) error {
	raw := strings.TrimSuffix(c.Param("id"), ".json")
	orderID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{OK: false, Error: "not found"})
	}

	o, err := h.query.ByID(c.Request().Context(), orderID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, OrderResponse{OK: true, Order: o})
}

func (h *TrackHandler) identifier(c echo.Context) error {
	identifier := c.Param("identifier")
	if strings.HasSuffix(identifier, ".json") {
		return h.identifierJSON(c, strings.TrimSuffix(identifier, ".json"))
	}
	return c.Render(http.StatusOK, "table.html", map[string]any{
		"Identifier": identifier,
	})
}

func (h *TrackHandler) identifierJSON(c echo.Context, identifier string) error {
	includeDone := c.QueryParam("all") == "1"

	orders, err := h.query.ByIdentifier(c.Request().Context(), identifier, includeDone)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, IdentifierOrdersResponse{OK: true, Orders: orders})
}

func (h *TrackHandler) statsJSON(c echo.Context) error {
	s, err := h.query.Stats(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, StatsResponse{OK: true, OrderSummary: s})
}
