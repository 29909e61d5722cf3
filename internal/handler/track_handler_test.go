package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tableorder/internal/domain/model"
	repo "tableorder/internal/repository"
	"tableorder/internal/usecase"
)

func newTrackHandler() (*TrackHandler, *handlerOrderRepoMock) {
	orders := new(handlerOrderRepoMock)
	return NewTrackHandler(usecase.NewQueryUsecase(orders)), orders
}

func paramContext(e *echo.Echo, target, path, name, value string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath(path)
	c.SetParamNames(name)
	c.SetParamValues(value)
	return c, rec
}

func TestOrderJSON(t *testing.T) {
	h, orders := newTrackHandler()

	want := model.Order{
		ID:         42,
		Identifier: "5",
		Items:      "2x Cheeseburger, 1x Coke",
		Total:      20.48,
		Status:     model.OrderStatusNew,
		CreatedAt:  time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		OrderType:  model.OrderTypeTable,
	}
	orders.On("FindByID", mock.Anything, int64(42)).Return(want, nil)

	e := echo.New()
	c, rec := paramContext(e, "/order/42.json", "/order/:id", "id", "42.json")

	require.NoError(t, h.orderJSON(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.OK)
	assert.Equal(t, int64(42), body.Order.ID)
	assert.Equal(t, model.OrderStatusNew, body.Order.Status)
	assert.InDelta(t, 20.48, body.Order.Total, 0.001)
}

func TestOrderJSON_NotFound(t *testing.T) {
	h, orders := newTrackHandler()

	orders.On("FindByID", mock.Anything, int64(99)).Return(model.Order{}, repo.ErrNotFound)

	e := echo.New()
	c, rec := paramContext(e, "/order/99.json", "/order/:id", "id", "99.json")

	require.NoError(t, h.orderJSON(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.OK)
	assert.Equal(t, "not found", body.Error)
}

func TestOrderJSON_NonNumericID(t *testing.T) {
	h, _ := newTrackHandler()

	e := echo.New()
	c, rec := paramContext(e, "/order/abc.json", "/order/:id", "id", "abc.json")

	require.NoError(t, h.orderJSON(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestIdentifierJSON_ExcludesDoneByDefault(t *testing.T) {
	h, orders := newTrackHandler()

	orders.On("ListByIdentifier", mock.Anything, "5", false).Return([]model.Order{
		{ID: 3, Status: model.OrderStatusPrepping},
	}, nil)

	e := echo.New()
	c, rec := paramContext(e, "/table/5.json", "/table/:identifier", "identifier", "5.json")

	require.NoError(t, h.identifier(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body IdentifierOrdersResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.OK)
	require.Len(t, body.Orders, 1)
	orders.AssertExpectations(t)
}

func TestIdentifierJSON_AllIncludesDone(t *testing.T) {
	h, orders := newTrackHandler()

	orders.On("ListByIdentifier", mock.Anything, "5", true).Return([]model.Order{
		{ID: 3, Status: model.OrderStatusPrepping},
		{ID: 1, Status: model.OrderStatusDone},
	}, nil)

	e := echo.New()
	c, rec := paramContext(e, "/table/5.json?all=1", "/table/:identifier", "identifier", "5.json")

	require.NoError(t, h.identifier(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body IdentifierOrdersResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Orders, 2)
	orders.AssertExpectations(t)
}

func TestStatsJSON(t *testing.T) {
	h, orders := newTrackHandler()

	orders.On("Summary", mock.Anything).Return(repo.OrderSummary{TotalOrders: 2, TotalRevenue: 27.98}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/stats.json", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.statsJSON(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["ok"])
	assert.EqualValues(t, 2, body["total_orders"])
	assert.InDelta(t, 27.98, body["total_revenue"].(float64), 0.001)
}
