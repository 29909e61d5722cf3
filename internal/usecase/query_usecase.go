package usecase

import (
	"context"
	"errors"
	"net/http"

	"tableorder/internal/domain/model"
	repo "tableorder/internal/repository"
)

// QueryUsecase はダッシュボードと追跡ページの読み取り専用ビュー。
type QueryUsecase struct {
	orders repo.OrderRepository
}

func NewQueryUsecase(orders repo.OrderRepository) *QueryUsecase {
	return &QueryUsecase{orders: orders}
}

// ParseFilter は未知の値を all に倒す（エラーにしない方針）
func ParseFilter(raw string) repo.ListFilter {
	switch repo.ListFilter(raw) {
	case repo.FilterActive:
		return repo.FilterActive
	case repo.FilterDone:
		return repo.FilterDone
	default:
		return repo.FilterAll
	}
}

func (u *QueryUsecase) Dashboard(ctx context.Context, rawFilter string) ([]model.Order, error) {
	orders, err := u.orders.List(ctx, ParseFilter(rawFilter))
	if err != nil {
		return []model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return orders, nil
}

func (u *QueryUsecase) ByIdentifier(ctx context.Context, identifier string, includeDone bool) ([]model.Order, error) {
	orders, err := u.orders.ListByIdentifier(ctx, identifier, includeDone)
	if err != nil {
		return []model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return orders, nil
}

func (u *QueryUsecase) ByID(ctx context.Context, orderID int64) (model.Order, error) {
	o, err := u.orders.FindByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Order{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return o, nil
}

func (u *QueryUsecase) Stats(ctx context.Context) (repo.OrderSummary, error) {
	s, err := u.orders.Summary(ctx)
	if err != nil {
		return repo.OrderSummary{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return s, nil
}
