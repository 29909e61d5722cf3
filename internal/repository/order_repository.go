package repository

import (
	"context"
	"errors"

	"tableorder/internal/domain/model"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidStatus = errors.New("invalid status")
	// ErrInvalidOrder はストア側の最終防衛ライン（identifier空、明細空、負のtotal）
	ErrInvalidOrder = errors.New("invalid order")
)

// ListFilter はダッシュボードの絞り込み
type ListFilter string

const (
	FilterAll    ListFilter = "all"
	FilterActive ListFilter = "active" // new + prepping
	FilterDone   ListFilter = "done"
)

type OrderSummary struct {
	TotalOrders  int64   `json:"total_orders"`
	TotalRevenue float64 `json:"total_revenue"`
}

// OrderRepository は orders テーブルへの読み書きを一手に持つ。
// 一覧系は常に id 降順（新しい注文が先頭）。
type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (int64, error)
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
	List(ctx context.Context, f ListFilter) ([]model.Order, error)
	ListByIdentifier(ctx context.Context, identifier string, includeDone bool) ([]model.Order, error)
	Summary(ctx context.Context) (OrderSummary, error)
}
