package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"tableorder/internal/domain/model"
	repo "tableorder/internal/repository"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

// Create は検証済みの注文を1行書く。usecase側で検証済みのはずだが、
// 書き込み境界として最後にもう一度確認する。
func (r *OrderGormRepository) Create(ctx context.Context, order model.Order) (int64, error) {
	if strings.TrimSpace(order.Identifier) == "" {
		return 0, repo.ErrInvalidOrder
	}
	if strings.TrimSpace(order.Items) == "" {
		return 0, repo.ErrInvalidOrder
	}
	if order.Total < 0 {
		return 0, repo.ErrInvalidOrder
	}
	if !model.ValidStatus(order.Status) {
		return 0, repo.ErrInvalidStatus
	}
	if err := r.db.WithContext(ctx).Create(&order).Error; err != nil {
		return 0, err
	}
	return order.ID, nil
}

func (r *OrderGormRepository) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).Where("id = ?", orderID).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

// UpdateStatus は0行更新を ErrNotFound として返す（行を作ることはない）
func (r *OrderGormRepository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	if !model.ValidStatus(status) {
		return repo.ErrInvalidStatus
	}

	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", orderID).
		Update("status", status)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *OrderGormRepository) List(ctx context.Context, f repo.ListFilter) ([]model.Order, error) {
	q := r.db.WithContext(ctx).Model(&model.Order{})

	switch f {
	case repo.FilterActive:
		q = q.Where("status IN ?", []model.OrderStatus{model.OrderStatusNew, model.OrderStatusPrepping})
	case repo.FilterDone:
		q = q.Where("status = ?", model.OrderStatusDone)
	case repo.FilterAll:
		// 絞り込みなし
	}

	var items []model.Order
	if err := q.Order("id desc").Find(&items).Error; err != nil {
		return []model.Order{}, err
	}
	return items, nil
}

func (r *OrderGormRepository) ListByIdentifier(ctx context.Context, identifier string, includeDone bool) ([]model.Order, error) {
	q := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("table_number = ?", identifier)

	if !includeDone {
		q = q.Where("status <> ?", model.OrderStatusDone)
	}

	var items []model.Order
	if err := q.Order("id desc").Find(&items).Error; err != nil {
		return []model.Order{}, err
	}
	return items, nil
}

func (r *OrderGormRepository) Summary(ctx context.Context) (repo.OrderSummary, error) {
	var s repo.OrderSummary
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Select("COUNT(*) AS total_orders, COALESCE(SUM(total), 0) AS total_revenue").
		Scan(&s).Error
	if err != nil {
		return repo.OrderSummary{}, err
	}
	return s, nil
}
