package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"tableorder/internal/domain/model"
	repo "tableorder/internal/repository"
)

// LifecycleUsecase は注文ステータスの状態機械。
// new / prepping / done の3値の中なら任意の遷移を許す
// （doneをpreppingに戻す運用訂正もあり得る）。初期値のnewは作成時のみ。
type LifecycleUsecase struct {
	tx repo.TransactionManager
}

func NewLifecycleUsecase(tx repo.TransactionManager) *LifecycleUsecase {
	return &LifecycleUsecase{tx: tx}
}

type UpdateStatusInput struct {
	Status string
}

// 正規化済み（トリム済み）のステータスを返す。レスポンスにはこちらを使う。
func (u *LifecycleUsecase) UpdateStatus(ctx context.Context, orderID int64, in UpdateStatusInput) (model.OrderStatus, error) {
	if orderID <= 0 {
		return "", NewHTTPError(http.StatusNotFound, "order not found")
	}

	status := model.OrderStatus(strings.TrimSpace(in.Status))
	if !model.ValidStatus(status) {
		return "", NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		err := r.Orders().UpdateStatus(ctx, orderID, status)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}
		if errors.Is(err, repo.ErrInvalidStatus) {
			return NewHTTPError(http.StatusBadRequest, "invalid status")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return status, nil
}
