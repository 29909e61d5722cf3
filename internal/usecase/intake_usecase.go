package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"tableorder/internal/domain/model"
	"tableorder/internal/menu"
	repo "tableorder/internal/repository"
)

type IntakeUsecase struct {
	tx      repo.TransactionManager
	catalog *menu.Catalog
}

func NewIntakeUsecase(tx repo.TransactionManager, catalog *menu.Catalog) *IntakeUsecase {
	return &IntakeUsecase{tx: tx, catalog: catalog}
}

// PlaceOrderInput はフォームの生値。Quantities は itemID → 入力文字列。
// 数量は寛容に解釈する：数値でない・空・0以下は「選んでいない」扱い。
type PlaceOrderInput struct {
	TableNumber  string
	CustomerName string
	PhoneNumber  string
	OrderType    model.OrderType
	Quantities   map[int64]string
}

type PlaceOrderOutput struct {
	ID     int64             `json:"id"`
	Status model.OrderStatus `json:"status"`
	Items  string            `json:"items"`
	Total  float64           `json:"total"`
}

func (u *IntakeUsecase) PlaceOrder(ctx context.Context, in PlaceOrderInput) (PlaceOrderOutput, error) {
	identifier, err := buildIdentifier(in)
	if err != nil {
		return PlaceOrderOutput{}, err
	}

	// メニュー順に集計（表示文字列の並びもメニュー順で安定させる）
	var fragments []string
	var total float64
	for _, it := range u.catalog.Items() {
		qty := parseQuantity(in.Quantities[it.ID])
		if qty <= 0 {
			continue
		}
		fragments = append(fragments, fmt.Sprintf("%dx %s", qty, it.Name))
		total += float64(qty) * it.Price
	}
	if len(fragments) == 0 {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "empty order")
	}

	items := strings.Join(fragments, ", ")

	var out PlaceOrderOutput

	//注文作成はトランザクション
	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		id, err := r.Orders().Create(ctx, model.Order{
			Identifier: identifier,
			Items:      items,
			Total:      total,
			Status:     model.OrderStatusNew,
			OrderType:  in.OrderType,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		out = PlaceOrderOutput{
			ID:     id,
			Status: model.OrderStatusNew,
			Items:  items,
			Total:  total,
		}
		return nil
	})

	if err != nil {
		return PlaceOrderOutput{}, err
	}
	return out, nil
}

func buildIdentifier(in PlaceOrderInput) (string, error) {
	switch in.OrderType {
	case model.OrderTypeTakeout:
		name := strings.TrimSpace(in.CustomerName)
		phone := strings.TrimSpace(in.PhoneNumber)
		if name == "" || phone == "" {
			return "", NewHTTPError(http.StatusBadRequest, "missing identifier")
		}
		return fmt.Sprintf("%s (%s)", name, phone), nil
	default:
		table := strings.TrimSpace(in.TableNumber)
		if table == "" {
			return "", NewHTTPError(http.StatusBadRequest, "missing identifier")
		}
		return table, nil
	}
}

// parseQuantity は数値以外を0として扱う（入力に寛容なのは仕様）
func parseQuantity(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
