package model

import "time"

type OrderStatus string

const (
	OrderStatusNew      OrderStatus = "new"
	OrderStatusPrepping OrderStatus = "prepping"
	OrderStatusDone     OrderStatus = "done"
)

// ValidStatus は3値以外を弾く（状態遷移自体は自由）
func ValidStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusNew, OrderStatusPrepping, OrderStatusDone:
		return true
	default:
		return false
	}
}

type OrderType string

const (
	OrderTypeTable   OrderType = "table"
	OrderTypeTakeout OrderType = "takeout"
)

// Order は注文1件。作成後に変わるのは Status だけ。
// Identifier はテーブル番号、テイクアウトなら "name (phone)"。
// カラム名 table_number は旧システムのDBをそのまま引き継ぐため。
type Order struct {
	ID         int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	Identifier string      `gorm:"column:table_number;type:varchar(255);not null" json:"identifier"`
	Items      string      `gorm:"column:items;type:text;not null" json:"items"`
	Total      float64     `gorm:"type:numeric(10,2);not null" json:"total"`
	Status     OrderStatus `gorm:"type:varchar(16);not null;default:'new';index" json:"status"`
	CreatedAt  time.Time   `gorm:"not null;default:now();autoCreateTime" json:"created_at"`
	OrderType  OrderType   `gorm:"type:varchar(16);not null;default:'table'" json:"order_type"`
}

func (Order) TableName() string {
	return "orders"
}
