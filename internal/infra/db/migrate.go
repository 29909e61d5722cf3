package db

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"tableorder/internal/domain/model"
)

// migrationStep は1個ずつ冪等。稼働中のDB（旧スキーマ・旧データ入り）に
// 対して何度実行しても安全でなければならない。
type migrationStep struct {
	name  string
	apply func(tx *gorm.DB) error
}

// Migrate は orders テーブルを現行スキーマまで引き上げる。
// 追加のみ（DROP/RENAME禁止）。失敗したら起動を止めるのが呼び出し側の責務。
//
// 旧行の埋め戻し値はリリース当時の意味を保つ：
//   - status 無し時代の行は全部 'new' 相当で扱われていた
//   - order_type 無し時代はテイクアウト未対応なので全行 'table'
func Migrate(db *gorm.DB) error {
	for _, step := range steps() {
		if err := db.Transaction(step.apply); err != nil {
			return fmt.Errorf("migration %s: %w", step.name, err)
		}
	}
	return nil
}

func steps() []migrationStep {
	return []migrationStep{
		{
			name: "create_orders",
			apply: func(tx *gorm.DB) error {
				if tx.Migrator().HasTable(&model.Order{}) {
					return nil
				}
				return tx.Migrator().CreateTable(&model.Order{})
			},
		},
		{
			name: "add_status",
			apply: addColumnWithBackfill("Status", "UPDATE orders SET status = 'new' WHERE status IS NULL"),
		},
		{
			name: "add_created_at",
			// 既存行があるテーブルにNOT NULL列は直接足せないので、
			// DEFAULT付きで足す→埋め戻す→NOT NULLを付ける、の順
			// （タイムスタンプが存在しなかった行には移行時刻を入れる）
			apply: func(tx *gorm.DB) error {
				if err := tx.Exec("ALTER TABLE orders ADD COLUMN IF NOT EXISTS created_at timestamptz DEFAULT now()").Error; err != nil {
					return err
				}
				if err := tx.Exec("UPDATE orders SET created_at = now() WHERE created_at IS NULL").Error; err != nil {
					return err
				}
				return tx.Exec("ALTER TABLE orders ALTER COLUMN created_at SET NOT NULL").Error
			},
		},
		{
			name: "add_order_type",
			apply: addColumnWithBackfill("OrderType", "UPDATE orders SET order_type = 'table' WHERE order_type IS NULL"),
		},
	}
}

func addColumnWithBackfill(field string, backfill string) func(tx *gorm.DB) error {
	return func(tx *gorm.DB) error {
		if !tx.Migrator().HasColumn(&model.Order{}, field) {
			if err := tx.Migrator().AddColumn(&model.Order{}, field); err != nil && !isDuplicateColumn(err) {
				return err
			}
		}
		return tx.Exec(backfill).Error
	}
}

// 同時起動した別プロセスが先にカラムを足した場合は適用済み扱い
func isDuplicateColumn(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "42701"
}
