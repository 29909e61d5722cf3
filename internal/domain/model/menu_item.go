package model

// MenuItem は固定メニューの1品。起動時に読み込むだけで永続化しない。
type MenuItem struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
