package menu

import (
	"encoding/json"
	"fmt"
	"os"

	"tableorder/internal/domain/model"
)

// Catalog は固定メニュー。起動時に1回作って以後読み取りのみ。
type Catalog struct {
	items []model.MenuItem
	byID  map[int64]model.MenuItem
}

func New(items []model.MenuItem) *Catalog {
	c := &Catalog{
		items: make([]model.MenuItem, len(items)),
		byID:  make(map[int64]model.MenuItem, len(items)),
	}
	copy(c.items, items)
	for _, it := range items {
		c.byID[it.ID] = it
	}
	return c
}

// Default は組み込みメニュー（メニューファイル未指定時）
func Default() *Catalog {
	return New([]model.MenuItem{
		{ID: 1, Name: "Cheeseburger", Price: 8.99},
		{ID: 2, Name: "Margherita Pizza", Price: 11.50},
		{ID: 3, Name: "Caesar Salad", Price: 7.25},
		{ID: 4, Name: "French Fries", Price: 3.75},
		{ID: 5, Name: "Coke", Price: 2.50},
		{ID: 6, Name: "Iced Tea", Price: 2.75},
	})
}

// LoadFile はJSONファイル（MenuItemの配列）からカタログを作る
func LoadFile(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var items []model.MenuItem
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("parse menu %s: %w", path, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("menu %s is empty", path)
	}
	return New(items), nil
}

// Items はメニュー順のコピーを返す（呼び出し側が壊せないように）
func (c *Catalog) Items() []model.MenuItem {
	out := make([]model.MenuItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Catalog) FindByID(id int64) (model.MenuItem, bool) {
	it, ok := c.byID[id]
	return it, ok
}

func (c *Catalog) Len() int {
	return len(c.items)
}
