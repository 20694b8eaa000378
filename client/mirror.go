package client

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// CartMirror はカート内容（productId→quantity）のローカルキャッシュ。
// JSONファイルに永続化するので、ネットワーク往復なしでプロセス再起動をまたいで残る。
// サーバーが常に正：Reconcile が唯一の上書き入口で、取得結果で丸ごと置き換える。
// ローカル変更は楽観的に反映し、次の Reconcile で解消される（短時間の不整合は許容）。
type CartMirror struct {
	path string

	mu    sync.Mutex
	items map[int64]int64
}

// NewCartMirror はファイルからミラーを復元する。ファイルが無ければ空で始める。
func NewCartMirror(path string) (*CartMirror, error) {
	m := &CartMirror{
		path:  path,
		items: map[int64]int64{},
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return m, nil
	}
	if err != nil {
		return nil, err
	}

	//壊れたキャッシュは空扱いで作り直す
	if err := json.Unmarshal(data, &m.items); err != nil {
		m.items = map[int64]int64{}
	}

	return m, nil
}

// Items はミラーのコピーを返す。
func (m *CartMirror) Items() map[int64]int64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[int64]int64, len(m.items))
	for k, v := range m.items {
		out[k] = v
	}
	return out
}

// Get は商品の数量を返す（無ければ0）。
func (m *CartMirror) Get(productID int64) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.items[productID]
}

// Set は楽観的なローカル更新。quantity=0 は削除。
func (m *CartMirror) Set(productID int64, quantity int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if quantity <= 0 {
		delete(m.items, productID)
	} else {
		m.items[productID] = quantity
	}
	return m.persistLocked()
}

// Remove は明細をローカルから消す。
func (m *CartMirror) Remove(productID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.items, productID)
	return m.persistLocked()
}

// Clear は注文成功後などにミラーを空にする。
func (m *CartMirror) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items = map[int64]int64{}
	return m.persistLocked()
}

// Reconcile はサーバーの正の状態で丸ごと置き換える（唯一の照合入口）。
// 空の取得結果も有効：ミラーも空になる。
func (m *CartMirror) Reconcile(server []CartLine) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := make(map[int64]int64, len(server))
	for _, line := range server {
		if line.Quantity > 0 {
			next[line.ProductID] = line.Quantity
		}
	}

	m.items = next
	return m.persistLocked()
}

// persistLocked はミラーをファイルへ書く。呼び出し側がロックを持っていること。
// tmpに書いてrenameする（途中で落ちても壊れたファイルを残さない）。
func (m *CartMirror) persistLocked() error {
	data, err := json.Marshal(m.items)
	if err != nil {
		return err
	}

	dir := filepath.Dir(m.path)
	tmp, err := os.CreateTemp(dir, ".cart-*")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), m.path)
}
