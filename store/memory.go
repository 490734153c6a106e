package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/core"
)

// MemoryStore 是内存实现的存储，用于测试/开发/原型。
// 同时实现衣柜/偏好/评分三个领域接口和通用 KV 接口。
// 支持 TTL（过期时间），但进程重启后数据丢失。
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string][]core.ClothingItem // userID -> closet
	prefs map[string]*core.Preferences   // userID -> preferences
	rated []core.RatedOutfit             // all users, append order
	data  map[string]*entry
	ttl   map[string]time.Time
	clean *time.Ticker
}

type entry struct {
	value []byte
	ttl   *time.Time
}

func NewMemoryStore() *MemoryStore {
	ms := &MemoryStore{
		items: make(map[string][]core.ClothingItem),
		prefs: make(map[string]*core.Preferences),
		data:  make(map[string]*entry),
		ttl:   make(map[string]time.Time),
		clean: time.NewTicker(10 * time.Second),
	}
	go ms.cleanup()
	return ms
}

func (m *MemoryStore) Name() string { return "memory" }

// --- 领域数据写入（测试/原型用） ---

// AddItems 向某位用户的衣柜追加衣物。
func (m *MemoryStore) AddItems(userID string, items ...core.ClothingItem) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[userID] = append(m.items[userID], items...)
}

// SetPreferences 设置某位用户的偏好。
func (m *MemoryStore) SetPreferences(userID string, prefs *core.Preferences) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prefs[userID] = prefs
}

// AddRatedOutfits 追加历史穿搭记录。
func (m *MemoryStore) AddRatedOutfits(outfits ...core.RatedOutfit) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rated = append(m.rated, outfits...)
}

// --- core.ClosetStore ---

func (m *MemoryStore) ListItemsOwnedBy(_ context.Context, userID string) ([]core.ClothingItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]core.ClothingItem(nil), m.items[userID]...), nil
}

// --- core.PreferenceStore ---

func (m *MemoryStore) GetPreferences(_ context.Context, userID string) (*core.Preferences, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.prefs[userID], nil
}

// --- core.RatingStore ---

func (m *MemoryStore) ListRatedOutfits(_ context.Context, userID string) ([]core.RatedOutfit, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]core.RatedOutfit, 0)
	for _, r := range m.rated {
		if r.UserID == userID && r.Rating != nil {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *MemoryStore) ListAllRatedOutfits(_ context.Context, limit int) ([]core.RatedOutfit, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]core.RatedOutfit, 0, len(m.rated))
	for _, r := range m.rated {
		if r.Rating != nil {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// --- core.Store（KV，缓存用） ---

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.data[key]
	if !ok {
		return nil, core.ErrStoreNotFound
	}
	if e.ttl != nil && time.Now().After(*e.ttl) {
		return nil, core.ErrStoreNotFound
	}
	return e.value, nil
}

func (m *MemoryStore) Set(_ context.Context, key string, value []byte, ttl ...int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := &entry{value: value}
	if len(ttl) > 0 && ttl[0] > 0 {
		expire := time.Now().Add(time.Duration(ttl[0]) * time.Second)
		e.ttl = &expire
		m.ttl[key] = expire
	}
	m.data[key] = e
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	delete(m.ttl, key)
	return nil
}

func (m *MemoryStore) Close() error {
	if m.clean != nil {
		m.clean.Stop()
	}
	return nil
}

func (m *MemoryStore) cleanup() {
	for range m.clean.C {
		m.mu.Lock()
		now := time.Now()
		for k, expire := range m.ttl {
			if now.After(expire) {
				delete(m.data, k)
				delete(m.ttl, k)
			}
		}
		m.mu.Unlock()
	}
}

var (
	_ core.ClosetStore     = (*MemoryStore)(nil)
	_ core.PreferenceStore = (*MemoryStore)(nil)
	_ core.RatingStore     = (*MemoryStore)(nil)
	_ core.Store           = (*MemoryStore)(nil)
)
