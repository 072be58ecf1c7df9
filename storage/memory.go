package storage

import "sync"

// MemoryMedium 内存介质，用于测试和一次性运行。
// Quota 大于 0 时模拟浏览器 localStorage 的容量限制。
type MemoryMedium struct {
	mu    sync.Mutex
	items map[string]string
	Quota int // 单值最大字节数，0 表示不限
}

func NewMemoryMedium() *MemoryMedium {
	return &MemoryMedium{items: map[string]string{}}
}

func (m *MemoryMedium) GetItem(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.items[key]
	return v, ok, nil
}

func (m *MemoryMedium) SetItem(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Quota > 0 && len(value) > m.Quota {
		return ErrQuotaExceeded
	}
	m.items[key] = value
	return nil
}

func (m *MemoryMedium) RemoveItem(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}
