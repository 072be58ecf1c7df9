package storage

import "errors"

// 存储介质容量不足，写入被拒绝时向调用方透传
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// 按 ID 更新时记录不存在
var ErrNotFound = errors.New("record not found")

// Medium 底层存储介质接口：同步的字符串键值存储。
// 浏览器端对应 localStorage，这里可替换为内存、文件或 SQLite 实现。
type Medium interface {
	// GetItem 读取键对应的原始 JSON 文本，键不存在时第二个返回值为 false
	GetItem(key string) (string, bool, error)
	// SetItem 整体替换键对应的值
	SetItem(key, value string) error
	// RemoveItem 删除键
	RemoveItem(key string) error
}
