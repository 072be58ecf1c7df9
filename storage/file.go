package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileMedium 文件介质，每个键一个 JSON 文件
type FileMedium struct {
	baseDir string
	mu      sync.Mutex
}

func NewFileMedium(baseDir string) (*FileMedium, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir %q: %w", baseDir, err)
	}
	return &FileMedium{baseDir: baseDir}, nil
}

func (f *FileMedium) pathForKey(key string) string {
	return filepath.Join(f.baseDir, key+".json")
}

func (f *FileMedium) GetItem(key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.pathForKey(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, err
	}
	return string(data), true, nil
}

func (f *FileMedium) SetItem(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.WriteFile(f.pathForKey(key), []byte(value), 0644); err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}
	return nil
}

func (f *FileMedium) RemoveItem(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	err := os.Remove(f.pathForKey(key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
