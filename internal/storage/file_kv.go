package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileKV keeps every key in one JSON object on disk. Writes go through a
// temp file and rename.
type FileKV struct {
	path string
}

func NewFileKV(path string) *FileKV {
	return &FileKV{path: strings.TrimSpace(path)}
}

func (f *FileKV) Close() error { return nil }

func (f *FileKV) Get(_ context.Context, key string) (string, bool, error) {
	items, err := f.read()
	if err != nil {
		return "", false, err
	}
	v, ok := items[key]
	return v, ok, nil
}

// Set overwrites key. A file that cannot be decoded is replaced rather than
// blocking every later write.
func (f *FileKV) Set(_ context.Context, key, value string) error {
	items, err := f.readForWrite()
	if err != nil {
		return err
	}
	items[key] = value
	return f.write(items)
}

func (f *FileKV) Remove(_ context.Context, key string) error {
	items, err := f.readForWrite()
	if err != nil {
		return err
	}
	if _, ok := items[key]; !ok {
		return nil
	}
	delete(items, key)
	return f.write(items)
}

// UpdatedAt reports the file's modification time when key is present.
func (f *FileKV) UpdatedAt(ctx context.Context, key string) (time.Time, bool, error) {
	if _, ok, err := f.Get(ctx, key); err != nil || !ok {
		return time.Time{}, false, err
	}
	info, err := os.Stat(f.path)
	if err != nil {
		return time.Time{}, false, err
	}
	return info.ModTime(), true, nil
}

func (f *FileKV) read() (map[string]string, error) {
	out := make(map[string]string)
	if f.path == "" {
		return out, nil
	}
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return out, nil
		}
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}
	if strings.TrimSpace(string(raw)) == "" {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrCorruptSnapshot, f.path, err)
	}
	return out, nil
}

func (f *FileKV) readForWrite() (map[string]string, error) {
	items, err := f.read()
	if errors.Is(err, ErrCorruptSnapshot) {
		return make(map[string]string), nil
	}
	return items, err
}

func (f *FileKV) write(items map[string]string) error {
	if f.path == "" {
		return nil
	}
	dir := filepath.Dir(f.path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	payload, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, append(payload, '\n'), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}
