package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sandeepkv93/todomatic/internal/model"
)

const TasksKey = "tasks"

var ErrCorruptSnapshot = errors.New("storage: corrupt task snapshot")

type timestamped interface {
	UpdatedAt(ctx context.Context, key string) (time.Time, bool, error)
}

// Snapshots reads and writes the serialized task list under TasksKey.
type Snapshots struct {
	kv KV
}

func NewSnapshots(kv KV) *Snapshots {
	return &Snapshots{kv: kv}
}

// Load returns the stored tasks. A missing or empty value yields an empty
// list. Undecodable data yields an empty list and ErrCorruptSnapshot; the
// stored value is left untouched.
func (s *Snapshots) Load(ctx context.Context) ([]model.Task, error) {
	raw, ok, err := s.kv.Get(ctx, TasksKey)
	if err != nil {
		return []model.Task{}, err
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return []model.Task{}, nil
	}
	var tasks []model.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		return []model.Task{}, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}

func (s *Snapshots) Save(ctx context.Context, tasks []model.Task) error {
	if tasks == nil {
		tasks = []model.Task{}
	}
	payload, err := json.Marshal(tasks)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, TasksKey, string(payload))
}

func (s *Snapshots) Clear(ctx context.Context) error {
	return s.kv.Remove(ctx, TasksKey)
}

// SavedAt reports when the snapshot was last written, for backends that
// track it.
func (s *Snapshots) SavedAt(ctx context.Context) (time.Time, bool, error) {
	ts, ok := s.kv.(timestamped)
	if !ok {
		return time.Time{}, false, nil
	}
	return ts.UpdatedAt(ctx, TasksKey)
}
