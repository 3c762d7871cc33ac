package db

import (
	"context"
	"fmt"
	"sync"

	"github.com/jsphweid/ukulala/model"
)

type Memory struct {
	mu   sync.RWMutex
	docs map[model.PrefKey][]byte
}

func NewMemory() *Memory {
	return &Memory{docs: make(map[model.PrefKey][]byte)}
}

func (m *Memory) Load(ctx context.Context, key model.PrefKey) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	doc, ok := m.docs[key]
	if !ok {
		return nil, fmt.Errorf("%s/%s: %w", tuningPart(key), key.Kind, ErrNotFound)
	}
	return append([]byte(nil), doc...), nil
}

func (m *Memory) Save(ctx context.Context, key model.PrefKey, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[key] = append([]byte(nil), value...)
	return nil
}

func (m *Memory) Close() error {
	return nil
}
