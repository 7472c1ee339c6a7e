package memory

import (
	"bytes"
	"context"
	"io"
	"sync"
	"time"

	"github.com/tendant/campus-content/pkg/campus/media"
)

// Store is an in-memory implementation of media.Store
type Store struct {
	mu      sync.RWMutex
	objects map[string]object
}

type object struct {
	data        []byte
	contentType string
	updatedAt   time.Time
}

// New creates a new in-memory media store
func New() *Store {
	return &Store{objects: make(map[string]object)}
}

func (s *Store) Put(ctx context.Context, key, contentType string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = object{data: data, contentType: contentType, updatedAt: time.Now().UTC()}
	return nil
}

func (s *Store) Get(ctx context.Context, key string) (io.ReadCloser, *media.Object, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	obj, ok := s.objects[key]
	if !ok {
		return nil, nil, media.ErrNotFound
	}
	meta := &media.Object{
		Key:         key,
		ContentType: obj.contentType,
		Size:        int64(len(obj.data)),
		UpdatedAt:   obj.updatedAt,
	}
	return io.NopCloser(bytes.NewReader(obj.data)), meta, nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.objects[key]; !ok {
		return media.ErrNotFound
	}
	delete(s.objects, key)
	return nil
}
