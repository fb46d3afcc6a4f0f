package store

import (
	"bytes"
	"encoding/gob"

	"github.com/pkg/errors"

	"github.com/streamward/streamward/log"
	"github.com/streamward/streamward/window"
)

// Windowed is keyed state scoped by window: every window owns one bucket
// in the backend and every state key one gob-encoded entry in it.
// ClearForWindow removes the whole bucket, which makes it the state
// cleaner of a stateful runner. Not safe for concurrent use, the caller
// serializes access per partition.
type Windowed[K comparable, V any] struct {
	backend Backend
	logger  log.Logger
	state   map[string]map[K]V
}

func NewWindowed[K comparable, V any](backend Backend, logger log.Logger) (*Windowed[K, V], error) {
	loaded, err := backend.Load()
	if err != nil {
		return nil, errors.WithMessage(err, "failed to restore windowed state")
	}
	state := map[string]map[K]V{}
	for bucket, entries := range loaded {
		state[bucket] = map[K]V{}
		for rawKey, rawValue := range entries {
			var key K
			if err := gob.NewDecoder(bytes.NewReader([]byte(rawKey))).Decode(&key); err != nil {
				return nil, errors.WithMessagef(err, "failed to decode state key in bucket %s", bucket)
			}
			var value V
			if err := gob.NewDecoder(bytes.NewReader(rawValue)).Decode(&value); err != nil {
				return nil, errors.WithMessagef(err, "failed to decode state value in bucket %s", bucket)
			}
			state[bucket][key] = value
		}
	}
	return &Windowed[K, V]{
		backend: backend,
		logger:  logger.Named("store"),
		state:   state,
	}, nil
}

func (s *Windowed[K, V]) Load(w window.Window, key K) (V, bool) {
	value, ok := s.state[w.Key()][key]
	return value, ok
}

func (s *Windowed[K, V]) Store(w window.Window, key K, value V) error {
	bucket := w.Key()
	if s.state[bucket] == nil {
		s.state[bucket] = map[K]V{}
	}
	s.state[bucket][key] = value

	var keyBuffer, valueBuffer bytes.Buffer
	if err := gob.NewEncoder(&keyBuffer).Encode(&key); err != nil {
		return errors.WithMessage(err, "failed to encode state key to gob bytes")
	}
	if err := gob.NewEncoder(&valueBuffer).Encode(&value); err != nil {
		return errors.WithMessage(err, "failed to encode state value to gob bytes")
	}
	return s.backend.Put(bucket, keyBuffer.Bytes(), valueBuffer.Bytes())
}

// Windows reports how many windows currently hold state.
func (s *Windowed[K, V]) Windows() int {
	return len(s.state)
}

// ClearForWindow removes all state scoped to the window. Clearing a
// window that holds no state is a no-op.
func (s *Windowed[K, V]) ClearForWindow(w window.Window) {
	bucket := w.Key()
	if _, ok := s.state[bucket]; !ok {
		return
	}
	delete(s.state, bucket)
	if err := s.backend.Delete(bucket); err != nil {
		s.logger.Warnw("failed to clear persisted window state", "window", w.String(), "error", err)
	}
}
