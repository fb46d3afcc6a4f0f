package store

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/xujiajun/nutsdb"
)

// Backend persists window-scoped state, one bucket per window.
type Backend interface {
	Put(bucket string, key []byte, value []byte) error
	//Load returns the whole persisted content, bucket by bucket
	Load() (map[string]map[string][]byte, error)
	Delete(bucket string) error
	Close() error
}

// memory only for test
type memory struct {
	mutex   sync.Mutex
	buckets map[string]map[string][]byte
}

func (m *memory) Put(bucket string, key []byte, value []byte) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.buckets[bucket] == nil {
		m.buckets[bucket] = map[string][]byte{}
	}
	m.buckets[bucket][string(key)] = value
	return nil
}

func (m *memory) Load() (map[string]map[string][]byte, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	loaded := map[string]map[string][]byte{}
	for bucket, entries := range m.buckets {
		loaded[bucket] = map[string][]byte{}
		for key, value := range entries {
			loaded[bucket][key] = value
		}
	}
	return loaded, nil
}

func (m *memory) Delete(bucket string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	delete(m.buckets, bucket)
	return nil
}

func (m *memory) Close() error { return nil }

func NewMemoryBackend() Backend {
	return &memory{buckets: map[string]map[string][]byte{}}
}

type fs struct {
	db *nutsdb.DB
}

func (f *fs) Put(bucket string, key []byte, value []byte) error {
	return f.db.Update(func(tx *nutsdb.Tx) error {
		return tx.Put(bucket, key, value, 0)
	})
}

func (f *fs) Load() (map[string]map[string][]byte, error) {
	loaded := map[string]map[string][]byte{}
	err := f.db.View(func(tx *nutsdb.Tx) error {
		var buckets []string
		if err := tx.IterateBuckets(nutsdb.DataStructureBPTree, "*", func(bucket string) bool {
			buckets = append(buckets, bucket)
			return true
		}); err != nil {
			return errors.WithMessage(err, "unable to iterate buckets, the state maybe corrupted")
		}
		for _, bucket := range buckets {
			entries, err := tx.GetAll(bucket)
			if err != nil {
				return errors.WithMessagef(err, "failed to get state of bucket %s", bucket)
			}
			loaded[bucket] = map[string][]byte{}
			for _, entry := range entries {
				loaded[bucket][string(entry.Key)] = entry.Value
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return loaded, nil
}

func (f *fs) Delete(bucket string) error {
	return f.db.Update(func(tx *nutsdb.Tx) error {
		return tx.DeleteBucket(nutsdb.DataStructureBPTree, bucket)
	})
}

func (f *fs) Close() error {
	return f.db.Close()
}

func NewFSBackend(dir string) (Backend, error) {
	opts := nutsdb.DefaultOptions
	opts.Dir = dir
	db, err := nutsdb.Open(opts)
	if err != nil {
		return nil, err
	}
	return &fs{db: db}, nil
}
