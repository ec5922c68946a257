package store

import (
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KV is the key-value store adapter. Each key holds one JSON-serialized
// collection. Reads never fail from the caller's point of view: a missing or
// corrupt value yields the caller-supplied default. Writes that fail are
// logged and dropped; an optional observer is told about them so operators
// can notice persistent storage trouble.
//
// Every key has a writer lock. Repositories hold it across their whole
// read-modify-write cycle, so concurrent handlers queue up per collection
// instead of losing updates to each other. Last write still wins at
// collection granularity.
type KV struct {
	database     *gorm.DB
	onWriteError func(key string, err error)

	mu       sync.Mutex
	keyLocks map[string]*sync.Mutex
}

type KVOption func(*KV)

// WithWriteErrorObserver registers a callback invoked whenever a write is
// dropped. The write contract stays non-throwing either way.
func WithWriteErrorObserver(observer func(key string, err error)) KVOption {
	return func(kv *KV) {
		kv.onWriteError = observer
	}
}

func NewKV(database *gorm.DB, options ...KVOption) *KV {
	kv := &KV{
		database: database,
		keyLocks: make(map[string]*sync.Mutex),
	}
	for _, option := range options {
		option(kv)
	}
	return kv
}

type kvEntry struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Value     string    `gorm:"column:value;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

func (kvEntry) TableName() string { return "kv_entries" }

// WithLock runs fn while holding key's writer lock.
func (kv *KV) WithLock(key string, fn func()) {
	lock := kv.lockFor(key)
	lock.Lock()
	defer lock.Unlock()
	fn()
}

func (kv *KV) lockFor(key string) *sync.Mutex {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	lock, exists := kv.keyLocks[key]
	if !exists {
		lock = &sync.Mutex{}
		kv.keyLocks[key] = lock
	}
	return lock
}

// Read returns the deserialized value at key, or defaultValue when the key
// is absent or its value cannot be read or decoded. Failures are logged,
// never surfaced.
func Read[T any](kv *KV, key string, defaultValue T) T {
	var entry kvEntry
	err := kv.database.First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return defaultValue
	}
	if err != nil {
		log.Printf("kv: read %s failed: %v", key, err)
		return defaultValue
	}

	var value T
	if err := json.Unmarshal([]byte(entry.Value), &value); err != nil {
		log.Printf("kv: decode %s failed: %v", key, err)
		return defaultValue
	}
	return value
}

// Write serializes value and persists it under key. On failure the write is
// logged and dropped; the caller proceeds as if it succeeded.
func Write[T any](kv *KV, key string, value T) {
	encoded, err := json.Marshal(value)
	if err != nil {
		kv.reportWriteError(key, err)
		return
	}

	entry := kvEntry{Key: key, Value: string(encoded), UpdatedAt: time.Now()}
	err = kv.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		kv.reportWriteError(key, err)
	}
}

// Delete removes key entirely. Deleting an absent key is a no-op.
func (kv *KV) Delete(key string) {
	if err := kv.database.Delete(&kvEntry{}, "key = ?", key).Error; err != nil {
		kv.reportWriteError(key, err)
	}
}

func (kv *KV) reportWriteError(key string, err error) {
	log.Printf("kv: write %s failed: %v", key, err)
	if kv.onWriteError != nil {
		kv.onWriteError(key, err)
	}
}
