package store

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	bolt "go.etcd.io/bbolt"

	"github.com/robertlopezdev/queryapi/pkg/types"
)

var (
	// Bucket names
	bucketStreamVersions = []byte("stream_versions")
	bucketLastPublished  = []byte("last_published_blocks")
	bucketStreamBuffers  = []byte("stream_buffers")
	bucketAllowlist      = []byte("allowlist")
)

// AllowlistEntry records one account's migration state. Only accounts that
// have been migrated (and have not failed migration) are visible to the
// synchronisation passes.
type AllowlistEntry struct {
	AccountID       types.AccountID `json:"account_id"`
	Migrated        bool            `json:"migrated"`
	MigrationFailed bool            `json:"failed"`
	V1Acknowledged  bool            `json:"v1_ack"`
}

// BoltStore persists per-indexer progress state in BoltDB
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore opens (or creates) the coordinator database in dataDir
func NewBoltStore(dataDir string) (*BoltStore, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	dbPath := filepath.Join(dataDir, "coordinator.db")

	db, err := bolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		buckets := [][]byte{
			bucketStreamVersions,
			bucketLastPublished,
			bucketStreamBuffers,
			bucketAllowlist,
		}

		for _, bucket := range buckets {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
			}
		}
		return nil
	})

	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

// Close closes the database
func (s *BoltStore) Close() error {
	return s.db.Close()
}

// streamKey builds the per-indexer key shared by all stream buckets.
func streamKey(config types.IndexerConfig) []byte {
	return []byte(fmt.Sprintf("%s/%s", config.AccountID, config.FunctionName))
}

func encodeHeight(height uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, height)
	return buf
}

// GetStreamVersion returns the recorded version for the indexer's stream.
// The bool is false when no version has ever been recorded.
func (s *BoltStore) GetStreamVersion(config types.IndexerConfig) (uint64, bool, error) {
	var version uint64
	var found bool
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketStreamVersions).Get(streamKey(config))
		if data == nil {
			return nil
		}
		if len(data) != 8 {
			return fmt.Errorf("corrupt stream version for %s: %d bytes", streamKey(config), len(data))
		}
		version = binary.BigEndian.Uint64(data)
		found = true
		return nil
	})
	if err != nil {
		return 0, false, err
	}
	return version, found, nil
}

// SetStreamVersion records the indexer's current registry version as the
// version its stream was last started with
func (s *BoltStore) SetStreamVersion(config types.IndexerConfig) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketStreamVersions).Put(streamKey(config), encodeHeight(config.RegistryVersion()))
	})
}

// SetMigratedStreamVersion marks the indexer's stream as freshly migrated
// from the legacy system by recording the reserved sentinel version
func (s *BoltStore) SetMigratedStreamVersion(config types.IndexerConfig, sentinel uint64) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketStreamVersions).Put(streamKey(config), encodeHeight(sentinel))
	})
}

// GetLastPublishedBlock returns the height of the last block the indexer's
// stream published. The bool is false when the stream has published nothing.
func (s *BoltStore) GetLastPublishedBlock(config types.IndexerConfig) (uint64, bool, error) {
	var height uint64
	var found bool
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketLastPublished).Get(streamKey(config))
		if data == nil {
			return nil
		}
		if len(data) != 8 {
			return fmt.Errorf("corrupt last published block for %s: %d bytes", streamKey(config), len(data))
		}
		height = binary.BigEndian.Uint64(data)
		found = true
		return nil
	})
	if err != nil {
		return 0, false, err
	}
	return height, found, nil
}

// SetLastPublishedBlock records the height of the last published block.
// Written by the block streamer side of the shared database; the coordinator
// only reads it.
func (s *BoltStore) SetLastPublishedBlock(config types.IndexerConfig, height uint64) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketLastPublished).Put(streamKey(config), encodeHeight(height))
	})
}

// ClearBlockStream drops every buffered entry for the indexer's stream.
// Buffer keys are prefixed with the stream key so a cursor range scan covers
// exactly one indexer.
func (s *BoltStore) ClearBlockStream(config types.IndexerConfig) error {
	prefix := append(streamKey(config), '/')
	return s.db.Update(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketStreamBuffers).Cursor()
		for k, _ := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = c.Next() {
			if err := c.Delete(); err != nil {
				return err
			}
		}
		return nil
	})
}

// AppendToBlockStream buffers one entry for the indexer's stream under a
// monotonically increasing sequence number
func (s *BoltStore) AppendToBlockStream(config types.IndexerConfig, entry []byte) error {
	prefix := append(streamKey(config), '/')
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketStreamBuffers)
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		key := append(prefix, encodeHeight(seq)...)
		return b.Put(key, entry)
	})
}

// BlockStreamLength returns the number of buffered entries for the indexer's
// stream
func (s *BoltStore) BlockStreamLength(config types.IndexerConfig) (int, error) {
	prefix := append(streamKey(config), '/')
	var count int
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketStreamBuffers).Cursor()
		for k, _ := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = c.Next() {
			count++
		}
		return nil
	})
	return count, err
}

// GetAllowlist returns every account's migration state
func (s *BoltStore) GetAllowlist() ([]AllowlistEntry, error) {
	var entries []AllowlistEntry
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketAllowlist).ForEach(func(k, v []byte) error {
			var entry AllowlistEntry
			if err := json.Unmarshal(v, &entry); err != nil {
				return fmt.Errorf("corrupt allowlist entry %s: %w", k, err)
			}
			entries = append(entries, entry)
			return nil
		})
	})
	return entries, err
}

// SetAllowlistEntry creates or replaces one account's migration state
func (s *BoltStore) SetAllowlistEntry(entry AllowlistEntry) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		data, err := json.Marshal(entry)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketAllowlist).Put([]byte(entry.AccountID), data)
	})
}
