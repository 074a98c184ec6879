package trending

import (
	"encoding/json"
	"errors"
	"time"

	badger "github.com/dgraph-io/badger/v4"
)

var snapshotKey = []byte("trending/latest")

// Snapshot is the last successfully computed ranking, persisted so a restart
// can serve trending before its first refresh completes.
type Snapshot struct {
	ComputedAt time.Time `json:"computed_at"`
	Items      []Item    `json:"items"`
}

// SnapshotStore keeps the latest ranking in an embedded badger database.
type SnapshotStore struct {
	db *badger.DB
}

func NewSnapshotStore(dir string) (*SnapshotStore, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &SnapshotStore{db: db}, nil
}

func (s *SnapshotStore) Save(snap Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(snapshotKey, data)
	})
}

// Load returns the persisted snapshot, or ok=false when none was ever saved.
func (s *SnapshotStore) Load() (Snapshot, bool, error) {
	var snap Snapshot
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(snapshotKey)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &snap)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return Snapshot{}, false, nil
	}
	if err != nil {
		return Snapshot{}, false, err
	}
	return snap, true, nil
}

func (s *SnapshotStore) Close() error {
	return s.db.Close()
}
