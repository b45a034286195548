package newsletter

import (
	"bytes"
	"context"
	"encoding/gob"
	"time"

	bolt "go.etcd.io/bbolt"

	siteerrors "github.com/petitemaison/epouvante/internal/errors"
)

var subscribersBucket = []byte("subscribers")

// BoltStore keeps subscribers in a bbolt database file, one gob-encoded
// record per email key.
type BoltStore struct {
	db *bolt.DB
}

// OpenBolt opens (creating if needed) the database at path.
func OpenBolt(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, siteerrors.New("E141").WithDetail(path).Wrap(err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(subscribersBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, siteerrors.New("E141").WithDetail(path).Wrap(err)
	}

	return &BoltStore{db: db}, nil
}

func (b *BoltStore) Add(_ context.Context, s Subscriber) (bool, error) {
	key := []byte(Normalize(s.Email))
	s.Email = string(key)

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(s); err != nil {
		return false, siteerrors.New("E142").Wrap(err)
	}

	added := false
	err := b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(subscribersBucket)
		if bucket.Get(key) != nil {
			return nil
		}
		added = true
		return bucket.Put(key, buf.Bytes())
	})
	if err != nil {
		return false, siteerrors.New("E142").Wrap(err)
	}
	return added, nil
}

func (b *BoltStore) List(_ context.Context) ([]Subscriber, error) {
	var out []Subscriber

	err := b.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(subscribersBucket).ForEach(func(_, v []byte) error {
			var s Subscriber
			if err := gob.NewDecoder(bytes.NewReader(v)).Decode(&s); err != nil {
				return err
			}
			out = append(out, s)
			return nil
		})
	})
	return out, err
}

func (b *BoltStore) Close() error {
	return b.db.Close()
}
