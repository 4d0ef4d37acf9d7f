package bboltstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-faster/errors"
	"go.etcd.io/bbolt"

	"github.com/dwikikusuma/sleekshop/internal/cart/domain"
)

const bucketName = "storefront"

// StorageKey is the fixed key the serialized cart lives under, kept from the
// original browser build of the shop.
const StorageKey = "sleekshop_cart"

// Store persists the cart as a JSON array under a single fixed key in a
// bbolt file, the embedded stand-in for per-origin browser storage.
type Store struct {
	db *bbolt.DB
}

// Open opens (or creates) the storage file at path.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrap(err, "open storage db")
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "create bucket")
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads the stored line-item sequence. A missing value yields an empty
// sequence; a malformed one is an error the caller downgrades to empty.
func (s *Store) Load(ctx context.Context) ([]domain.LineItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var items []domain.LineItem
	err := s.db.View(func(tx *bbolt.Tx) error {
		payload := tx.Bucket([]byte(bucketName)).Get([]byte(StorageKey))
		if payload == nil {
			return nil
		}
		if err := json.Unmarshal(payload, &items); err != nil {
			return errors.Wrap(err, "unmarshal cart")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Save writes the full line-item sequence, replacing the previous value.
func (s *Store) Save(ctx context.Context, items []domain.LineItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if items == nil {
		items = []domain.LineItem{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return errors.Wrap(err, "marshal cart")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(StorageKey), payload)
	})
}
