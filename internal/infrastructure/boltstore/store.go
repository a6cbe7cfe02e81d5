package boltstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Sub-buckets dentro del bucket de cada cuenta.
var (
	bucketDocuments = []byte("documents")
	bucketCustomers = []byte("customers")
	bucketProducts  = []byte("products")
)

// DB almacenamiento local clave-valor (bbolt). Cada cuenta tiene su propio
// bucket raíz y dentro de él un sub-bucket por colección; los valores son JSON.
type DB struct {
	bolt *bolt.DB
}

// Open abre (o crea) el archivo de datos.
func Open(path string) (*DB, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("boltstore: abrir %s: %w", path, err)
	}
	return &DB{bolt: db}, nil
}

// Close cierra el archivo.
func (db *DB) Close() error {
	return db.bolt.Close()
}

func accountBucket(accountID string) []byte {
	return []byte("account:" + accountID)
}

// put guarda v como JSON en accountID/collection/key.
func (db *DB) put(ctx context.Context, accountID string, collection []byte, key string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if accountID == "" || key == "" {
		return fmt.Errorf("boltstore: cuenta o clave vacía")
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("boltstore: codificar: %w", err)
	}
	return db.bolt.Update(func(tx *bolt.Tx) error {
		root, err := tx.CreateBucketIfNotExists(accountBucket(accountID))
		if err != nil {
			return err
		}
		b, err := root.CreateBucketIfNotExists(collection)
		if err != nil {
			return err
		}
		return b.Put([]byte(key), data)
	})
}

// get decodifica accountID/collection/key en v. found=false si no existe.
func (db *DB) get(ctx context.Context, accountID string, collection []byte, key string, v any) (found bool, err error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	err = db.bolt.View(func(tx *bolt.Tx) error {
		b := collectionBucket(tx, accountID, collection)
		if b == nil {
			return nil
		}
		data := b.Get([]byte(key))
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, v)
	})
	return found, err
}

// each recorre todos los valores de accountID/collection en orden de clave.
func (db *DB) each(ctx context.Context, accountID string, collection []byte, fn func(data []byte) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return db.bolt.View(func(tx *bolt.Tx) error {
		b := collectionBucket(tx, accountID, collection)
		if b == nil {
			return nil
		}
		return b.ForEach(func(_, data []byte) error {
			return fn(data)
		})
	})
}

func collectionBucket(tx *bolt.Tx, accountID string, collection []byte) *bolt.Bucket {
	root := tx.Bucket(accountBucket(accountID))
	if root == nil {
		return nil
	}
	return root.Bucket(collection)
}
