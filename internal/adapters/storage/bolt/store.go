package bolt

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"kitty-registry/internal/domain/kitties"

	"go.etcd.io/bbolt"
)

const (
	kittiesBucket = "kitties"
	eventsBucket  = "kitty_events"
	metaBucket    = "meta"

	nextKittyIDKey = "next_kitty_id"
)

// Store es el archivo BoltDB compartido por los repos de este paquete.
// Un solo archivo, tres buckets: kitties, kitty_events y meta (contador).
type Store struct {
	db *bbolt.DB
}

// Open abre (o crea) el archivo BoltDB en el path indicado.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	db, err := bbolt.Open(cleanPath, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open storage db: %w", err)
	}

	store := &Store{db: db}
	if err := store.ensureBuckets(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close cierra la base BoltDB subyacente.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) ensureBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range []string{kittiesBucket, eventsBucket, metaBucket} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return fmt.Errorf("create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}

// Dentro de kitties y kitty_events hay un sub-bucket por owner: el ID de
// usuario es texto libre (el `sub` de un JWT puede traer `/` o lo que sea),
// así que nunca se incrusta en una clave compuesta. El particionado por
// owner lo da la jerarquía de buckets, no un separador.

// ownerBucket devuelve el sub-bucket del owner para lectura; nil si el
// owner todavía no tiene registros.
func ownerBucket(tx *bbolt.Tx, top, ownerUserID string) (*bbolt.Bucket, error) {
	bucket := tx.Bucket([]byte(top))
	if bucket == nil {
		return nil, fmt.Errorf("%s bucket is missing", top)
	}
	return bucket.Bucket([]byte(ownerUserID)), nil
}

// ensureOwnerBucket crea (si hace falta) el sub-bucket del owner para escritura.
func ensureOwnerBucket(tx *bbolt.Tx, top, ownerUserID string) (*bbolt.Bucket, error) {
	bucket := tx.Bucket([]byte(top))
	if bucket == nil {
		return nil, fmt.Errorf("%s bucket is missing", top)
	}
	sub, err := bucket.CreateBucketIfNotExists([]byte(ownerUserID))
	if err != nil {
		return nil, fmt.Errorf("create owner bucket: %w", err)
	}
	return sub, nil
}

// kittyIDKey es %08x: el hex de ancho fijo mantiene el orden léxico del
// bucket igual al orden numérico de los IDs.
func kittyIDKey(id kitties.KittyID) []byte {
	return []byte(fmt.Sprintf("%08x", uint32(id)))
}

func eventKey(kittyID uint32, eventID string) []byte {
	return []byte(fmt.Sprintf("%08x/%s", kittyID, eventID))
}

func eventKittyPrefix(kittyID uint32) []byte {
	return []byte(fmt.Sprintf("%08x/", kittyID))
}
