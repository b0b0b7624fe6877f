// Package boltseq provides a tuples.Sequence persisted in a bolt bucket.
//
// Every Iterate call opens a fresh read transaction over the bucket,
// so the sequence can be traversed any number of times and
// composes under iterators.Product like any in-memory sequence,
// at the price of the cursors doing real disk I/O.
package boltseq

import (
	"encoding/binary"

	"github.com/boltdb/bolt"

	"github.com/iterkit/tuples"
	"github.com/iterkit/tuples/iterators"
)

// New returns a Sequence stored in the named bucket of the given database.
// Values are kept in insertion order and encoded with the gob codec.
func New[T any](db *bolt.DB, bucket string) *Sequence[T] {
	return NewWithCodec[T](db, bucket, GobCodec{})
}

// NewWithCodec returns a Sequence that encodes its values with the given codec.
func NewWithCodec[T any](db *bolt.DB, bucket string, codec Codec) *Sequence[T] {
	return &Sequence[T]{db: db, bucket: []byte(bucket), codec: codec}
}

type Sequence[T any] struct {
	db     *bolt.DB
	bucket []byte
	codec  Codec
}

// Append stores one more value at the end of the sequence.
func (s *Sequence[T]) Append(v T) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(s.bucket)
		if err != nil {
			return err
		}

		key, err := bucket.NextSequence()
		if err != nil {
			return err
		}

		data, err := s.codec.Marshal(v)
		if err != nil {
			return err
		}

		return bucket.Put(keyBytes(key), data)
	})
}

// Len returns the number of values stored in the sequence.
func (s *Sequence[T]) Len() (int, error) {
	var total int
	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(s.bucket)
		if bucket == nil {
			return nil
		}
		total = bucket.Stats().KeyN
		return nil
	})
	return total, err
}

const errReceiverHangup tuples.Error = "boltseq: receiver hangup"

// Iterate opens a fresh read transaction and streams the stored values
// through a pipe in insertion order.
// Closing the returned iterator releases the transaction.
func (s *Sequence[T]) Iterate() tuples.Iterator[T] {
	in, out := iterators.Pipe[T]()

	go func() {
		defer in.Close()

		err := s.db.View(func(tx *bolt.Tx) error {
			bucket := tx.Bucket(s.bucket)
			if bucket == nil {
				// nothing was appended yet, the sequence is empty
				return nil
			}

			return bucket.ForEach(func(key, data []byte) error {
				var v T
				if err := s.codec.Unmarshal(data, &v); err != nil {
					return err
				}
				if !in.Value(v) {
					return errReceiverHangup
				}
				return nil
			})
		})

		if err != nil && err != errReceiverHangup {
			in.Error(err)
		}
	}()

	return out
}

func keyBytes(n uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, n)
	return key
}
