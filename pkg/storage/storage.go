// Package storage keeps named test vectors in a pebble database.
//
// Each vector is stored as a pkg/codec record keyed by a KSUID, so storage
// corruption is caught by the record CRC before the checksums themselves are
// compared.
package storage

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"

	"github.com/ssargent/binkit/pkg/byteconv"
	"github.com/ssargent/binkit/pkg/checksum"
	"github.com/ssargent/binkit/pkg/codec"
	"github.com/ssargent/binkit/pkg/digest"
)

var (
	// ErrNotFound indicates no vector is stored under the requested ID.
	ErrNotFound = errors.New("storage: vector not found")

	// ErrCorrupt indicates a stored record that fails its CRC or is truncated.
	ErrCorrupt = errors.New("storage: corrupt vector record")

	// ErrChecksumMismatch indicates a vector whose input no longer produces the
	// recorded checksums.
	ErrChecksumMismatch = errors.New("storage: checksum mismatch")
)

var keyPrefix = []byte("vec/")

// sums is CRC32(4) + Adler32(4) + SHA-1(20).
const sumsSize = 8 + digest.Size

// Vector is a test input with its expected checksums.
type Vector struct {
	ID        ksuid.KSUID
	Name      string
	Input     []byte
	CRC32     uint32
	Adler32   uint32
	SHA1      [digest.Size]byte
	CreatedAt time.Time
}

// NewVector builds a vector whose expected checksums are computed from input.
func NewVector(name string, input []byte) Vector {
	return Vector{
		Name:    name,
		Input:   input,
		CRC32:   checksum.CRC32(input),
		Adler32: checksum.Adler32(input),
		SHA1:    digest.SHA1(input),
	}
}

// VectorStore persists vectors in pebble.
type VectorStore struct {
	db    *pebble.DB
	codec *codec.RecordCodec

	mu     sync.Mutex
	lastID ksuid.KSUID // highest ID handed out or found on open
}

// Open opens or creates a vector store in the directory at path.
func Open(path string) (*VectorStore, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", path, err)
	}

	s := &VectorStore{db: db, codec: codec.NewRecordCodec()}
	if s.lastID, err = s.highestID(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func keyUpperBound() []byte {
	upper := append([]byte(nil), keyPrefix...)
	upper[len(upper)-1]++
	return upper
}

func (s *VectorStore) highestID() (ksuid.KSUID, error) {
	iter, err := s.db.NewIter(&pebble.IterOptions{LowerBound: keyPrefix, UpperBound: keyUpperBound()})
	if err != nil {
		return ksuid.Nil, fmt.Errorf("storage: scan vectors: %w", err)
	}
	defer iter.Close()

	if !iter.Last() {
		return ksuid.Nil, iter.Error()
	}
	id, err := ksuid.FromBytes(iter.Key()[len(keyPrefix):])
	if err != nil {
		return ksuid.Nil, fmt.Errorf("%w: bad key %x: %v", ErrCorrupt, iter.Key(), err)
	}
	return id, nil
}

// nextID returns a new KSUID that sorts after every ID this store has handed
// out, so List keeps insertion order within the same second.
func (s *VectorStore) nextID() ksuid.KSUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := ksuid.New()
	if ksuid.Compare(id, s.lastID) <= 0 {
		id = s.lastID.Next()
	}
	s.lastID = id
	return id
}

func vectorKey(id ksuid.KSUID) []byte {
	return append(append([]byte(nil), keyPrefix...), id.Bytes()...)
}

// Put stores v under a new ID, or under v.ID when it is set, and returns the
// ID. The checksums are stored as given.
func (s *VectorStore) Put(v Vector) (ksuid.KSUID, error) {
	id := v.ID
	if id == ksuid.Nil {
		id = s.nextID()
	}

	value := make([]byte, 0, sumsSize+len(v.Input))
	value = append(value, byteconv.Uint32ToBytes(false, v.CRC32, v.Adler32)...)
	value = append(value, v.SHA1[:]...)
	value = append(value, v.Input...)

	rec, err := s.codec.Encode([]byte(v.Name), value)
	if err != nil {
		return ksuid.Nil, fmt.Errorf("storage: encode vector: %w", err)
	}
	if err := s.db.Set(vectorKey(id), rec, pebble.NoSync); err != nil {
		return ksuid.Nil, fmt.Errorf("storage: write vector: %w", err)
	}
	return id, nil
}

// Get returns the vector stored under id.
func (s *VectorStore) Get(id ksuid.KSUID) (Vector, error) {
	data, closer, err := s.db.Get(vectorKey(id))
	if errors.Is(err, pebble.ErrNotFound) {
		return Vector{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return Vector{}, fmt.Errorf("storage: read vector: %w", err)
	}
	defer closer.Close()

	// data is only valid until closer is closed.
	return s.decode(id, append([]byte(nil), data...))
}

// List returns every stored vector in ID order, which for IDs assigned by Put
// is the order the vectors were stored in.
func (s *VectorStore) List() ([]Vector, error) {
	iter, err := s.db.NewIter(&pebble.IterOptions{LowerBound: keyPrefix, UpperBound: keyUpperBound()})
	if err != nil {
		return nil, fmt.Errorf("storage: list vectors: %w", err)
	}
	defer iter.Close()

	var vectors []Vector
	for iter.First(); iter.Valid(); iter.Next() {
		id, err := ksuid.FromBytes(iter.Key()[len(keyPrefix):])
		if err != nil {
			return nil, fmt.Errorf("%w: bad key %x: %v", ErrCorrupt, iter.Key(), err)
		}
		v, err := s.decode(id, append([]byte(nil), iter.Value()...))
		if err != nil {
			return nil, err
		}
		vectors = append(vectors, v)
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("storage: list vectors: %w", err)
	}
	return vectors, nil
}

// Verify recomputes the checksums of the stored input and compares them with
// the recorded ones. The vector is returned even when verification fails.
func (s *VectorStore) Verify(id ksuid.KSUID) (Vector, error) {
	v, err := s.Get(id)
	if err != nil {
		return v, err
	}

	var bad []string
	if got := checksum.CRC32(v.Input); got != v.CRC32 {
		bad = append(bad, fmt.Sprintf("crc32 %08x != %08x", got, v.CRC32))
	}
	if got := checksum.Adler32(v.Input); got != v.Adler32 {
		bad = append(bad, fmt.Sprintf("adler32 %08x != %08x", got, v.Adler32))
	}
	if got := digest.SHA1(v.Input); got != v.SHA1 {
		bad = append(bad, fmt.Sprintf("sha1 %x != %x", got, v.SHA1))
	}
	if len(bad) > 0 {
		return v, fmt.Errorf("%w: %s: %s", ErrChecksumMismatch, v.Name, strings.Join(bad, ", "))
	}
	return v, nil
}

// Delete removes the vector stored under id. Deleting a missing ID is not an
// error.
func (s *VectorStore) Delete(id ksuid.KSUID) error {
	return s.db.Delete(vectorKey(id), pebble.NoSync)
}

// Close flushes and closes the database.
func (s *VectorStore) Close() error {
	return s.db.Close()
}

func (s *VectorStore) decode(id ksuid.KSUID, data []byte) (Vector, error) {
	rec, err := s.codec.Decode(data)
	if err != nil {
		return Vector{}, fmt.Errorf("%w: %s: %v", ErrCorrupt, id, err)
	}
	if err := rec.Validate(); err != nil {
		return Vector{}, fmt.Errorf("%w: %s: %v", ErrCorrupt, id, err)
	}
	if len(rec.Value) < sumsSize {
		return Vector{}, fmt.Errorf("%w: %s: value has %d bytes", ErrCorrupt, id, len(rec.Value))
	}

	sums := byteconv.BytesToUint32(rec.Value[:8], false)
	v := Vector{
		ID:        id,
		Name:      string(rec.Key),
		Input:     rec.Value[sumsSize:],
		CRC32:     sums[0],
		Adler32:   sums[1],
		CreatedAt: time.Unix(0, int64(rec.Timestamp)),
	}
	copy(v.SHA1[:], rec.Value[8:sumsSize])
	return v, nil
}
