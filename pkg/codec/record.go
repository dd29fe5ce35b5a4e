package codec

import (
	"errors"
	"fmt"
	"time"

	"github.com/ssargent/binkit/pkg/byteconv"
	"github.com/ssargent/binkit/pkg/checksum"
)

// RecordHeaderSize is CRC32(4) + KeySize(4) + ValueSize(4) + Timestamp(8).
const RecordHeaderSize = 20

var (
	// ErrShortRecord indicates the buffer ends before the declared record does.
	ErrShortRecord = errors.New("codec: record data too short")

	// ErrChecksumMismatch indicates a record whose stored CRC32 does not match
	// its contents.
	ErrChecksumMismatch = errors.New("codec: record CRC32 mismatch")
)

// Record represents a key-value record with metadata for storage
type Record struct {
	CRC32     uint32 // CRC32 checksum for integrity
	KeySize   uint32 // Size of the key in bytes
	ValueSize uint32 // Size of the value in bytes
	Timestamp uint64 // Unix timestamp in nanoseconds
	Key       []byte // Key data
	Value     []byte // Value data
}

// RecordCodec handles serialization and deserialization of records
type RecordCodec struct {
	now func() time.Time
}

// NewRecordCodec creates a new record codec instance
func NewRecordCodec() *RecordCodec {
	return &RecordCodec{now: time.Now}
}

// Encode serializes a key-value pair into a binary record format
// Format: [CRC32(4)][KeySize(4)][ValueSize(4)][Timestamp(8)][Key][Value]
func (c *RecordCodec) Encode(key, value []byte) ([]byte, error) {
	r, err := c.newRecord(key, value)
	if err != nil {
		return nil, err
	}
	r.CRC32 = r.calculateCRC32()

	buf := make([]byte, 0, r.Size())
	buf = append(buf, byteconv.Uint32ToBytes(true, r.CRC32)...)
	buf = append(buf, r.header()...)
	buf = append(buf, r.Key...)
	buf = append(buf, r.Value...)

	return buf, nil
}

// Decode deserializes a binary record into a Record struct. The returned key
// and value alias data.
func (c *RecordCodec) Decode(data []byte) (*Record, error) {
	if len(data) < RecordHeaderSize {
		return nil, fmt.Errorf("%w: %d bytes, header needs %d", ErrShortRecord, len(data), RecordHeaderSize)
	}

	words := byteconv.BytesToUint32(data[:12], true)
	r := &Record{
		CRC32:     words[0],
		KeySize:   words[1],
		ValueSize: words[2],
		Timestamp: byteconv.Uint64(data[12:20], true),
	}

	total := uint64(RecordHeaderSize) + uint64(r.KeySize) + uint64(r.ValueSize)
	if uint64(len(data)) < total {
		return nil, fmt.Errorf("%w: %d < %d", ErrShortRecord, len(data), total)
	}

	keyEnd := RecordHeaderSize + int(r.KeySize)
	r.Key = data[RecordHeaderSize:keyEnd]
	r.Value = data[keyEnd : keyEnd+int(r.ValueSize)]

	return r, nil
}

// Validate checks the integrity of a record using CRC32
func (r *Record) Validate() error {
	if want := r.calculateCRC32(); r.CRC32 != want {
		return fmt.Errorf("%w: %#08x != %#08x", ErrChecksumMismatch, r.CRC32, want)
	}

	return nil
}

// Size returns the total size of the record when encoded
func (r *Record) Size() int {
	return RecordHeaderSize + len(r.Key) + len(r.Value)
}

// NewRecord creates a new record with current timestamp
func NewRecord(key, value []byte) (*Record, error) {
	return NewRecordCodec().newRecord(key, value)
}

func (c *RecordCodec) newRecord(key, value []byte) (*Record, error) {
	if uint64(len(key)) > uint64(^uint32(0)) {
		return nil, fmt.Errorf("codec: key too large: %d bytes", len(key))
	}
	if uint64(len(value)) > uint64(^uint32(0)) {
		return nil, fmt.Errorf("codec: value too large: %d bytes", len(value))
	}
	now := c.now
	if now == nil {
		now = time.Now
	}
	return &Record{
		KeySize:   uint32(len(key)),
		ValueSize: uint32(len(value)),
		Timestamp: uint64(now().UnixNano()),
		Key:       key,
		Value:     value,
	}, nil
}

// header encodes every header field after the CRC.
func (r *Record) header() []byte {
	h := byteconv.Uint32ToBytes(true, r.KeySize, r.ValueSize)
	return append(h, byteconv.Uint64ToBytes(true, r.Timestamp)...)
}

// calculateCRC32 computes CRC32 checksum for record data (excluding the CRC field itself)
func (r *Record) calculateCRC32() uint32 {
	crc := checksum.UpdateCRC32(0, r.header())
	crc = checksum.UpdateCRC32(crc, r.Key)
	return checksum.UpdateCRC32(crc, r.Value)
}
