// ABOUTME: File-backed store adapter
// ABOUTME: Append-only CRC-framed record log replayed on open

package store

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"os"
	"sync"

	"github.com/nainya/docstore/pkg/manifest"
)

var (
	// ErrCorrupted indicates a record with a CRC mismatch
	ErrCorrupted = errors.New("store: corrupted record")

	// ErrTruncated indicates an incomplete record at the log tail
	ErrTruncated = errors.New("store: truncated record")
)

type recordKind byte

const (
	recordDocument recordKind = 1
	recordBundle   recordKind = 2
	recordJournal  recordKind = 3
)

type recordOp byte

const (
	opAdd    recordOp = 1
	opUpdate recordOp = 2
)

// recordHeaderSize is the fixed record header.
// Layout: Kind(1) + Op(1) + Reserved(2) + PayloadLen(4)
const recordHeaderSize = 8

// encodeRecord frames a payload as [Header(8)] [Payload] [CRC32(4)]. The
// checksum covers header and payload.
func encodeRecord(kind recordKind, op recordOp, payload []byte) []byte {
	buf := make([]byte, recordHeaderSize+len(payload)+4)
	buf[0] = byte(kind)
	buf[1] = byte(op)
	// bytes 2-3 are reserved
	binary.LittleEndian.PutUint32(buf[4:8], uint32(len(payload)))
	copy(buf[recordHeaderSize:], payload)

	crc := crc32.ChecksumIEEE(buf[:recordHeaderSize+len(payload)])
	binary.LittleEndian.PutUint32(buf[recordHeaderSize+len(payload):], crc)
	return buf
}

// decodeRecord reads one record from the front of data and reports how many
// bytes it consumed.
func decodeRecord(data []byte) (recordKind, recordOp, []byte, int, error) {
	if len(data) < recordHeaderSize+4 {
		return 0, 0, nil, 0, ErrTruncated
	}
	payloadLen := int(binary.LittleEndian.Uint32(data[4:8]))
	total := recordHeaderSize + payloadLen + 4
	if len(data) < total {
		return 0, 0, nil, 0, ErrTruncated
	}

	storedCRC := binary.LittleEndian.Uint32(data[total-4 : total])
	computedCRC := crc32.ChecksumIEEE(data[:total-4])
	if storedCRC != computedCRC {
		return 0, 0, nil, 0, ErrCorrupted
	}

	payload := make([]byte, payloadLen)
	copy(payload, data[recordHeaderSize:total-4])
	return recordKind(data[0]), recordOp(data[1]), payload, total, nil
}

// FileStore persists every accepted manifest to an append-only record log
// and serves reads from an in-memory replica rebuilt on open. A corrupt or
// incomplete tail is truncated during replay; everything before it is kept.
type FileStore struct {
	mu   sync.Mutex
	mem  *MemStore
	file *os.File
}

// OpenFileStore opens or creates the record log at path and replays it.
func OpenFileStore(path string) (*FileStore, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("open store log: %w", err)
	}

	s := &FileStore{mem: NewMemStore(), file: file}
	if err := s.replay(); err != nil {
		file.Close()
		return nil, err
	}
	return s, nil
}

func (s *FileStore) replay() error {
	data, err := io.ReadAll(s.file)
	if err != nil {
		return fmt.Errorf("read store log: %w", err)
	}

	offset := 0
	for offset < len(data) {
		kind, _, payload, consumed, err := decodeRecord(data[offset:])
		if err != nil {
			// Interrupted write at the tail: drop it and keep the
			// prefix
			if err := s.file.Truncate(int64(offset)); err != nil {
				return fmt.Errorf("truncate store log: %w", err)
			}
			break
		}
		if err := s.apply(kind, payload); err != nil {
			return err
		}
		offset += consumed
	}

	if _, err := s.file.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("seek store log: %w", err)
	}
	return nil
}

func (s *FileStore) apply(kind recordKind, payload []byte) error {
	switch kind {
	case recordDocument:
		var m manifest.Document
		if err := json.Unmarshal(payload, &m); err != nil {
			return fmt.Errorf("decode document record: %w", err)
		}
		s.mem.put(kind, m.ID, m, manifest.Bundle{})
	case recordBundle, recordJournal:
		var m manifest.Bundle
		if err := json.Unmarshal(payload, &m); err != nil {
			return fmt.Errorf("decode bundle record: %w", err)
		}
		s.mem.put(kind, m.ID, manifest.Document{}, m)
	default:
		return fmt.Errorf("record kind %d: %w", kind, ErrCorrupted)
	}
	return nil
}

func (s *FileStore) append(kind recordKind, op recordOp, payload any) error {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	if _, err := s.file.Write(encodeRecord(kind, op, encoded)); err != nil {
		return fmt.Errorf("append record: %w", err)
	}
	return s.file.Sync()
}

// Close closes the underlying log file.
func (s *FileStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.Close()
}

func (s *FileStore) AddDocument(m manifest.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.mem.Document(m.ID); err == nil {
		return fmt.Errorf("document %q: %w", m.ID, ErrAlreadyExists)
	}
	if err := s.append(recordDocument, opAdd, m); err != nil {
		return err
	}
	s.mem.put(recordDocument, m.ID, m.Clone(), manifest.Bundle{})
	return nil
}

func (s *FileStore) UpdateDocument(m manifest.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.mem.Document(m.ID); err != nil {
		return err
	}
	if err := s.append(recordDocument, opUpdate, m); err != nil {
		return err
	}
	s.mem.put(recordDocument, m.ID, m.Clone(), manifest.Bundle{})
	return nil
}

func (s *FileStore) Document(id string) (manifest.Document, error) {
	return s.mem.Document(id)
}

func (s *FileStore) AddBundle(m manifest.Bundle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.mem.Bundle(m.ID); err == nil {
		return fmt.Errorf("bundle %q: %w", m.ID, ErrAlreadyExists)
	}
	if err := s.append(recordBundle, opAdd, m); err != nil {
		return err
	}
	s.mem.put(recordBundle, m.ID, manifest.Document{}, m.Clone())
	return nil
}

func (s *FileStore) UpdateBundle(m manifest.Bundle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.mem.Bundle(m.ID); err != nil {
		return err
	}
	if err := s.append(recordBundle, opUpdate, m); err != nil {
		return err
	}
	s.mem.put(recordBundle, m.ID, manifest.Document{}, m.Clone())
	return nil
}

func (s *FileStore) Bundle(id string) (manifest.Bundle, error) {
	return s.mem.Bundle(id)
}

func (s *FileStore) AddJournal(m manifest.Bundle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.mem.Journal(m.ID); err == nil {
		return fmt.Errorf("journal %q: %w", m.ID, ErrAlreadyExists)
	}
	if err := s.append(recordJournal, opAdd, m); err != nil {
		return err
	}
	s.mem.put(recordJournal, m.ID, manifest.Document{}, m.Clone())
	return nil
}

func (s *FileStore) UpdateJournal(m manifest.Bundle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.mem.Journal(m.ID); err != nil {
		return err
	}
	if err := s.append(recordJournal, opUpdate, m); err != nil {
		return err
	}
	s.mem.put(recordJournal, m.ID, manifest.Document{}, m.Clone())
	return nil
}

func (s *FileStore) Journal(id string) (manifest.Bundle, error) {
	return s.mem.Journal(id)
}

func (s *FileStore) Counts() Counts {
	return s.mem.Counts()
}
