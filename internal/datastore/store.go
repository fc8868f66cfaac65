package datastore

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"sales-insight-backend/internal/model"
)

var ErrNotObject = errors.New("sales document root must be a JSON object")

// Fingerprint identifies the exact bytes a store was loaded from.
type Fingerprint struct {
	Size    int64
	ModTime time.Time
	SHA256  string
}

// JSONStore holds the sales document read once at startup. Nothing mutates it
// after Load returns, so it is safe for concurrent readers without locking.
type JSONStore struct {
	path        string
	document    json.RawMessage
	rawReps     []json.RawMessage
	reps        []model.SalesRep
	loadedAt    time.Time
	fingerprint Fingerprint
}

type document struct {
	SalesReps []json.RawMessage `json:"salesReps"`
}

// Load reads and validates the document at path. Any error here means the
// process must not start serving.
func Load(path string) (*JSONStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Error().Err(err).Str("file", path).Msg("Failed to read sales data file")
		return nil, fmt.Errorf("read sales data %s: %w", path, err)
	}

	store, err := parse(data)
	if err != nil {
		log.Error().Err(err).Str("file", path).Msg("Failed to parse sales data file")
		return nil, fmt.Errorf("parse sales data %s: %w", path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat sales data %s: %w", path, err)
	}
	store.path = path
	store.fingerprint = fingerprintOf(info, data)

	log.Info().
		Str("file", path).
		Int("sales_reps", len(store.reps)).
		Int64("bytes", info.Size()).
		Msg("Loaded sales data")
	return store, nil
}

func parse(data []byte) (*JSONStore, error) {
	trimmed := bytes.TrimSpace(data)
	if !json.Valid(trimmed) {
		return nil, errors.New("invalid JSON")
	}
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, ErrNotObject
	}

	var doc document
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("decode salesReps: %w", err)
	}

	rawReps := doc.SalesReps
	if rawReps == nil {
		rawReps = []json.RawMessage{}
	}
	reps := make([]model.SalesRep, len(rawReps))
	for i, raw := range rawReps {
		if err := json.Unmarshal(raw, &reps[i]); err != nil {
			return nil, fmt.Errorf("decode salesReps[%d]: %w", i, err)
		}
	}

	return &JSONStore{
		document: json.RawMessage(trimmed),
		rawReps:  rawReps,
		reps:     reps,
		loadedAt: time.Now().UTC(),
	}, nil
}

func fingerprintOf(info os.FileInfo, data []byte) Fingerprint {
	sum := sha256.Sum256(data)
	return Fingerprint{
		Size:    info.Size(),
		ModTime: info.ModTime(),
		SHA256:  hex.EncodeToString(sum[:]),
	}
}

func (s *JSONStore) Document() json.RawMessage       { return s.document }
func (s *JSONStore) RawSalesReps() []json.RawMessage { return s.rawReps }
func (s *JSONStore) SalesReps() []model.SalesRep     { return s.reps }
func (s *JSONStore) LoadedAt() time.Time             { return s.loadedAt }
func (s *JSONStore) Path() string                    { return s.path }
func (s *JSONStore) Fingerprint() Fingerprint        { return s.fingerprint }

// Drifted reports whether the file on disk no longer matches what was loaded.
// The store itself is never reloaded.
func (s *JSONStore) Drifted() (bool, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return false, fmt.Errorf("stat sales data %s: %w", s.path, err)
	}
	if info.Size() == s.fingerprint.Size && info.ModTime().Equal(s.fingerprint.ModTime) {
		return false, nil
	}

	// Size or mtime moved; only the content hash decides.
	data, err := os.ReadFile(s.path)
	if err != nil {
		return false, fmt.Errorf("read sales data %s: %w", s.path, err)
	}
	return fingerprintOf(info, data).SHA256 != s.fingerprint.SHA256, nil
}
