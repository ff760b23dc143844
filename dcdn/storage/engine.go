package storage

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"dcdn-backend/dcdn/fileid"
	"dcdn-backend/internal/models"
)

const (
	// DefaultMaxFileSize is the upload ceiling when none is configured.
	DefaultMaxFileSize = 100_000_000

	// Attempts before giving up when a generated id is already taken. A
	// collision in a 64-bit hex space means something is badly wrong with
	// the randomness source, so the bound is deliberately small.
	idAttempts = 5
)

// Engine owns the content store, the metadata store and the owner index.
// A single lock guards all three, so upload and delete are atomic across
// the triple and readers never observe a partially updated state.
type Engine struct {
	mu      sync.RWMutex
	content *contentStore
	meta    *metadataStore
	owners  *ownerIndex

	ids         *fileid.Generator
	now         func() time.Time
	maxFileSize int64
}

func NewEngine(maxFileSize int64) *Engine {
	return NewEngineWithDeps(maxFileSize, fileid.NewGenerator(), time.Now)
}

// NewEngineWithDeps injects the id generator and clock, for tests.
func NewEngineWithDeps(maxFileSize int64, ids *fileid.Generator, now func() time.Time) *Engine {
	if maxFileSize <= 0 {
		maxFileSize = DefaultMaxFileSize
	}
	return &Engine{
		content:     newContentStore(),
		meta:        newMetadataStore(),
		owners:      newOwnerIndex(),
		ids:         ids,
		now:         now,
		maxFileSize: maxFileSize,
	}
}

// Upload validates the payload, assigns a fresh id and inserts metadata,
// content and the owner index entry in one step. On any error nothing is
// inserted.
func (e *Engine) Upload(owner, name, contentType string, data []byte, isPublic bool) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyPayload
	}
	if int64(len(data)) > e.maxFileSize {
		return "", fmt.Errorf("%w of %d bytes", ErrPayloadTooLarge, e.maxFileSize)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	id, err := e.freshID()
	if err != nil {
		return "", err
	}

	stored := make([]byte, len(data))
	copy(stored, data)

	e.meta.put(models.FileRecord{
		ID:            id,
		Name:          name,
		Size:          int64(len(data)),
		ContentType:   contentType,
		UploadTime:    e.now(),
		Owner:         owner,
		DownloadCount: 0,
		ReplicaCount:  models.DefaultReplicaCount,
		IsPublic:      isPublic,
	})
	e.content.put(id, stored)
	e.owners.add(owner, id)

	return id, nil
}

// freshID draws ids until one is unused. Caller must hold the write lock.
func (e *Engine) freshID() (string, error) {
	for attempt := 0; attempt < idAttempts; attempt++ {
		id, err := e.ids.Generate()
		if err != nil {
			return "", err
		}
		if _, taken := e.meta.get(id); !taken {
			return id, nil
		}
		log.Warn().Str("id", id).Int("attempt", attempt+1).Msg("file id collision, retrying")
	}
	return "", fmt.Errorf("failed to generate a unique file id after %d attempts", idAttempts)
}

// Metadata returns the record for id. Metadata reads are not gated on
// visibility; only content fetches are.
func (e *Engine) Metadata(id string) (models.FileRecord, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	rec, ok := e.meta.get(id)
	if !ok {
		return models.FileRecord{}, ErrNotFound
	}
	return rec, nil
}

// Download returns the file content if the caller may read it, bumping the
// download counter. Private files are readable only by their owner.
func (e *Engine) Download(id, caller string) ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	rec, ok := e.meta.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	if !rec.IsPublic && rec.Owner != caller {
		return nil, ErrAccessDenied
	}

	data, ok := e.content.get(id)
	if !ok {
		// Metadata without content means the triple invariant was broken
		// by a bug, not by the caller.
		log.Error().Str("id", id).Msg("metadata present but content missing")
		return nil, ErrNotFound
	}

	rec.DownloadCount++
	e.meta.put(rec)

	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// ListOwned returns every record owned by the caller, via the owner index.
func (e *Engine) ListOwned(owner string) []models.FileRecord {
	e.mu.RLock()
	defer e.mu.RUnlock()

	ids := e.owners.ids(owner)
	records := make([]models.FileRecord, 0, len(ids))
	for _, id := range ids {
		if rec, ok := e.meta.get(id); ok {
			records = append(records, rec)
		}
	}
	return records
}

// ListPublic returns every public record, scanning the full metadata store.
func (e *Engine) ListPublic() []models.FileRecord {
	e.mu.RLock()
	defer e.mu.RUnlock()

	records := make([]models.FileRecord, 0)
	for _, rec := range e.meta.records {
		if rec.IsPublic {
			records = append(records, rec)
		}
	}
	return records
}

// Delete removes metadata, content and the owner index entry in one step.
// Only the owner may delete, public or not.
func (e *Engine) Delete(id, caller string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	rec, ok := e.meta.get(id)
	if !ok {
		return ErrNotFound
	}
	if rec.Owner != caller {
		return ErrNotOwner
	}

	e.meta.remove(id)
	e.content.remove(id)
	e.owners.remove(rec.Owner, id)

	return nil
}

// Stats reports totals over the current store contents, computed fresh on
// every call.
func (e *Engine) Stats() (totalFiles uint64, totalBytes uint64, totalDownloads uint64) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	totalFiles = uint64(e.meta.len())
	for _, rec := range e.meta.records {
		totalBytes += uint64(rec.Size)
		totalDownloads += rec.DownloadCount
	}
	return totalFiles, totalBytes, totalDownloads
}
