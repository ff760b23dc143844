package storage

import (
	"dcdn-backend/internal/models"
)

// The three stores are plain maps with no locking of their own. All access
// goes through the Engine, which holds the single lock guarding the triple.

type contentStore struct {
	blobs map[string][]byte
}

func newContentStore() *contentStore {
	return &contentStore{blobs: make(map[string][]byte)}
}

func (s *contentStore) get(id string) ([]byte, bool) {
	data, ok := s.blobs[id]
	return data, ok
}

func (s *contentStore) put(id string, data []byte) {
	s.blobs[id] = data
}

func (s *contentStore) remove(id string) {
	delete(s.blobs, id)
}

type metadataStore struct {
	records map[string]models.FileRecord
}

func newMetadataStore() *metadataStore {
	return &metadataStore{records: make(map[string]models.FileRecord)}
}

func (s *metadataStore) get(id string) (models.FileRecord, bool) {
	rec, ok := s.records[id]
	return rec, ok
}

func (s *metadataStore) put(rec models.FileRecord) {
	s.records[rec.ID] = rec
}

func (s *metadataStore) remove(id string) {
	delete(s.records, id)
}

func (s *metadataStore) len() int {
	return len(s.records)
}

// ownerIndex maps an owner identity to the ids they uploaded, in insertion
// order. It must mirror metadataStore ownership exactly at all times.
type ownerIndex struct {
	byOwner map[string][]string
}

func newOwnerIndex() *ownerIndex {
	return &ownerIndex{byOwner: make(map[string][]string)}
}

func (idx *ownerIndex) add(owner, id string) {
	idx.byOwner[owner] = append(idx.byOwner[owner], id)
}

func (idx *ownerIndex) remove(owner, id string) {
	ids := idx.byOwner[owner]
	for i, existing := range ids {
		if existing == id {
			idx.byOwner[owner] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	if len(idx.byOwner[owner]) == 0 {
		delete(idx.byOwner, owner)
	}
}

func (idx *ownerIndex) ids(owner string) []string {
	return idx.byOwner[owner]
}
