package registry

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog/log"

	"dcdn-backend/internal/models"
)

var ErrNodeNotFound = errors.New("node not found")

// Registry is a flat advertise/heartbeat/list facility for storage nodes.
// Records are self-declared metadata; nothing here drives data placement.
type Registry struct {
	mu    sync.RWMutex
	nodes map[string]models.NodeRecord
	now   func() time.Time
}

func New() *Registry {
	return NewWithClock(time.Now)
}

// NewWithClock injects the clock, for tests.
func NewWithClock(now func() time.Time) *Registry {
	return &Registry{
		nodes: make(map[string]models.NodeRecord),
		now:   now,
	}
}

// Register upserts a node record keyed by its self-declared id, overwriting
// any previous record in full. A caller-supplied last_seen is ignored; the
// registry stamps its own. Nodes without an id get a fresh one.
func (r *Registry) Register(rec models.NodeRecord) (models.NodeRecord, error) {
	if err := validate(rec); err != nil {
		return models.NodeRecord{}, err
	}

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	rec.LastSeen = r.now()

	r.mu.Lock()
	r.nodes[rec.ID] = rec
	r.mu.Unlock()

	log.Info().Str("node_id", rec.ID).Str("location", rec.Location).Msg("node registered")
	return rec, nil
}

func validate(rec models.NodeRecord) error {
	var result *multierror.Error
	if rec.UsedStorage > rec.StorageCapacity {
		result = multierror.Append(result, fmt.Errorf(
			"used storage %d exceeds declared capacity %d", rec.UsedStorage, rec.StorageCapacity))
	}
	if rec.UptimePercentage < 0 || rec.UptimePercentage > 100 {
		result = multierror.Append(result, fmt.Errorf(
			"uptime percentage %.2f out of range [0, 100]", rec.UptimePercentage))
	}
	return result.ErrorOrNil()
}

// Heartbeat refreshes last_seen for a registered node.
func (r *Registry) Heartbeat(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.nodes[id]
	if !ok {
		return ErrNodeNotFound
	}
	rec.LastSeen = r.now()
	r.nodes[id] = rec
	return nil
}

// List returns all registered nodes, unfiltered.
func (r *Registry) List() []models.NodeRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]models.NodeRecord, 0, len(r.nodes))
	for _, rec := range r.nodes {
		records = append(records, rec)
	}
	return records
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.nodes)
}
