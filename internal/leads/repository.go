package leads

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/faisalchaudhry-debug/HSM-dermatology/internal/registry"
)

// Repository stores captured leads for the admin dashboard.
type Repository interface {
	Create(ctx context.Context, lead *Lead) error
	List(ctx context.Context) ([]*Lead, error)
	ListByLocation(ctx context.Context, loc registry.LocationID) ([]*Lead, error)
}

// InMemoryRepository keeps leads in process memory. The CRM webhook is
// the system of record; this store only feeds the admin view.
type InMemoryRepository struct {
	mu    sync.RWMutex
	leads map[string]*Lead
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{leads: make(map[string]*Lead)}
}

func (r *InMemoryRepository) Create(_ context.Context, lead *Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if lead.ID == "" {
		lead.ID = uuid.NewString()
	}
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = time.Now().UTC()
	}
	stored := *lead
	r.leads[lead.ID] = &stored
	return nil
}

func (r *InMemoryRepository) List(_ context.Context) ([]*Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Lead, 0, len(r.leads))
	for _, l := range r.leads {
		copied := *l
		out = append(out, &copied)
	}
	sortLeads(out)
	return out, nil
}

func (r *InMemoryRepository) ListByLocation(_ context.Context, loc registry.LocationID) ([]*Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Lead, 0)
	for _, l := range r.leads {
		if l.Location == loc {
			copied := *l
			out = append(out, &copied)
		}
	}
	sortLeads(out)
	return out, nil
}

// sortLeads orders newest first for the dashboard.
func sortLeads(leads []*Lead) {
	sort.Slice(leads, func(i, j int) bool {
		return leads[i].CreatedAt.After(leads[j].CreatedAt)
	})
}
