package store

import (
	"sync"

	"agritrace/internal/model"
)

// Store is the single source of truth for cooperatives, farmers, fields and
// points of interest. Every mutation builds a fresh slice (copy-on-write), so
// a reader holding a snapshot never observes a half-applied change. One lock
// guards all four collections; cross-entity updates stay atomic to observers.
type Store struct {
	mu           sync.RWMutex
	cooperatives []model.Cooperative
	farmers      []model.Farmer
	fields       []model.Field
	pois         []model.PointOfInterest

	subMu       sync.Mutex
	subscribers []func()
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Subscribe registers fn to run after every field mutation (add, update,
// remove, import), outside the store lock, in registration order. Derived
// aggregates hook in here so they are never stale by more than one mutation.
func (s *Store) Subscribe(fn func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *Store) notifyFieldsChanged() {
	s.subMu.Lock()
	subs := make([]func(), len(s.subscribers))
	copy(subs, s.subscribers)
	s.subMu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

// --- Cooperatives ---

func (s *Store) Cooperatives() []model.Cooperative {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Cooperative, len(s.cooperatives))
	copy(out, s.cooperatives)
	return out
}

func (s *Store) CooperativeByID(id string) (model.Cooperative, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.cooperatives {
		if c.ID == id {
			return c, true
		}
	}
	return model.Cooperative{}, false
}

func (s *Store) AddCooperative(coop model.Cooperative) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cooperatives = append(append([]model.Cooperative{}, s.cooperatives...), coop)
}

// UpdateCooperative replaces the cooperative with a matching id. Unknown id
// is a silent no-op.
func (s *Store) UpdateCooperative(coop model.Cooperative) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]model.Cooperative, 0, len(s.cooperatives))
	for _, c := range s.cooperatives {
		if c.ID == coop.ID {
			next = append(next, coop)
		} else {
			next = append(next, c)
		}
	}
	s.cooperatives = next
}

// RemoveCooperative filters the cooperative out by id. Idempotent; no cascade
// to farmers that reference it.
func (s *Store) RemoveCooperative(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]model.Cooperative, 0, len(s.cooperatives))
	for _, c := range s.cooperatives {
		if c.ID != id {
			next = append(next, c)
		}
	}
	s.cooperatives = next
}

// --- Farmers ---

func (s *Store) Farmers() []model.Farmer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Farmer, len(s.farmers))
	copy(out, s.farmers)
	return out
}

func (s *Store) FarmerByID(id string) (model.Farmer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, f := range s.farmers {
		if f.ID == id {
			return f, true
		}
	}
	return model.Farmer{}, false
}

func (s *Store) AddFarmer(farmer model.Farmer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.farmers = append(append([]model.Farmer{}, s.farmers...), farmer)
}

func (s *Store) UpdateFarmer(farmer model.Farmer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]model.Farmer, 0, len(s.farmers))
	for _, f := range s.farmers {
		if f.ID == farmer.ID {
			next = append(next, farmer)
		} else {
			next = append(next, f)
		}
	}
	s.farmers = next
}

// RemoveFarmer deletes the farmer by id. The farmer's fields are kept; their
// denormalized farmer_name snapshots stay as they were.
func (s *Store) RemoveFarmer(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]model.Farmer, 0, len(s.farmers))
	for _, f := range s.farmers {
		if f.ID != id {
			next = append(next, f)
		}
	}
	s.farmers = next
}

// --- Fields ---

func (s *Store) Fields() []model.Field {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Field, len(s.fields))
	copy(out, s.fields)
	return out
}

func (s *Store) FieldByID(id string) (model.Field, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, f := range s.fields {
		if f.ID == id {
			return f, true
		}
	}
	return model.Field{}, false
}

func (s *Store) AddField(field model.Field) {
	s.mu.Lock()
	s.fields = append(append([]model.Field{}, s.fields...), field)
	s.mu.Unlock()
	s.notifyFieldsChanged()
}

func (s *Store) UpdateField(field model.Field) {
	s.mu.Lock()
	next := make([]model.Field, 0, len(s.fields))
	for _, f := range s.fields {
		if f.ID == field.ID {
			next = append(next, field)
		} else {
			next = append(next, f)
		}
	}
	s.fields = next
	s.mu.Unlock()
	s.notifyFieldsChanged()
}

func (s *Store) RemoveField(id string) {
	s.mu.Lock()
	next := make([]model.Field, 0, len(s.fields))
	for _, f := range s.fields {
		if f.ID != id {
			next = append(next, f)
		}
	}
	s.fields = next
	s.mu.Unlock()
	s.notifyFieldsChanged()
}

// --- Points of interest ---

func (s *Store) POIs() []model.PointOfInterest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.PointOfInterest, len(s.pois))
	copy(out, s.pois)
	return out
}

func (s *Store) AddPOI(poi model.PointOfInterest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pois = append(append([]model.PointOfInterest{}, s.pois...), poi)
}

func (s *Store) UpdatePOI(poi model.PointOfInterest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]model.PointOfInterest, 0, len(s.pois))
	for _, p := range s.pois {
		if p.ID == poi.ID {
			next = append(next, poi)
		} else {
			next = append(next, p)
		}
	}
	s.pois = next
}

func (s *Store) RemovePOI(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]model.PointOfInterest, 0, len(s.pois))
	for _, p := range s.pois {
		if p.ID != id {
			next = append(next, p)
		}
	}
	s.pois = next
}

// --- Bulk import ---

// ImportBatch appends farmers and fields produced by one import in a single
// critical section, so other readers see either none or all of the batch.
func (s *Store) ImportBatch(farmers []model.Farmer, fields []model.Field) {
	s.mu.Lock()
	s.farmers = append(append([]model.Farmer{}, s.farmers...), farmers...)
	s.fields = append(append([]model.Field{}, s.fields...), fields...)
	s.mu.Unlock()
	if len(fields) > 0 {
		s.notifyFieldsChanged()
	}
}
