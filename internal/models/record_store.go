package models

import "sync"

// RecordStore keeps records in append order. There is no delete or edit:
// the journal is append-only.
type RecordStore struct {
	mu   sync.RWMutex
	data []Record
}

func NewRecordStore() *RecordStore {
	return &RecordStore{data: make([]Record, 0)}
}

func (s *RecordStore) Append(r Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append(s.data, r)
}

func (s *RecordStore) Has(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.data {
		if s.data[i].ID == id {
			return true
		}
	}
	return false
}

func (s *RecordStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// All returns a copy safe to hand to the derivations.
func (s *RecordStore) All() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Record, len(s.data))
	copy(out, s.data)
	return out
}

func (s *RecordStore) PutData(data []Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if data == nil {
		data = make([]Record, 0)
	}
	s.data = data
}
