package diagnostics

import (
	cmap "github.com/orcaman/concurrent-map/v2"
	"time"
)

const latestKey = "latest"

// Snapshot is the latest Diagnostics together with loop statistics
type Snapshot struct {
	Diagnostics
	Cycles      uint64    `json:"cycles"`
	WriteErrors uint64    `json:"writeErrors"`
	ReadErrors  uint64    `json:"readErrors"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Store keeps the latest Snapshot, it is written by the control loop
// and read by any number of other goroutines
type Store struct {
	values cmap.ConcurrentMap[string, Snapshot]
	now    func() time.Time
}

func NewStore() *Store {
	return &Store{
		values: cmap.New[Snapshot](),
		now:    time.Now,
	}
}

func (s *Store) Report(d Diagnostics) {
	s.values.Upsert(latestKey, Snapshot{}, func(exist bool, current Snapshot, _ Snapshot) Snapshot {
		current.Diagnostics = d
		current.Cycles++
		current.UpdatedAt = s.now()
		return current
	})
}

// ReportReadError counts a failed sensor read
func (s *Store) ReportReadError() {
	s.values.Upsert(latestKey, Snapshot{}, func(exist bool, current Snapshot, _ Snapshot) Snapshot {
		current.ReadErrors++
		return current
	})
}

// ReportWriteError counts a failed duty write
func (s *Store) ReportWriteError() {
	s.values.Upsert(latestKey, Snapshot{}, func(exist bool, current Snapshot, _ Snapshot) Snapshot {
		current.WriteErrors++
		return current
	})
}

// Latest returns the latest snapshot, ok is false until a cycle completed.
// The error counters of the returned snapshot are valid either way.
func (s *Store) Latest() (snapshot Snapshot, ok bool) {
	snapshot, exists := s.values.Get(latestKey)
	return snapshot, exists && snapshot.Cycles > 0
}
