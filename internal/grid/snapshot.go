package grid

import (
	"sync"

	"sheetdash/internal/models"
)

// SnapshotState holds the table data currently applied to the grid and
// guards against out-of-order arrival. A fetch result and a push update
// may race; whichever carries the higher server sequence wins, and a
// sequenced snapshot is never replaced by an older sequenced one.
// Unsequenced snapshots (Seq 0) fall back to arrival order.
type SnapshotState struct {
	mu      sync.Mutex
	data    models.TableData
	seq     uint64
	applied bool
}

// Apply installs snap unless it is sequenced and older than the applied
// snapshot. Reports whether the snapshot was taken.
func (s *SnapshotState) Apply(snap models.Snapshot) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if snap.Seq != 0 && snap.Seq < s.seq {
		return false
	}

	s.data = snap.Data
	if snap.Seq > s.seq {
		s.seq = snap.Seq
	}
	s.applied = true
	return true
}

// Current returns the applied table data; ok is false before the first
// successful Apply.
func (s *SnapshotState) Current() (data models.TableData, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data, s.applied
}

// Reset clears the state, e.g. on table switch.
func (s *SnapshotState) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = models.TableData{}
	s.seq = 0
	s.applied = false
}
