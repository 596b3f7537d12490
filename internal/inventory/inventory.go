package inventory

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/sjzar/pausemenu/internal/errors"
)

// Source produces a snapshot of the live process table.
type Source interface {
	Snapshot() (*Snapshot, error)
}

// Inventory is the pid-sorted set of processes owned by the invoking user.
type Inventory struct {
	processes []Process
	snap      *Snapshot
}

// Capture takes exactly one snapshot from src.
func Capture(src Source) (*Snapshot, error) {
	snap, err := src.Snapshot()
	if err != nil {
		if _, ok := errors.AsAppError(err); ok {
			return nil, err
		}
		return nil, errors.SnapshotFailed("failed to read process table", err)
	}
	if snap == nil {
		return nil, errors.SnapshotFailed("process table is empty", nil)
	}
	return snap, nil
}

// Build keeps the entries owned by the same identity as snap.Self, resolves
// each one's parent and sorts the result by pid. A parent that is missing
// from the snapshot, or whose name is one of launchers, is dropped.
func Build(snap *Snapshot, launchers []string) (*Inventory, error) {
	if snap == nil {
		return nil, errors.SnapshotFailed("process table is empty", nil)
	}

	self, ok := snap.Entries[snap.Self]
	if !ok {
		return nil, errors.SelfProcessNotFound(snap.Self)
	}
	if self.Owner == "" {
		return nil, errors.SelfOwnerUnknown(snap.Self)
	}

	collapse := make(map[string]struct{}, len(launchers))
	for _, name := range launchers {
		collapse[name] = struct{}{}
	}

	processes := make([]Process, 0)
	for pid, e := range snap.Entries {
		if pid <= 0 || e.Owner != self.Owner {
			continue
		}
		processes = append(processes, Process{
			PID:  pid,
			PPID: snap.parentOf(e, collapse),
			Name: e.Name,
		})
	}

	sort.Slice(processes, func(i, j int) bool {
		return processes[i].PID < processes[j].PID
	})

	log.Debug().
		Int("total", len(snap.Entries)).
		Int("owned", len(processes)).
		Str("owner", self.Owner).
		Msg("inventory built")

	return &Inventory{processes: processes, snap: snap}, nil
}

func (s *Snapshot) parentOf(e Entry, collapse map[string]struct{}) int32 {
	if e.PPID <= 0 || e.PPID == e.PID {
		return 0
	}
	parent, ok := s.Entries[e.PPID]
	if !ok {
		return 0
	}
	if _, ok := collapse[parent.Name]; ok {
		return 0
	}
	return parent.PID
}

// Processes returns a copy of the records in pid order.
func (inv *Inventory) Processes() []Process {
	out := make([]Process, len(inv.processes))
	copy(out, inv.processes)
	return out
}

func (inv *Inventory) Len() int {
	return len(inv.processes)
}

// Get finds an owned process by pid.
func (inv *Inventory) Get(pid int32) (Process, bool) {
	i := sort.Search(len(inv.processes), func(i int) bool {
		return inv.processes[i].PID >= pid
	})
	if i < len(inv.processes) && inv.processes[i].PID == pid {
		return inv.processes[i], true
	}
	return Process{}, false
}

// NameOf looks pid up in the whole snapshot, not only the owned processes,
// since a parent may belong to another user.
func (inv *Inventory) NameOf(pid int32) string {
	if e, ok := inv.snap.Entries[pid]; ok {
		return e.Name
	}
	return NotFound
}

// Label renders one row of the selection list.
func (inv *Inventory) Label(p Process) string {
	parent := ""
	if p.HasParent() {
		parent = inv.NameOf(p.PPID)
	}
	return fmt.Sprintf("Name: %s, pid: %d, parent: %s", p.Name, p.PID, parent)
}
