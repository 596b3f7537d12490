package inventory

// NotFound labels a pid that is no longer in the snapshot.
const NotFound = "Not found"

// Entry is one row of the raw process table.
type Entry struct {
	PID  int32
	PPID int32
	Name string

	// Owner is the OS identity the process runs as. Empty when it could not
	// be read, which excludes the entry from any inventory.
	Owner string
}

// Snapshot is the process table as it was at capture time. It is never
// refreshed; pids in it may already be gone.
type Snapshot struct {
	Self    int32
	Entries map[int32]Entry
}

// Process is an inventory record. PPID is 0 when the process has no
// meaningful parent.
type Process struct {
	PID  int32
	PPID int32
	Name string
}

func (p Process) HasParent() bool {
	return p.PPID != 0
}
