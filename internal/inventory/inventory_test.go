package inventory

import (
	"fmt"
	"math/rand"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sjzar/pausemenu/internal/errors"
)

const (
	me    = "uid:1000"
	other = "uid:0"
)

func table(self int32, entries ...Entry) *Snapshot {
	snap := &Snapshot{Self: self, Entries: make(map[int32]Entry, len(entries))}
	for _, e := range entries {
		snap.Entries[e.PID] = e
	}
	return snap
}

type fakeSource struct {
	snap *Snapshot
	err  error
}

func (f *fakeSource) Snapshot() (*Snapshot, error) {
	return f.snap, f.err
}

func TestBuildCollapsesLauncherParent(t *testing.T) {
	snap := table(30,
		Entry{PID: 10, PPID: 1, Name: "shell", Owner: other},
		Entry{PID: 20, PPID: 10, Name: "app.exe", Owner: me},
		Entry{PID: 30, PPID: 20, Name: "pausemenu", Owner: me},
	)

	inv, err := Build(snap, []string{"shell"})
	require.NoError(t, err)

	assert.Equal(t, []Process{
		{PID: 20, PPID: 0, Name: "app.exe"},
		{PID: 30, PPID: 20, Name: "pausemenu"},
	}, inv.Processes())
}

func TestBuildKeepsOwnedLauncher(t *testing.T) {
	snap := table(20,
		Entry{PID: 10, Name: "explorer.exe", Owner: me},
		Entry{PID: 20, PPID: 10, Name: "app.exe", Owner: me},
	)

	inv, err := Build(snap, []string{"explorer.exe"})
	require.NoError(t, err)

	assert.Equal(t, []Process{
		{PID: 10, PPID: 0, Name: "explorer.exe"},
		{PID: 20, PPID: 0, Name: "app.exe"},
	}, inv.Processes())
}

func TestBuildParentResolution(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  int32
	}{
		{"no os parent", Entry{PID: 50, PPID: 0, Name: "a", Owner: me}, 0},
		{"parent exited", Entry{PID: 50, PPID: 77, Name: "a", Owner: me}, 0},
		{"own parent", Entry{PID: 50, PPID: 50, Name: "a", Owner: me}, 0},
		{"launcher parent", Entry{PID: 50, PPID: 2, Name: "a", Owner: me}, 0},
		{"foreign parent kept", Entry{PID: 50, PPID: 3, Name: "a", Owner: me}, 3},
		{"owned parent kept", Entry{PID: 50, PPID: 4, Name: "a", Owner: me}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := table(4,
				Entry{PID: 2, Name: "launcher", Owner: me},
				Entry{PID: 3, Name: "sshd", Owner: other},
				Entry{PID: 4, Name: "bash", Owner: me},
				tt.entry,
			)
			inv, err := Build(snap, []string{"launcher"})
			require.NoError(t, err)

			p, ok := inv.Get(50)
			require.True(t, ok)
			assert.Equal(t, tt.want, p.PPID)
		})
	}
}

func TestBuildOwnerFilter(t *testing.T) {
	snap := table(5,
		Entry{PID: 1, Name: "init", Owner: other},
		Entry{PID: 2, Name: "unknown", Owner: ""},
		Entry{PID: 5, Name: "self", Owner: me},
		Entry{PID: 6, Name: "mine", Owner: me},
		Entry{PID: 7, Name: "theirs", Owner: "uid:1001"},
	)

	inv, err := Build(snap, nil)
	require.NoError(t, err)

	var pids []int32
	for _, p := range inv.Processes() {
		pids = append(pids, p.PID)
	}
	assert.Equal(t, []int32{5, 6}, pids)
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		snap *Snapshot
	}{
		{"nil snapshot", nil},
		{"self missing", table(9, Entry{PID: 1, Name: "init", Owner: me})},
		{"self owner unknown", table(9, Entry{PID: 9, Name: "self"})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := Build(tt.snap, nil)
			assert.Nil(t, inv)
			assert.True(t, errors.Is(err, errors.ErrTypeSnapshot), "got %v", err)
		})
	}
}

func TestBuildSortedUniqueForRandomTables(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	owners := []string{me, other, ""}

	for round := 0; round < 50; round++ {
		entries := []Entry{{PID: 1, Name: "self", Owner: me}}
		launcherPIDs := map[int32]bool{}
		for i := 0; i < 100; i++ {
			pid := int32(r.Intn(5000) + 2)
			name := fmt.Sprintf("proc-%d", r.Intn(20))
			if r.Intn(10) == 0 {
				name = "launcher"
				launcherPIDs[pid] = true
			}
			entries = append(entries, Entry{
				PID:   pid,
				PPID:  int32(r.Intn(5000)),
				Name:  name,
				Owner: owners[r.Intn(len(owners))],
			})
		}
		snap := table(1, entries...)
		// later duplicates overwrite earlier ones in the map
		for pid, e := range snap.Entries {
			launcherPIDs[pid] = e.Name == "launcher"
		}

		inv, err := Build(snap, []string{"launcher"})
		require.NoError(t, err)

		procs := inv.Processes()
		for i := 1; i < len(procs); i++ {
			require.Less(t, procs[i-1].PID, procs[i].PID)
		}
		for _, p := range procs {
			assert.Equal(t, me, snap.Entries[p.PID].Owner)
			if p.HasParent() {
				assert.False(t, launcherPIDs[p.PPID], "pid %d has launcher parent %d", p.PID, p.PPID)
				_, ok := snap.Entries[p.PPID]
				assert.True(t, ok)
			}
		}
	}
}

func TestInventoryLookups(t *testing.T) {
	snap := table(20,
		Entry{PID: 3, Name: "sshd", Owner: other},
		Entry{PID: 20, PPID: 3, Name: "bash", Owner: me},
		Entry{PID: 21, PPID: 20, Name: "vim", Owner: me},
	)
	inv, err := Build(snap, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, inv.Len())
	assert.Equal(t, "sshd", inv.NameOf(3))
	assert.Equal(t, NotFound, inv.NameOf(4242))

	_, ok := inv.Get(3)
	assert.False(t, ok, "foreign process must not be in the inventory")

	vim, ok := inv.Get(21)
	require.True(t, ok)
	assert.Equal(t, "Name: vim, pid: 21, parent: bash", inv.Label(vim))

	bash, _ := inv.Get(20)
	assert.Equal(t, "Name: bash, pid: 20, parent: sshd", inv.Label(bash))

	// a parent that disappears from the table renders as not found
	delete(snap.Entries, 20)
	assert.Equal(t, "Name: vim, pid: 21, parent: Not found", inv.Label(vim))
}

func TestProcessesReturnsCopy(t *testing.T) {
	inv, err := Build(table(1, Entry{PID: 1, Name: "self", Owner: me}), nil)
	require.NoError(t, err)

	procs := inv.Processes()
	procs[0].Name = "changed"
	assert.Equal(t, "self", inv.Processes()[0].Name)
}

func TestCapture(t *testing.T) {
	want := table(1, Entry{PID: 1, Name: "self", Owner: me})
	snap, err := Capture(&fakeSource{snap: want})
	require.NoError(t, err)
	assert.Same(t, want, snap)

	_, err = Capture(&fakeSource{err: fmt.Errorf("permission denied")})
	assert.True(t, errors.Is(err, errors.ErrTypeSnapshot))

	_, err = Capture(&fakeSource{})
	assert.True(t, errors.Is(err, errors.ErrTypeSnapshot))
}

func TestSystemSourceContainsSelf(t *testing.T) {
	snap, err := Capture(NewSystemSource())
	if err != nil {
		t.Skipf("process table unavailable: %v", err)
	}

	inv, err := Build(snap, DefaultLaunchers())
	require.NoError(t, err)

	self, ok := inv.Get(int32(os.Getpid()))
	require.True(t, ok)
	assert.NotEmpty(t, self.Name)
}

func TestLaunchersFor(t *testing.T) {
	assert.Equal(t, []string{"explorer.exe"}, launchersFor("windows"))
	assert.Contains(t, launchersFor("darwin"), "launchd")
	assert.Contains(t, launchersFor("linux"), "systemd")
}
