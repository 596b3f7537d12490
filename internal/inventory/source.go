package inventory

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v4/process"

	"github.com/sjzar/pausemenu/internal/errors"
)

// SystemSource reads the live process table through gopsutil.
type SystemSource struct{}

func NewSystemSource() *SystemSource {
	return &SystemSource{}
}

func (s *SystemSource) Snapshot() (*Snapshot, error) {
	processes, err := process.Processes()
	if err != nil {
		log.Err(err).Msg("failed to list processes")
		return nil, errors.SnapshotFailed("failed to list processes", err)
	}

	snap := &Snapshot{
		Self:    int32(os.Getpid()),
		Entries: make(map[int32]Entry, len(processes)),
	}
	for _, p := range processes {
		name, err := p.Name()
		if err != nil {
			// exited while we were iterating
			log.Debug().Err(err).Int32("pid", p.Pid).Msg("skip process without name")
			continue
		}

		ppid, err := p.Ppid()
		if err != nil {
			ppid = 0
		}

		owner, err := ownerOf(p)
		if err != nil {
			log.Debug().Err(err).Int32("pid", p.Pid).Msg("owner unreadable")
		}

		snap.Entries[p.Pid] = Entry{
			PID:   p.Pid,
			PPID:  ppid,
			Name:  name,
			Owner: owner,
		}
	}

	return snap, nil
}
