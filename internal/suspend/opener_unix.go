//go:build !windows

package suspend

import (
	"github.com/shirou/gopsutil/v4/process"
)

// processOpener resolves the pid with gopsutil; the handle then signals it
// with SIGSTOP / SIGCONT.
type processOpener struct{}

func newOpener() Opener {
	return processOpener{}
}

func (processOpener) Open(pid int32) (Handle, error) {
	p, err := process.NewProcess(pid)
	if err != nil {
		return nil, err
	}
	return &processHandle{p: p}, nil
}

type processHandle struct {
	p *process.Process
}

func (h *processHandle) Suspend() error {
	return h.p.Suspend()
}

func (h *processHandle) Resume() error {
	return h.p.Resume()
}

func (h *processHandle) Close() error {
	return nil
}
