//go:build !windows

package inventory

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/process"
)

// ownerOf returns the real uid of p.
func ownerOf(p *process.Process) (string, error) {
	uids, err := p.Uids()
	if err != nil {
		return "", err
	}
	if len(uids) == 0 {
		return "", fmt.Errorf("no uid for process %d", p.Pid)
	}
	return fmt.Sprintf("uid:%d", uids[0]), nil
}
