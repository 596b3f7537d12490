//go:build windows

package inventory

import (
	"github.com/shirou/gopsutil/v4/process"
)

// ownerOf returns the DOMAIN\user account of p's token.
func ownerOf(p *process.Process) (string, error) {
	return p.Username()
}
