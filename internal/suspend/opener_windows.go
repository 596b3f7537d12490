//go:build windows

package suspend

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/windows"
)

var (
	modntdll             = windows.NewLazySystemDLL("ntdll.dll")
	procNtSuspendProcess = modntdll.NewProc("NtSuspendProcess")
	procNtResumeProcess  = modntdll.NewProc("NtResumeProcess")
)

// processOpener opens the target with PROCESS_SUSPEND_RESUME access and
// drives the ntdll process-wide suspend/resume calls.
type processOpener struct{}

func newOpener() Opener {
	return processOpener{}
}

func (processOpener) Open(pid int32) (Handle, error) {
	h, err := windows.OpenProcess(windows.PROCESS_SUSPEND_RESUME, false, uint32(pid))
	if err != nil {
		return nil, err
	}
	return &processHandle{h: h}, nil
}

type processHandle struct {
	h windows.Handle
}

func (h *processHandle) Suspend() error {
	return ntCall(procNtSuspendProcess, h.h)
}

func (h *processHandle) Resume() error {
	return ntCall(procNtResumeProcess, h.h)
}

func (h *processHandle) Close() error {
	return windows.CloseHandle(h.h)
}

func ntCall(proc *windows.LazyProc, h windows.Handle) error {
	if err := proc.Find(); err != nil {
		return err
	}
	r1, _, _ := proc.Call(uintptr(h))
	if status := windows.NTStatus(r1); status != windows.STATUS_SUCCESS {
		logrus.Debugf("%s returned 0x%08x", proc.Name, uint32(status))
		return status
	}
	return nil
}
