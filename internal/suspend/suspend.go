package suspend

import (
	stderrors "errors"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/sjzar/pausemenu/internal/errors"
)

// State is the scheduling state the caller tracks for a target.
type State bool

const (
	Running   State = false
	Suspended State = true
)

func (s State) String() string {
	if s == Suspended {
		return "suspended"
	}
	return "running"
}

// Handle grants suspend/resume rights on one process. It is valid for a
// single call and must be closed afterwards.
type Handle interface {
	Suspend() error
	Resume() error
	Close() error
}

// Opener acquires a Handle for a pid.
type Opener interface {
	Open(pid int32) (Handle, error)
}

// Controller flips a process between running and suspended. It never reads
// the state back from the OS: the paused flag passed in by the caller is
// the only record of whether the target is suspended.
type Controller struct {
	opener Opener
}

// New returns a Controller using the platform opener.
func New() *Controller {
	return NewWithOpener(newOpener())
}

func NewWithOpener(opener Opener) *Controller {
	return &Controller{opener: opener}
}

// Toggle suspends pid when paused is false and resumes it otherwise, and
// returns the new paused flag. On error the returned flag equals paused.
func (c *Controller) Toggle(pid int32, paused bool) (bool, error) {
	if paused {
		if err := c.Resume(pid); err != nil {
			return paused, err
		}
		return false, nil
	}
	if err := c.Suspend(pid); err != nil {
		return paused, err
	}
	return true, nil
}

// Suspend stops pid. Only that process is affected, not its children.
func (c *Controller) Suspend(pid int32) error {
	return c.do(pid, "suspend", Handle.Suspend)
}

// Resume continues a process stopped by Suspend.
func (c *Controller) Resume(pid int32) error {
	return c.do(pid, "resume", Handle.Resume)
}

func (c *Controller) do(pid int32, op string, fn func(Handle) error) error {
	if pid <= 0 {
		return errors.HandleAcquisitionFailed(pid, errors.InvalidPID(int64(pid)))
	}

	h, err := c.opener.Open(pid)
	if err != nil {
		log.Debug().Err(err).Int32("pid", pid).Str("op", op).Msg("open process failed")
		return errors.HandleAcquisitionFailed(pid, err)
	}

	var opErr error
	if err := fn(h); err != nil {
		// unix opens by pid alone, so missing rights surface at signal time
		if stderrors.Is(err, os.ErrPermission) {
			opErr = errors.HandleAcquisitionFailed(pid, err)
		} else {
			opErr = errors.PrimitiveFailed(op, pid, err)
		}
	}
	if err := h.Close(); err != nil {
		log.Debug().Err(err).Int32("pid", pid).Msg("close process handle failed")
	}
	if opErr != nil {
		log.Debug().Err(opErr).Int32("pid", pid).Str("op", op).Msg("process state change failed")
		return opErr
	}

	log.Info().Int32("pid", pid).Str("op", op).Msg("process state changed")
	return nil
}
