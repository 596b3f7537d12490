package ctx

import (
	"github.com/rs/zerolog/log"

	"github.com/sjzar/pausemenu/internal/errors"
	"github.com/sjzar/pausemenu/internal/inventory"
)

// State is either Selecting or Hooked.
type State interface {
	isState()
}

// Selecting is the phase before a process is chosen.
type Selecting struct {
	Filter       string
	HideChildren bool
}

// Hooked is the phase after a process is chosen. Paused is the only record
// of whether the target is suspended.
type Hooked struct {
	Process inventory.Process
	Paused  bool
}

func (Selecting) isState() {}
func (Hooked) isState()    {}

// Toggler changes the suspension state of a process.
type Toggler interface {
	Toggle(pid int32, paused bool) (bool, error)
}

// Context holds the inventory and the current UI phase. It is used from the
// UI event loop only.
type Context struct {
	inv     *inventory.Inventory
	toggler Toggler
	state   State

	// selection to restore on Back
	last Selecting
}

func New(inv *inventory.Inventory, toggler Toggler, hideChildren bool) *Context {
	return &Context{
		inv:     inv,
		toggler: toggler,
		state:   Selecting{HideChildren: hideChildren},
	}
}

func (c *Context) Inventory() *inventory.Inventory {
	return c.inv
}

func (c *Context) State() State {
	return c.state
}

// Visible returns the filtered inventory while selecting, nil otherwise.
func (c *Context) Visible() []inventory.Process {
	s, ok := c.state.(Selecting)
	if !ok {
		return nil
	}
	return inventory.Filter(c.inv.Processes(), s.Filter, s.HideChildren)
}

func (c *Context) SetFilter(text string) {
	if s, ok := c.state.(Selecting); ok {
		s.Filter = text
		c.state = s
	}
}

// ToggleHideChildren flips the flag and returns its new value.
func (c *Context) ToggleHideChildren() bool {
	s, ok := c.state.(Selecting)
	if !ok {
		return false
	}
	s.HideChildren = !s.HideChildren
	c.state = s
	return s.HideChildren
}

// Choose moves to Hooked with the target running.
func (c *Context) Choose(pid int32) (inventory.Process, error) {
	s, ok := c.state.(Selecting)
	if !ok {
		return inventory.Process{}, errors.AlreadyHooked()
	}
	p, ok := c.inv.Get(pid)
	if !ok {
		return inventory.Process{}, errors.ProcessNotInInventory(pid)
	}
	c.last = s
	c.state = Hooked{Process: p}
	log.Info().Int32("pid", p.PID).Str("name", p.Name).Msg("process selected")
	return p, nil
}

// TogglePause suspends or resumes the hooked process. On failure the
// paused flag is left as it was.
func (c *Context) TogglePause() (bool, error) {
	h, ok := c.state.(Hooked)
	if !ok {
		return false, errors.NotHooked()
	}
	paused, err := c.toggler.Toggle(h.Process.PID, h.Paused)
	if err != nil {
		log.Err(err).Int32("pid", h.Process.PID).Bool("paused", h.Paused).Msg("toggle failed")
		return h.Paused, err
	}
	h.Paused = paused
	c.state = h
	return paused, nil
}

// Back returns to process selection with the previous filter. It refuses while the target is paused
// so a suspended process is never left behind.
func (c *Context) Back() error {
	h, ok := c.state.(Hooked)
	if !ok {
		return nil
	}
	if h.Paused {
		return errors.TargetStillPaused(h.Process.PID)
	}
	c.state = c.last
	return nil
}
