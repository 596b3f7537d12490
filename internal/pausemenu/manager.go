package pausemenu

import (
	"math"

	"github.com/rs/zerolog/log"

	"github.com/sjzar/pausemenu/internal/errors"
	"github.com/sjzar/pausemenu/internal/inventory"
	"github.com/sjzar/pausemenu/internal/pausemenu/conf"
	"github.com/sjzar/pausemenu/internal/pausemenu/ctx"
	"github.com/sjzar/pausemenu/internal/suspend"
)

// Manager wires configuration, the process inventory and the suspend
// controller together for the TUI and the one-shot commands.
type Manager struct {
	conf   *conf.Config
	source inventory.Source
	ctl    *suspend.Controller

	inv *inventory.Inventory
	ctx *ctx.Context

	// Terminal UI
	app *App
}

func New() *Manager {
	return NewWith(inventory.NewSystemSource(), suspend.New())
}

func NewWith(source inventory.Source, ctl *suspend.Controller) *Manager {
	return &Manager{
		source: source,
		ctl:    ctl,
	}
}

// Init loads the configuration and captures the inventory. A snapshot
// failure is returned as is; nothing can run without an inventory.
func (m *Manager) Init(configPath string, overrides map[string]any) error {
	var err error
	m.conf, _, err = conf.Load(configPath, overrides)
	if err != nil {
		return err
	}

	snap, err := inventory.Capture(m.source)
	if err != nil {
		log.Err(err).Msg("capture process table failed")
		return err
	}

	m.inv, err = inventory.Build(snap, m.conf.Launchers)
	if err != nil {
		log.Err(err).Msg("build inventory failed")
		return err
	}

	m.ctx = ctx.New(m.inv, m.ctl, m.conf.HideChildren)
	return nil
}

func (m *Manager) Run(configPath string) error {
	if err := m.Init(configPath, nil); err != nil {
		return err
	}

	// 启动终端UI
	m.app = NewApp(m.ctx)
	return m.app.Run() // 阻塞
}

// CommandList returns one label per inventory record matching filter.
func (m *Manager) CommandList(configPath string, filter string, hideChildren bool) ([]string, error) {
	overrides := map[string]any{}
	if hideChildren {
		overrides["hide_children"] = true
	}
	if err := m.Init(configPath, overrides); err != nil {
		return nil, err
	}

	procs := inventory.Filter(m.inv.Processes(), filter, m.conf.HideChildren)
	lines := make([]string, 0, len(procs))
	for _, p := range procs {
		lines = append(lines, m.inv.Label(p))
	}
	return lines, nil
}

// CommandPause suspends pid without building an inventory; ownership is
// left to the OS permission check.
func (m *Manager) CommandPause(pid int) error {
	p, err := toPID(pid)
	if err != nil {
		return err
	}
	return m.ctl.Suspend(p)
}

// CommandResume resumes a process suspended by CommandPause or the TUI.
func (m *Manager) CommandResume(pid int) error {
	p, err := toPID(pid)
	if err != nil {
		return err
	}
	return m.ctl.Resume(p)
}

// toPID narrows a command line pid, rejecting values that would wrap.
func toPID(pid int) (int32, error) {
	if pid <= 0 || pid > math.MaxInt32 {
		return 0, errors.InvalidPID(int64(pid))
	}
	return int32(pid), nil
}
