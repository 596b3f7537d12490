package pausemenu

import (
	"fmt"

	"github.com/sjzar/pausemenu/internal/errors"
	"github.com/sjzar/pausemenu/internal/pausemenu/ctx"
	"github.com/sjzar/pausemenu/internal/suspend"
	"github.com/sjzar/pausemenu/internal/ui/footer"
	"github.com/sjzar/pausemenu/internal/ui/help"
	"github.com/sjzar/pausemenu/internal/ui/infobar"
	"github.com/sjzar/pausemenu/internal/ui/menu"
	"github.com/sjzar/pausemenu/internal/ui/style"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	pageSelect = "select"
	pageMain   = "main"
	pageHelp   = "help"
	pageModal  = "modal"

	actionToggle = 1
	actionBack   = 2
)

// App is the terminal front end. Every core call happens on the tview event
// loop, so the inventory and the controller are never used concurrently.
type App struct {
	*tview.Application

	ctx *ctx.Context

	mainPages *tview.Pages
	footer    *footer.Footer
	help      *help.Help

	// select page
	selectFlex *tview.Flex
	hint       *tview.TextView
	filter     *tview.InputField
	procs      *menu.Menu

	// main page
	infoBar *infobar.InfoBar
	actions *menu.Menu
}

func NewApp(c *ctx.Context) *App {
	app := &App{
		Application: tview.NewApplication(),
		ctx:         c,
		mainPages:   tview.NewPages(),
		footer:      footer.New(),
		help:        help.New(),
		hint:        tview.NewTextView(),
		filter:      tview.NewInputField(),
		procs:       menu.New("Process selection", "Name", "Details"),
		infoBar:     infobar.New(),
		actions:     menu.New("Hooked", "Action", "Description"),
	}

	app.initSelectPage()
	app.initMainPage()

	return app
}

func (a *App) Run() error {
	a.SetInputCapture(a.inputCapture)

	if err := a.SetRoot(a.mainPages, true).EnableMouse(true).Run(); err != nil {
		return err
	}

	return nil
}

func (a *App) initSelectPage() {
	a.hint.SetDynamicColors(true)

	a.filter.
		SetLabel("Filter: ").
		SetFieldBackgroundColor(style.InputFieldBgColor).
		SetChangedFunc(func(text string) {
			a.ctx.SetFilter(text)
			a.refreshProcesses()
		}).
		SetDoneFunc(func(key tcell.Key) {
			switch key {
			case tcell.KeyEnter:
				a.chooseHighlighted()
			case tcell.KeyTab, tcell.KeyDown:
				a.SetFocus(a.procs)
			}
		})

	a.selectFlex = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.hint, 1, 0, false).
		AddItem(a.filter, 1, 0, true).
		AddItem(a.procs, 0, 1, false).
		AddItem(a.footer, 1, 1, false)

	a.mainPages.AddPage(pageSelect, a.selectFlex, true, true)
	a.refreshProcesses()
	a.updateSelectFooter()
}

func (a *App) initMainPage() {
	a.actions.SetItems([]*menu.Item{
		{
			Index:    actionToggle,
			Selected: func(*menu.Item) { a.togglePause() },
		},
		{
			Index:       actionBack,
			Name:        "Back",
			Description: "Choose another process",
			Selected:    func(*menu.Item) { a.back() },
		},
	})

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.infoBar, infobar.InfoBarViewHeight, 0, false).
		AddItem(a.actions, 0, 1, true).
		AddItem(a.footer, 1, 1, false)

	a.mainPages.AddPage(pageMain, flex, true, false)
}

func (a *App) refreshProcesses() {
	inv := a.ctx.Inventory()
	visible := a.ctx.Visible()

	items := make([]*menu.Item, 0, len(visible))
	for _, p := range visible {
		pid := p.PID
		parent := ""
		if p.HasParent() {
			parent = inv.NameOf(p.PPID)
		}
		items = append(items, &menu.Item{
			Index:       int(pid),
			Name:        p.Name,
			Description: fmt.Sprintf("pid: %d, parent: %s", pid, parent),
			Selected:    func(*menu.Item) { a.choose(pid) },
		})
	}
	a.procs.SetItems(items)

	hide := "Hide childs"
	if s, ok := a.ctx.State().(ctx.Selecting); ok && s.HideChildren {
		hide = "Show childs"
	}
	a.hint.SetText(fmt.Sprintf(" %d of %d processes   [%s::b]F2[-::-]: %s",
		len(visible), inv.Len(), style.GetColorHex(style.MenuBgColor), hide))
}

// chooseHighlighted hooks the row under the cursor, the first match after
// filtering unless the user moved it.
func (a *App) chooseHighlighted() {
	if item := a.procs.Selected(); item != nil && item.Selected != nil {
		item.Selected(item)
	}
}

func (a *App) choose(pid int32) {
	p, err := a.ctx.Choose(pid)
	if err != nil {
		a.showError(err)
		return
	}

	parent := ""
	if p.HasParent() {
		parent = a.ctx.Inventory().NameOf(p.PPID)
	}
	a.infoBar.UpdateProcess(p.Name, p.PID)
	a.infoBar.UpdateParent(parent)
	a.updateMainState(false)

	a.mainPages.SwitchToPage(pageMain)
	a.SetFocus(a.actions)
}

func (a *App) togglePause() {
	paused, err := a.ctx.TogglePause()
	if err != nil {
		a.showError(err)
	}
	a.updateMainState(paused)
}

func (a *App) back() {
	if err := a.ctx.Back(); err != nil {
		a.showError(err)
		return
	}
	s, _ := a.ctx.State().(ctx.Selecting)
	a.filter.SetText(s.Filter)
	a.refreshProcesses()
	a.mainPages.SwitchToPage(pageSelect)
	a.updateSelectFooter()
	a.SetFocus(a.filter)
}

func (a *App) updateMainState(paused bool) {
	h, _ := a.ctx.State().(ctx.Hooked)

	for _, item := range a.actions.GetItems() {
		if item.Index != actionToggle {
			continue
		}
		if paused {
			item.Name = "Resume"
			item.Description = fmt.Sprintf("Continue %s", h.Process.Name)
		} else {
			item.Name = "Pause"
			item.Description = fmt.Sprintf("Suspend %s", h.Process.Name)
		}
	}
	a.actions.SetTitle(fmt.Sprintf("Hooked to %s w/ pid %d", h.Process.Name, h.Process.PID))
	a.infoBar.UpdateState(suspend.State(paused).String(), style.StateColor(paused))
	a.footer.SetKeys([][2]string{
		{"Enter", "Pause/Resume"},
		{"Esc", "Back"},
		{"F1", "Help"},
		{"Ctrl+C", "Quit"},
	})
}

func (a *App) updateSelectFooter() {
	a.footer.SetKeys([][2]string{
		{"Tab", "Focus"},
		{"Enter", "Hook"},
		{"F2", "Children"},
		{"F1", "Help"},
		{"Ctrl+C", "Quit"},
	})
}

func (a *App) showError(err error) {
	modal := tview.NewModal().
		SetText(errorText(err)).
		AddButtons([]string{"OK"}).
		SetBackgroundColor(style.ErrorDialogBgColor).
		SetButtonBackgroundColor(style.ErrorDialogButtonBgColor).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			a.mainPages.RemovePage(pageModal)
		})
	a.mainPages.AddPage(pageModal, modal, true, true)
	a.SetFocus(modal)
}

// errorText is the message shown in the error modal, followed by the OS
// error at the bottom of the chain when there is one.
func errorText(err error) string {
	text := err.Error()
	if root := errors.RootCause(err); root != err {
		text = fmt.Sprintf("%s\n\nCause: %v", text, root)
	}
	return text
}

func (a *App) inputCapture(event *tcell.EventKey) *tcell.EventKey {
	if a.mainPages.HasPage(pageModal) {
		return event
	}

	if a.mainPages.HasPage(pageHelp) {
		if event.Key() == tcell.KeyEscape || event.Key() == tcell.KeyF1 {
			a.mainPages.RemovePage(pageHelp)
			return nil
		}
		if event.Key() != tcell.KeyCtrlC {
			return event
		}
	}

	switch event.Key() {
	case tcell.KeyCtrlC:
		a.Stop()
		return nil
	case tcell.KeyF1:
		a.mainPages.AddPage(pageHelp, a.help, true, true)
		return nil
	}

	switch a.ctx.State().(type) {
	case ctx.Selecting:
		switch event.Key() {
		case tcell.KeyF2:
			a.ctx.ToggleHideChildren()
			a.refreshProcesses()
			return nil
		case tcell.KeyTab, tcell.KeyBacktab:
			if a.filter.HasFocus() {
				a.SetFocus(a.procs)
			} else {
				a.SetFocus(a.filter)
			}
			return nil
		}
	case ctx.Hooked:
		if event.Key() == tcell.KeyEscape {
			a.back()
			return nil
		}
	}

	return event
}
