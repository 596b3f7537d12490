package help

import (
	"fmt"

	"github.com/sjzar/pausemenu/internal/ui/style"

	"github.com/rivo/tview"
)

const (
	Title     = "help"
	ShowTitle = "Help"
	Content   = `[yellow]Pause menu[white]

[green]Process selection:[white]
• Type in the filter box to narrow the list by name (case-insensitive)
• Press [yellow]F2[white] to hide or show child processes
• Use [yellow]Tab[white] / [yellow]↓[white] to move from the filter to the list
• Press [yellow]Enter[white] on a process to hook it

[green]Hooked process:[white]
• Select [yellow]Pause[white] to suspend the process, [yellow]Resume[white] to continue it
• Only the chosen process is suspended, not its children
• Press [yellow]Esc[white] to go back to the list (the process must be running)

[green]Notes:[white]
• Only processes owned by your user are listed
• The list is captured once at startup; a process that exited since then
  can no longer be paused and reports an error
• The pause state shown is the one this program set; it is not read back
  from the system

[yellow]Esc[white] closes this page, [yellow]Ctrl+C[white] quits.
`
)

type Help struct {
	*tview.TextView
	title string
}

func New() *Help {
	help := &Help{
		TextView: tview.NewTextView(),
		title:    Title,
	}

	help.SetDynamicColors(true)
	help.SetRegions(true)
	help.SetWrap(true)
	help.SetTextAlign(tview.AlignLeft)
	help.SetBorder(true)
	help.SetBorderColor(style.BorderColor)
	help.SetTitle(ShowTitle)

	fmt.Fprint(help, Content)

	return help
}
