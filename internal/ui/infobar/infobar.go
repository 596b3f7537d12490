package infobar

import (
	"fmt"

	"github.com/sjzar/pausemenu/internal/ui/style"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	Title = "infobar"
)

// InfoBarViewHeight info bar height.
const (
	InfoBarViewHeight = 2
	processRow        = 0
	parentRow         = 1

	labelCol1 = 0
	valueCol1 = 1
	labelCol2 = 2
	valueCol2 = 3
)

// InfoBar implements the info bar primitive.
type InfoBar struct {
	*tview.Box
	title string
	table *tview.Table
}

// New returns info bar view.
func New() *InfoBar {
	table := tview.NewTable()
	headerColor := style.InfoBarItemFgColor

	label := func(row, col int, text string) {
		table.SetCell(row, col, tview.NewTableCell(fmt.Sprintf(" [%s::]%s", headerColor, text)))
		table.SetCell(row, col+1, tview.NewTableCell(""))
	}
	label(processRow, labelCol1, "Process:")
	label(processRow, labelCol2, "PID:")
	label(parentRow, labelCol1, "Parent:")
	label(parentRow, labelCol2, "State:")

	infoBar := &InfoBar{
		Box:   tview.NewBox(),
		title: Title,
		table: table,
	}

	return infoBar
}

func (info *InfoBar) UpdateProcess(name string, pid int32) {
	info.table.GetCell(processRow, valueCol1).SetText(name)
	info.table.GetCell(processRow, valueCol2).SetText(fmt.Sprintf("%d", pid))
}

func (info *InfoBar) UpdateParent(parent string) {
	info.table.GetCell(parentRow, valueCol1).SetText(parent)
}

func (info *InfoBar) UpdateState(state string, color tcell.Color) {
	info.table.GetCell(parentRow, valueCol2).SetText(state).SetTextColor(color)
}

// Draw draws this primitive onto the screen.
func (info *InfoBar) Draw(screen tcell.Screen) {
	info.Box.DrawForSubclass(screen, info)
	info.Box.SetBorder(false)

	x, y, width, height := info.GetInnerRect()

	info.table.SetRect(x, y, width, height)
	info.table.SetBorder(false)
	info.table.Draw(screen)
}
