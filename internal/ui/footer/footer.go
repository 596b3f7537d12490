package footer

import (
	"fmt"

	"github.com/sjzar/pausemenu/internal/ui/style"
	"github.com/sjzar/pausemenu/pkg/version"

	"github.com/rivo/tview"
)

const (
	Title = "footer"
)

type Footer struct {
	*tview.Flex
	title     string
	copyRight *tview.TextView
	help      *tview.TextView
}

func New() *Footer {
	footer := &Footer{
		Flex:      tview.NewFlex(),
		title:     Title,
		copyRight: tview.NewTextView(),
		help:      tview.NewTextView(),
	}

	footer.copyRight.
		SetDynamicColors(true).
		SetWrap(true).
		SetTextAlign(tview.AlignLeft)
	footer.copyRight.
		SetBackgroundColor(tview.Styles.PrimitiveBackgroundColor)
	footer.copyRight.SetText(fmt.Sprintf("[%s::b]%s[-:-:-]", style.GetColorHex(style.PageHeaderFgColor), fmt.Sprintf(" Pause menu %s", version.Version)))

	footer.help.
		SetDynamicColors(true).
		SetWrap(true).
		SetTextAlign(tview.AlignRight)
	footer.help.
		SetBackgroundColor(tview.Styles.PrimitiveBackgroundColor)

	footer.SetKeys([][2]string{
		{"Tab", "Focus"},
		{"Enter", "Select"},
		{"F1", "Help"},
		{"Ctrl+C", "Quit"},
	})

	footer.
		AddItem(footer.copyRight, 0, 1, false).
		AddItem(footer.help, 0, 1, false)

	return footer
}

// SetKeys renders key/description pairs in the help area.
func (f *Footer) SetKeys(keys [][2]string) {
	f.help.Clear()
	for _, k := range keys {
		fmt.Fprintf(f.help, "[%s::b]%s[%s::b]: %s  ",
			style.GetColorHex(style.MenuBgColor), k[0],
			style.GetColorHex(style.PageHeaderFgColor), k[1],
		)
	}
}

func (f *Footer) SetCopyRight(text string) {
	f.copyRight.SetText(text)
}
