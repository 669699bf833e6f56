package formatter

import (
	"fmt"
	"strings"
)

// FormatSettings renders the stored settings.
func FormatSettings(rate, currency string, overdueDays int, customTasks []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", StyleDim.Render("RATE    "), StyleFg.Render(rate+" "+currency+"/h"))
	fmt.Fprintf(&b, "%s  %s\n", StyleDim.Render("OVERDUE "), StyleFg.Render(fmt.Sprintf("%d days", overdueDays)))
	tasks := Dim("--")
	if len(customTasks) > 0 {
		tasks = StyleFg.Render(strings.Join(customTasks, ", "))
	}
	fmt.Fprintf(&b, "%s  %s", StyleDim.Render("TASKS   "), tasks)
	return RenderBox("Settings", b.String())
}
