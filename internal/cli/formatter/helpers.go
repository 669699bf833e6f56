package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/fieldbook/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// HumanDate returns a visit date as "Mon Jun 10, 2025".
func HumanDate(t time.Time) string {
	return t.Format("Mon Jan 2, 2006")
}

// StatusPill returns a colored status indicator for project status.
func StatusPill(status domain.ProjectStatus) string {
	switch status {
	case domain.ProjectActive:
		return StyleGreen.Render("● Active")
	case domain.ProjectArchived:
		return StyleDim.Render("✖ Archived")
	default:
		return StyleDim.Render(string(status))
	}
}

// KindBadge labels a visit as linked or blank.
func KindBadge(k domain.VisitKind) string {
	if k == domain.VisitBlank {
		return StylePurple.Render("blank")
	}
	return StyleBlue.Render("linked")
}

// InvoicedPill shows whether a visit was invoiced.
func InvoicedPill(invoiced bool) string {
	if invoiced {
		return StyleGreen.Render("✔ invoiced")
	}
	return StyleYellow.Render("○ pending")
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatHours renders decimal hours with up to two decimals, e.g. "7.25h".
func FormatHours(h decimal.Decimal) string {
	return h.Round(2).String() + "h"
}

// FormatMoney renders an amount with two decimals and the currency code.
func FormatMoney(amount decimal.Decimal, currency string) string {
	return fmt.Sprintf("%s %s", amount.StringFixed(2), currency)
}

// FormatPercent renders a percentage with one decimal.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatGrowth renders a signed growth percentage, colored by direction.
func FormatGrowth(pct float64) string {
	text := fmt.Sprintf("%+.1f%%", pct)
	switch {
	case pct > 0:
		return StyleGreen.Render(text)
	case pct < 0:
		return StyleRed.Render(text)
	default:
		return StyleDim.Render(text)
	}
}

// FormatSignedHours renders a deviation in hours with an explicit sign.
func FormatSignedHours(h decimal.Decimal) string {
	h = h.Round(2)
	if h.IsPositive() {
		return "+" + h.String() + "h"
	}
	return h.String() + "h"
}
