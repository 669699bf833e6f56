package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/fieldbook/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const dateLayout = "2006-01-02"

// dateValue is a pflag.Value for a civil date in YYYY-MM-DD.
type dateValue struct{ t *time.Time }

func (d dateValue) String() string {
	if d.t == nil || d.t.IsZero() {
		return ""
	}
	return d.t.Format(dateLayout)
}

func (d dateValue) Set(s string) error {
	t, err := time.ParseInLocation(dateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return fmt.Errorf("want YYYY-MM-DD")
	}
	*d.t = t
	return nil
}

func (dateValue) Type() string { return "date" }

func dateVar(fs *pflag.FlagSet, p *time.Time, name, usage string) {
	fs.Var(dateValue{t: p}, name, usage)
}

// decimalValue is a pflag.Value for exact hours or money amounts.
type decimalValue struct{ d *decimal.Decimal }

func (v decimalValue) String() string {
	if v.d == nil {
		return "0"
	}
	return v.d.String()
}

func (v decimalValue) Set(s string) error {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("want a number")
	}
	*v.d = d
	return nil
}

func (decimalValue) Type() string { return "decimal" }

func decimalVar(fs *pflag.FlagSet, p *decimal.Decimal, name string, value decimal.Decimal, usage string) {
	*p = value
	fs.Var(decimalValue{d: p}, name, usage)
}

// periodValue restricts a flag to week, month or year, plus "all" when
// allowAll is set.
type periodValue struct {
	p        *string
	allowAll bool
}

func (v periodValue) String() string { return *v.p }

func (v periodValue) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if domain.ValidPeriodKinds[s] || (v.allowAll && s == "all") {
		*v.p = s
		return nil
	}
	if v.allowAll {
		return fmt.Errorf("want all, week, month or year")
	}
	return fmt.Errorf("want week, month or year")
}

func (periodValue) Type() string { return "period" }

func periodVar(fs *pflag.FlagSet, p *string, name, value string, allowAll bool, usage string) {
	*p = value
	fs.Var(periodValue{p: p, allowAll: allowAll}, name, usage)
}

// addAsOfFlag registers --as-of and returns a getter that yields nil unless
// the flag was set.
func addAsOfFlag(cmd *cobra.Command) func() *time.Time {
	var asOf time.Time
	dateVar(cmd.Flags(), &asOf, "as-of", "Report as of this date (YYYY-MM-DD, default now)")
	return func() *time.Time {
		if !cmd.Flags().Changed("as-of") {
			return nil
		}
		// End of day so visits dated on it count as past.
		t := asOf.Add(24*time.Hour - time.Second)
		return &t
	}
}
