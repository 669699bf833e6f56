package analytics

import (
	"sort"

	"github.com/shopspring/decimal"
)

func groupHours(g HoursGroup) decimal.Decimal     { return g.Hours }
func groupTeamHours(g HoursGroup) decimal.Decimal { return g.TeamHours }

// RankGroups orders hour groups by the measure, highest first. Groups with
// equal measures keep their input order.
func RankGroups(groups []HoursGroup, measure func(HoursGroup) decimal.Decimal) {
	sort.SliceStable(groups, func(i, j int) bool {
		return measure(groups[i]).GreaterThan(measure(groups[j]))
	})
}
