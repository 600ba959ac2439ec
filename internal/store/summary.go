package store

import (
	"slices"
	"sort"
	"time"

	"spending/internal/core"
)

// YearSummary builds the analysis view for year. The total and the months
// come from GetMonthlyData, so they are empty for any year but the current
// one; category totals are not limited that way.
func (s *Store) YearSummary(year int) core.YearOverview {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ov := core.YearOverview{Year: year}
	for _, m := range s.monthlyLocked(year) {
		ov.TotalSpent = ov.TotalSpent.Add(m.TotalSpent)
		if !m.TotalSpent.IsZero() {
			ov.Months = append(ov.Months, m)
		}
	}

	for _, c := range s.categories {
		total := sumCategory(s.spendings, c.Name, year)
		if total.IsZero() {
			continue
		}
		ct := core.CategoryTotal{Category: c, Total: total}
		ov.Categories = append(ov.Categories, ct)
		if !ov.HasTop || total.Cents > ov.Top.Total.Cents {
			ov.Top = ct
			ov.HasTop = true
		}
	}

	return ov
}

// AvailableYears lists the years from the current one onward that have
// records, newest first.
func (s *Store) AvailableYears() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	current := s.now().Year()
	var years []int
	for _, rec := range s.spendings {
		if rec.Year >= current && !slices.Contains(years, rec.Year) {
			years = append(years, rec.Year)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// AvailableMonths lists the month labels of year that have records, in
// calendar order. Records are grouped by their stored label, the same key
// the monthly aggregates use. For the current year, months before the
// current one are left out.
func (s *Store) AvailableMonths(year int) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	seen := map[string]time.Month{}
	for _, rec := range s.spendings {
		if rec.Year != year {
			continue
		}
		if _, ok := seen[rec.Month]; ok {
			continue
		}
		m := labelMonth(rec)
		if year == now.Year() && m < now.Month() {
			continue
		}
		seen[rec.Month] = m
	}

	months := make([]string, 0, len(seen))
	for label := range seen {
		months = append(months, label)
	}
	sort.Slice(months, func(i, j int) bool {
		return seen[months[i]] < seen[months[j]]
	})
	return months
}

// labelMonth resolves the calendar month of a record's stored label. A label
// that is not an English month name falls back to the record date.
func labelMonth(rec core.Spending) time.Month {
	if t, err := time.Parse("January", rec.Month); err == nil {
		return t.Month()
	}
	return rec.Date.Month()
}

// MonthSummary returns the aggregate for one month label in year.
func (s *Store) MonthSummary(year int, month string) (core.MonthlyData, bool) {
	for _, m := range s.GetMonthlyData(year) {
		if m.Month == month {
			return m, true
		}
	}
	return core.MonthlyData{}, false
}

// History returns every record, newest first.
func (s *Store) History() []core.Spending {
	s.mu.RLock()
	out := append([]core.Spending{}, s.spendings...)
	s.mu.RUnlock()

	sortNewestFirst(out)
	return out
}

// CategoryExpenses returns the records filed under name in year, newest
// first.
func (s *Store) CategoryExpenses(name string, year int) []core.Spending {
	s.mu.RLock()
	out := []core.Spending{}
	for _, rec := range s.spendings {
		if rec.Category == name && rec.Year == year {
			out = append(out, rec)
		}
	}
	s.mu.RUnlock()

	sortNewestFirst(out)
	return out
}

// CategoryByName finds a category by exact name.
func (s *Store) CategoryByName(name string) (core.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.categories {
		if c.Name == name {
			return c, true
		}
	}
	return core.Category{}, false
}

func sortNewestFirst(recs []core.Spending) {
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Date.After(recs[j].Date)
	})
}
