package store

import "spending/internal/core"

type monthKey struct {
	month string
	year  int
}

// Recompute derives the monthly aggregates from scratch.
//
// Only records from currentYear take part. Groups appear in the order their
// first record appears. Each group carries a snapshot of every category; a
// record whose category name matches none of them still counts toward the
// group total.
func Recompute(spendings []core.Spending, categories []core.Category, currentYear int) []core.MonthlyData {
	out := make([]core.MonthlyData, 0)
	index := make(map[monthKey]int)

	for _, s := range spendings {
		if s.Year != currentYear {
			continue
		}

		k := monthKey{month: s.Month, year: s.Year}
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, core.MonthlyData{
				Month:      s.Month,
				Year:       s.Year,
				Categories: core.Snapshot(categories),
			})
		}

		m := &out[i]
		m.TotalSpent = m.TotalSpent.Add(s.Amount)
		for j := range m.Categories {
			if m.Categories[j].Name == s.Category {
				m.Categories[j].TotalSpent = m.Categories[j].TotalSpent.Add(s.Amount)
				break
			}
		}
	}

	return out
}

// sumCategory adds up every record filed under name in year.
func sumCategory(spendings []core.Spending, name string, year int) core.Money {
	var total core.Money
	for _, s := range spendings {
		if s.Category == name && s.Year == year {
			total = total.Add(s.Amount)
		}
	}
	return total
}

func cloneMonthly(in core.MonthlyData) core.MonthlyData {
	in.Categories = append([]core.Category(nil), in.Categories...)
	return in
}
