package core

// CategoryTotal is a category with its spending over a period.
type CategoryTotal struct {
	Category Category
	Total    Money
}

// YearOverview is the analysis view for one calendar year.
type YearOverview struct {
	Year       int
	TotalSpent Money
	Categories []CategoryTotal // only categories with spending, in category order
	Months     []MonthlyData   // only months with spending
	Top        CategoryTotal
	HasTop     bool
}
