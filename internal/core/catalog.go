package core

// DefaultCategoryIcon is used for categories created by the user.
const DefaultCategoryIcon = "📝"

// ChartColors is the palette custom categories cycle through.
var ChartColors = []string{
	"#FF6B6B",
	"#4ECDC4",
	"#45B7D1",
	"#FFA07A",
	"#98D8C8",
	"#DDA0DD",
	"#20B2AA",
	"#F0E68C",
	"#D3D3D3",
	"#FFB6C1",
	"#87CEEB",
	"#F4A460",
	"#98FB98",
	"#DDA0DD",
	"#F0E68C",
}

// NextCategoryColor picks the palette color for the n-th category.
func NextCategoryColor(n int) string {
	if n < 0 {
		n = 0
	}
	return ChartColors[n%len(ChartColors)]
}

// SeedCategories returns the categories present before any user data.
func SeedCategories() []Category {
	return []Category{
		{ID: "1", Name: "Food", Color: "#FF6B6B", Icon: "🍔"},
		{ID: "2", Name: "Shopping", Color: "#4ECDC4", Icon: "🛍️"},
		{ID: "3", Name: "Transport", Color: "#45B7D1", Icon: "🚗"},
		{ID: "4", Name: "Entertainment", Color: "#FFA07A", Icon: "🎬"},
		{ID: "5", Name: "Health", Color: "#98D8C8", Icon: "🏥"},
		{ID: "6", Name: "Education", Color: "#DDA0DD", Icon: "📚"},
		{ID: "7", Name: "Travel", Color: "#20B2AA", Icon: "✈️"},
		{ID: "8", Name: "Bills", Color: "#F0E68C", Icon: "💡"},
	}
}
