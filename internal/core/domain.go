package core

import (
	"time"

	"github.com/google/uuid"
)

type (
	// Spending is one recorded expense. Month and Year are derived from Date
	// when the record is created and never recomputed.
	Spending struct {
		ID          string    `json:"id"`
		Amount      Money     `json:"amount"`
		Category    string    `json:"category"` // matched case-sensitively against Category.Name
		Description string    `json:"description"`
		Date        time.Time `json:"date"`
		Month       string    `json:"month"`
		Year        int       `json:"year"`
	}

	// NewSpending carries the caller-supplied fields of a spending record.
	NewSpending struct {
		Amount      Money
		Category    string
		Description string
		Date        time.Time
	}

	Category struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Color string `json:"color"`
		Icon  string `json:"icon"`
		// TotalSpent is only filled inside a MonthlyData snapshot.
		TotalSpent Money `json:"totalSpent"`
	}

	// MonthlyData aggregates the spendings of one (month, year) pair.
	MonthlyData struct {
		Month      string     `json:"month"`
		Year       int        `json:"year"`
		TotalSpent Money      `json:"totalSpent"`
		Categories []Category `json:"categories"`
	}
)

// NewID returns a fresh record identifier.
func NewID() string {
	return uuid.NewString()
}

// MonthLabel returns the long English month name of t ("March").
func MonthLabel(t time.Time) string {
	return t.Month().String()
}

// Build freezes the derived month and year of n into a new record.
func (n NewSpending) Build() Spending {
	return Spending{
		ID:          NewID(),
		Amount:      n.Amount,
		Category:    n.Category,
		Description: n.Description,
		Date:        n.Date,
		Month:       MonthLabel(n.Date),
		Year:        n.Date.Year(),
	}
}

// NewCategory creates a category with a generated ID and a zero total.
func NewCategory(name, color, icon string) Category {
	return Category{
		ID:    NewID(),
		Name:  name,
		Color: color,
		Icon:  icon,
	}
}

// Snapshot copies the category list with every total reset to zero.
func Snapshot(categories []Category) []Category {
	out := make([]Category, len(categories))
	for i, c := range categories {
		c.TotalSpent = Money{}
		out[i] = c
	}
	return out
}
