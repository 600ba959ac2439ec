package core

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	ErrMissingFields     = errors.New("missing required fields")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrEmptyCategoryName = errors.New("empty category name")
	ErrCategoryExists    = errors.New("category already exists")
	ErrDescriptionLength = errors.New("description too long (max 200 characters)")
)

const maxDescriptionLen = 200

// SpendingDraft is raw user input for a new spending, before validation.
type SpendingDraft struct {
	Amount      string
	Category    string
	Description string
	Date        time.Time
}

// Validate checks the draft at the presentation boundary and returns the
// record input the Domain Store expects. A zero Date means "now".
func (d SpendingDraft) Validate(now time.Time) (NewSpending, error) {
	category := strings.TrimSpace(d.Category)
	description := strings.TrimSpace(d.Description)
	if strings.TrimSpace(d.Amount) == "" || category == "" || description == "" {
		return NewSpending{}, ErrMissingFields
	}
	if utf8.RuneCountInString(description) > maxDescriptionLen {
		return NewSpending{}, ErrDescriptionLength
	}
	amount, err := ParseAmount(d.Amount)
	if err != nil {
		return NewSpending{}, err
	}
	date := d.Date
	if date.IsZero() {
		date = now
	}
	return NewSpending{
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        date,
	}, nil
}

// ValidateCategoryName rejects empty names and names that already exist,
// ignoring case.
func ValidateCategoryName(name string, existing []Category) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyCategoryName
	}
	for _, c := range existing {
		if strings.EqualFold(c.Name, name) {
			return "", ErrCategoryExists
		}
	}
	return name, nil
}
