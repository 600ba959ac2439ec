package cli

import (
	"errors"

	"spending/internal/core"
)

// Messages shown to the user when input is rejected or a save fails.
const (
	MsgFillAllFields     = "Please fill in all fields"
	MsgInvalidAmount     = "Please enter a valid amount"
	MsgInvalidDate       = "Please enter a valid date (YYYY-MM-DD)"
	MsgDescriptionLength = "Description must be at most 200 characters"
	MsgEnterCategoryName = "Please enter a category name"
	MsgCategoryExists    = "Category already exists"
	MsgAddExpenseFailed  = "Failed to add expense"
	MsgAddCategoryFailed = "Failed to add category"
	MsgDeleteFailed      = "Failed to delete expense"
	MsgUnknownCategory   = "Category not found"
)

// userMessage maps a validation error to the text shown for it.
func userMessage(err error) string {
	switch {
	case errors.Is(err, core.ErrMissingFields):
		return MsgFillAllFields
	case errors.Is(err, core.ErrInvalidAmount):
		return MsgInvalidAmount
	case errors.Is(err, core.ErrDescriptionLength):
		return MsgDescriptionLength
	case errors.Is(err, core.ErrEmptyCategoryName):
		return MsgEnterCategoryName
	case errors.Is(err, core.ErrCategoryExists):
		return MsgCategoryExists
	default:
		return err.Error()
	}
}
