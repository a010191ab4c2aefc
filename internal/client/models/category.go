package models

import "fmt"

// Category groups notes.
type Category struct {
	ID    ID     `json:"id"`
	Title string `json:"title"`
}

// AllCategory returns the synthetic "All" entry.
func AllCategory() Category {
	return Category{ID: AllCategoryID, Title: AllCategoryTitle}
}

func (c Category) Validate() error {
	if c.ID.IsZero() {
		return fmt.Errorf("category: %w", ErrMissingID)
	}
	return nil
}

func ValidateCategories(cs []Category) error {
	for i, c := range cs {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("categories[%d]: %w", i, err)
		}
	}
	return nil
}
