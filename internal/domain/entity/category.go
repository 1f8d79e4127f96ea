package entity

// CategoryID identifies a catalog category.
type CategoryID int64

const (
	CategoryComputers CategoryID = 1
	CategoryFashion   CategoryID = 2
)

// Category is static reference data.
type Category struct {
	ID   CategoryID
	Name string
}

// DefaultCategories returns the seeded categories.
func DefaultCategories() []Category {
	return []Category{
		{ID: CategoryComputers, Name: "Computers"},
		{ID: CategoryFashion, Name: "Fashion"},
	}
}
