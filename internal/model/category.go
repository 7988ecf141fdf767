package model

// Category is one entry of the fixed category set.
type Category struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// Categories is the fixed category set shipped with the app.
var Categories = []Category{
	{ID: "work", Label: "Work", Icon: "briefcase"},
	{ID: "personal", Label: "Personal", Icon: "user"},
	{ID: "study", Label: "Study", Icon: "book"},
	{ID: "health", Label: "Health", Icon: "heart"},
	{ID: "shopping", Label: "Shopping", Icon: "shopping-cart"},
}

// CategoryByID returns the category with the given id, or false when unknown.
func CategoryByID(id string) (Category, bool) {
	for _, cat := range Categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}

// ValidCategory reports whether id refers to a known category.
// The empty id is valid: it means "uncategorized".
func ValidCategory(id string) bool {
	if id == "" {
		return true
	}
	_, ok := CategoryByID(id)
	return ok
}
