package presenters

import "github.com/amar2mail9/Polytechub.com/domain/content"

// CategoryVM is one category entry in the sidebar or hero sections.
type CategoryVM struct {
	Slug        string
	Name        string
	Description string
	Count       int
	URL         string
}

// CategoryPresenter transforms categories for display.
type CategoryPresenter struct{}

// NewCategoryPresenter creates a category presenter.
func NewCategoryPresenter() *CategoryPresenter {
	return &CategoryPresenter{}
}

// ToCategoryVM converts one category.
func (p *CategoryPresenter) ToCategoryVM(c *content.Category) CategoryVM {
	description := c.Description
	if description == "" {
		description = "No description available."
	}
	return CategoryVM{
		Slug:        c.Slug,
		Name:        c.Name,
		Description: description,
		Count:       c.Count,
		URL:         "/category/" + c.Slug,
	}
}

// ToCategoryVMs converts a category collection, preserving order.
func (p *CategoryPresenter) ToCategoryVMs(categories []*content.Category) []CategoryVM {
	vms := make([]CategoryVM, 0, len(categories))
	for _, c := range categories {
		vms = append(vms, p.ToCategoryVM(c))
	}
	return vms
}
