package presenters

import "github.com/amar2mail9/Polytechub.com/domain/listing"

// PaginationVM is the pagination control strip: numbered page buttons plus
// Previous/Next with their enabled state.
type PaginationVM struct {
	CurrentPage int
	TotalPages  int
	Pages       []int
	PrevEnabled bool
	NextEnabled bool
	PrevPage    int
	NextPage    int
	State       string
}

// ToPaginationVM derives the control strip from the pagination state
// machine.
func ToPaginationVM(c listing.Controls) PaginationVM {
	pages := make([]int, c.PageCount)
	for i := range pages {
		pages[i] = i + 1
	}
	return PaginationVM{
		CurrentPage: c.Page,
		TotalPages:  c.PageCount,
		Pages:       pages,
		PrevEnabled: c.PrevEnabled,
		NextEnabled: c.NextEnabled,
		PrevPage:    c.Page - 1,
		NextPage:    c.Page + 1,
		State:       c.State.String(),
	}
}
