package listing

// ControlState names the position of a listing within its page range.
// It is driven only by (page, pageCount).
type ControlState int

const (
	SinglePage ControlState = iota // pageCount == 1, both controls disabled
	AtFirst                        // page == 1, Previous disabled
	AtLast                         // page == pageCount, Next disabled
	Middle                         // both controls enabled
)

func (s ControlState) String() string {
	switch s {
	case SinglePage:
		return "single-page"
	case AtFirst:
		return "at-first"
	case AtLast:
		return "at-last"
	default:
		return "middle"
	}
}

// Controls is the derived enabled/disabled state of the Previous/Next
// pagination controls.
type Controls struct {
	Page        int
	PageCount   int
	State       ControlState
	PrevEnabled bool
	NextEnabled bool
}

// ControlsFor derives the control state for a page position. Inputs below 1
// are normalized to 1 so a zero-valued state still yields a sane single page.
func ControlsFor(page, pageCount int) Controls {
	if pageCount < 1 {
		pageCount = 1
	}
	page = clampPage(page, pageCount)

	c := Controls{Page: page, PageCount: pageCount}
	switch {
	case pageCount == 1:
		c.State = SinglePage
	case page == 1:
		c.State = AtFirst
		c.NextEnabled = true
	case page == pageCount:
		c.State = AtLast
		c.PrevEnabled = true
	default:
		c.State = Middle
		c.PrevEnabled = true
		c.NextEnabled = true
	}
	return c
}

// Allows reports whether a move to target is a legal transition. Targets
// outside [1, pageCount] are rejected: no state change, no fetch.
func (c Controls) Allows(target int) bool {
	return target >= 1 && target <= c.PageCount
}
