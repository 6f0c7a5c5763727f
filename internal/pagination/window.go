// Package pagination derives the compact page selector shown under a result list.
//
// The selector never shows more than six page numbers. Larger ranges are
// compressed with ellipsis markers around the first, last and current pages.
package pagination

import "strconv"

// maxPlainPages is the largest page count rendered without ellipsis markers
const maxPlainPages = 6

// EllipsisText is how an ellipsis marker is rendered
const EllipsisText = "…"

// Token is one entry of a page window: either a page number or an ellipsis marker
type Token struct {
	Ellipsis bool
	Page     int
}

// Page returns a token for page n
func Page(n int) Token {
	return Token{Page: n}
}

// Ellipsis returns the ellipsis marker token
func Ellipsis() Token {
	return Token{Ellipsis: true}
}

// String renders the token for display
func (t Token) String() string {
	if t.Ellipsis {
		return EllipsisText
	}
	return strconv.Itoa(t.Page)
}

// Window is the ordered sequence of tokens shown in the page selector
type Window []Token

// Pages returns only the page numbers of the window, in order
func (w Window) Pages() []int {
	pages := make([]int, 0, len(w))
	for _, t := range w {
		if !t.Ellipsis {
			pages = append(pages, t.Page)
		}
	}
	return pages
}

// Contains reports whether page n is shown in the window
func (w Window) Contains(n int) bool {
	for _, t := range w {
		if !t.Ellipsis && t.Page == n {
			return true
		}
	}
	return false
}

// TotalPages returns ceil(totalRows / pageSize), or 0 when either is not positive
func TotalPages(totalRows, pageSize int) int {
	if totalRows <= 0 || pageSize <= 0 {
		return 0
	}
	pages := totalRows / pageSize
	if totalRows%pageSize > 0 {
		pages++
	}
	return pages
}

// ComputeWindow returns the page tokens for the current page out of totalPages.
//
//	totalPages <= 6            1 2 3 4 5 6
//	currentPage <= 3           1 2 3 … 12 13
//	currentPage >= total-2     1 2 … 11 12 13
//	otherwise                  1 … 6 7 8 … 13
func ComputeWindow(currentPage, totalPages int) Window {
	if totalPages <= 0 {
		return Window{}
	}

	if totalPages <= maxPlainPages {
		w := make(Window, 0, totalPages)
		for p := 1; p <= totalPages; p++ {
			w = append(w, Page(p))
		}
		return w
	}

	if currentPage <= 3 {
		return Window{Page(1), Page(2), Page(3), Ellipsis(), Page(totalPages - 1), Page(totalPages)}
	}

	if currentPage >= totalPages-2 {
		return Window{Page(1), Page(2), Ellipsis(), Page(totalPages - 2), Page(totalPages - 1), Page(totalPages)}
	}

	return Window{
		Page(1),
		Ellipsis(),
		Page(currentPage - 1),
		Page(currentPage),
		Page(currentPage + 1),
		Ellipsis(),
		Page(totalPages),
	}
}

// Prev returns the page before currentPage.
// ok is false on the first page or when there are no pages.
func Prev(currentPage, totalPages int) (page int, ok bool) {
	if totalPages <= 0 || currentPage <= 1 {
		return currentPage, false
	}
	return currentPage - 1, true
}

// Next returns the page after currentPage.
// ok is false on the last page or when there are no pages.
func Next(currentPage, totalPages int) (page int, ok bool) {
	if totalPages <= 0 || currentPage >= totalPages {
		return currentPage, false
	}
	return currentPage + 1, true
}
