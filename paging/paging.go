package paging

import "fmt"

// DefaultRowsPerPage is the page size used until the user picks another one.
const DefaultRowsPerPage = 25

// RowsPerPageOptions lists the page sizes offered by the pagination control.
var RowsPerPageOptions = []int{10, 25, 100}

// ValidRowsPerPage reports whether n is one of RowsPerPageOptions.
func ValidRowsPerPage(n int) bool {
	for _, o := range RowsPerPageOptions {
		if o == n {
			return true
		}
	}
	return false
}

// ToPageIndex converts a 1-indexed server page to the 0-indexed control index.
func ToPageIndex(page int) int {
	if page < 1 {
		return 0
	}
	return page - 1
}

// FromPageIndex converts a 0-indexed control index to a 1-indexed server page.
func FromPageIndex(index int) int {
	if index < 0 {
		return 1
	}
	return index + 1
}

// Window describes the rows currently displayed.
type Window struct {
	From  int `json:"from"`
	To    int `json:"to"`
	Total int `json:"total"`
}

// Label renders the window as "from–to of total".
func (w Window) Label() string {
	return fmt.Sprintf("%d–%d of %d", w.From, w.To, w.Total)
}

// Range computes the displayed rows window for a page index.
// total is trusted as reported by the server.
func Range(pageIndex, rowsPerPage, total int) Window {
	if total <= 0 || rowsPerPage <= 0 {
		return Window{}
	}
	if pageIndex < 0 {
		pageIndex = 0
	}
	from := pageIndex*rowsPerPage + 1
	to := from + rowsPerPage - 1
	if to > total {
		to = total
	}
	if from > total {
		from = total
	}
	return Window{From: from, To: to, Total: total}
}

// PageCount returns how many pages total rows span.
func PageCount(rowsPerPage, total int) int {
	if rowsPerPage <= 0 || total <= 0 {
		return 0
	}
	return (total + rowsPerPage - 1) / rowsPerPage
}

// HasNext reports whether a page exists after pageIndex.
func HasNext(pageIndex, rowsPerPage, total int) bool {
	return pageIndex+1 < PageCount(rowsPerPage, total)
}
