// Package paging holds the page-size options and index arithmetic shared by the
// posts list and its pagination control.
//
// The backend pages are 1-indexed, the control is 0-indexed:
//
//	page := paging.FromPageIndex(1) // 2
//	idx := paging.ToPageIndex(page) // 1
//	w := paging.Range(idx, 25, 60)  // {26 50 60}
//	w.Label()                       // "26–50 of 60"
package paging
