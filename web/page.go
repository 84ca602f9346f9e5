package web

import "github.com/ncobase/dashboard/service"

// Page names
const (
	LoginPage = "login"
	PostsPage = "posts"
	EditPage  = "edit"
)

// PageData is passed to every page.
type PageData struct {
	Title     string
	Path      string
	Providers []service.Provider
	View      service.ViewSnapshot
	PostID    string
}
