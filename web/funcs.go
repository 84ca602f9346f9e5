package web

import (
	"html/template"
	"strconv"
	"strings"
	"time"

	"github.com/ncobase/dashboard/config"
	"github.com/ncobase/dashboard/structs"
)

// InvalidDate is rendered for timestamps that are not epoch milliseconds.
const InvalidDate = "Invalid Date"

// Formatter renders post fields for display.
type Formatter struct {
	layout   string
	location *time.Location
}

// NewFormatter creates a Formatter from the display config.
func NewFormatter(c *config.Display) *Formatter {
	f := &Formatter{layout: config.DefaultTimeLayout, location: time.Local}
	if c != nil {
		if c.TimeLayout != "" {
			f.layout = c.TimeLayout
		}
		if c.Location != nil {
			f.location = c.Location
		}
	}
	return f
}

// Timestamp formats epoch milliseconds held in a string.
func (f *Formatter) Timestamp(ms string) string {
	n, err := strconv.ParseInt(strings.TrimSpace(ms), 10, 64)
	if err != nil {
		return InvalidDate
	}
	return time.UnixMilli(n).In(f.location).Format(f.layout)
}

// Author formats an author as "username (fullname)", or the username alone
// when there is no full name.
func (f *Formatter) Author(a structs.PostAuthor) string {
	if a.Fullname == nil || *a.Fullname == "" {
		return a.Username
	}
	return a.Username + " (" + *a.Fullname + ")"
}

// FuncMap returns the template functions.
func (f *Formatter) FuncMap() template.FuncMap {
	return template.FuncMap{
		"formatTimestamp": f.Timestamp,
		"formatAuthor":    f.Author,
		"add": func(a, b int) int {
			return a + b
		},
	}
}
