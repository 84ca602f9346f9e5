package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/ncobase/dashboard/data/repository"
	"github.com/ncobase/dashboard/graphql"
	"github.com/ncobase/dashboard/logging/logger"
	"github.com/ncobase/dashboard/paging"
	"github.com/ncobase/dashboard/structs"
)

var (
	// ErrInvalidRowsPerPage is returned for page sizes outside paging.RowsPerPageOptions.
	ErrInvalidRowsPerPage = errors.New("invalid rows per page")
	// ErrInvalidPage is returned for negative page indexes.
	ErrInvalidPage = errors.New("invalid page index")
	// ErrNoSelection is returned when an action needs a selected post.
	ErrNoSelection = errors.New("no post selected")
)

// EditPath is the route prefix of the post editor.
const EditPath = "/post/edit/"

// PostListView holds the state of one user's posts list page.
//
// Events are serialized by mu; GraphQL calls run with mu released. Listing
// requests are numbered and a response is applied only while its number is
// the latest issued, so a slow page never overwrites a newer one.
type PostListView struct {
	repo     repository.PostRepositoryInterface
	logger   *logger.Logger
	validate *validator.Validate

	mu          sync.Mutex
	rowsPerPage int
	selected    string
	menuOpen    bool
	menuAnchor  string
	dialogOpen  bool
	mutating    bool
	params      *structs.ListPostsParams
	list        *structs.PostList
	lastErr     error
	pending     int
	seq         uint64
	applied     uint64
}

// NewPostListView creates a view with the default page size.
func NewPostListView(repo repository.PostRepositoryInterface, l *logger.Logger) *PostListView {
	if l == nil {
		l = logger.NewNop()
	}
	return &PostListView{
		repo:        repo,
		logger:      l,
		validate:    validator.New(),
		rowsPerPage: paging.DefaultRowsPerPage,
	}
}

// Load fetches the current listing, answering from the cache when possible.
// The first load asks for {limit: rowsPerPage}; later loads repeat the last
// listing variables.
func (v *PostListView) Load(ctx context.Context) error {
	v.mu.Lock()
	params := structs.ListPostsParams{Limit: v.rowsPerPage}
	if v.params != nil {
		params = v.params.Clone()
	}
	v.mu.Unlock()

	return v.fetch(ctx, params, graphql.CacheFirst)
}

// ChangePage fetches page pageIndex+1 keeping the page size.
func (v *PostListView) ChangePage(ctx context.Context, pageIndex int) error {
	if pageIndex < 0 {
		return ErrInvalidPage
	}
	v.mu.Lock()
	page := paging.FromPageIndex(pageIndex)
	params := structs.ListPostsParams{Limit: v.rowsPerPage, Page: &page}
	v.mu.Unlock()

	return v.fetch(ctx, params, graphql.NetworkOnly)
}

// ChangeRowsPerPage switches the page size and goes back to the first page.
// The new size is kept even when the request fails, so the window is computed
// with it over the previous rows until the next successful fetch.
func (v *PostListView) ChangeRowsPerPage(ctx context.Context, n int) error {
	if !paging.ValidRowsPerPage(n) {
		return fmt.Errorf("%w: %d", ErrInvalidRowsPerPage, n)
	}
	v.mu.Lock()
	v.rowsPerPage = n
	v.mu.Unlock()

	page := 1
	return v.fetch(ctx, structs.ListPostsParams{Limit: n, Page: &page}, graphql.NetworkOnly)
}

// Refetch repeats the last listing request against the network.
func (v *PostListView) Refetch(ctx context.Context) error {
	v.mu.Lock()
	params := structs.ListPostsParams{Limit: v.rowsPerPage}
	if v.params != nil {
		params = v.params.Clone()
	}
	v.mu.Unlock()

	return v.fetch(ctx, params, graphql.NetworkOnly)
}

// fetch issues one listing request and applies its result if it is still
// the latest one.
func (v *PostListView) fetch(ctx context.Context, params structs.ListPostsParams, policy graphql.FetchPolicy) error {
	if err := v.validate.Struct(params); err != nil {
		return fmt.Errorf("invalid listing variables: %w", err)
	}

	v.mu.Lock()
	v.seq++
	seq := v.seq
	p := params.Clone()
	v.params = &p
	v.pending++
	v.mu.Unlock()

	list, err := v.repo.List(ctx, &params, policy)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.pending--

	if seq != v.seq {
		v.logger.Debugf(ctx, "discarding stale listPosts response #%d, latest is #%d", seq, v.seq)
		return nil
	}
	if err != nil {
		v.lastErr = err
		return fmt.Errorf("list posts: %w", err)
	}
	v.list = list
	v.lastErr = nil
	v.applied = seq
	return nil
}

// OpenMenu selects postID and opens its action menu.
func (v *PostListView) OpenMenu(postID, anchor string) error {
	if postID == "" {
		return ErrNoSelection
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.selected = postID
	v.menuOpen = true
	v.menuAnchor = anchor
	v.dialogOpen = false
	return nil
}

// CloseMenu closes the menu and clears the selection.
func (v *PostListView) CloseMenu() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closeMenu()
	v.selected = ""
}

func (v *PostListView) closeMenu() {
	v.menuOpen = false
	v.menuAnchor = ""
}

// EditPost closes the menu and returns the editor route of the selected post.
func (v *PostListView) EditPost() (string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closeMenu()
	if v.selected == "" {
		return "", ErrNoSelection
	}
	id := v.selected
	v.selected = ""
	return EditPath + url.PathEscape(id), nil
}

// OpenDeleteDialog closes the menu, then opens the delete confirmation.
func (v *PostListView) OpenDeleteDialog() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closeMenu()
	v.dialogOpen = true
}

// CancelDelete closes the dialog without deleting anything.
func (v *PostListView) CancelDelete() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.selected = ""
	v.dialogOpen = false
}

// ConfirmDelete deletes the selected post, refetches the listing and closes
// the dialog, in that order. Without a selection it only closes the dialog.
//
// A failed mutation is returned as is: the dialog stays open, nothing is
// refetched and the selection stays cleared.
func (v *PostListView) ConfirmDelete(ctx context.Context) error {
	v.mu.Lock()
	v.closeMenu()
	id := v.selected
	v.selected = ""
	if id == "" {
		v.dialogOpen = false
		v.mu.Unlock()
		return nil
	}
	v.mutating = true
	v.mu.Unlock()

	if _, err := v.repo.Delete(ctx, &structs.DeletePostParams{PostID: id}); err != nil {
		v.mu.Lock()
		v.mutating = false
		v.mu.Unlock()
		v.logger.Errorf(ctx, "delete post %s: %v", id, err)
		return fmt.Errorf("delete post %s: %w", id, err)
	}

	if err := v.Refetch(ctx); err != nil {
		v.mu.Lock()
		v.mutating = false
		v.mu.Unlock()
		v.logger.Errorf(ctx, "refetch after deleting post %s: %v", id, err)
		return err
	}

	v.mu.Lock()
	v.mutating = false
	v.dialogOpen = false
	v.selected = ""
	v.mu.Unlock()
	return nil
}

// ViewSnapshot is an immutable copy of a PostListView for rendering.
type ViewSnapshot struct {
	RowsPerPage        int             `json:"rowsPerPage"`
	RowsPerPageOptions []int           `json:"rowsPerPageOptions"`
	Posts              []*structs.Post `json:"posts"`
	TotalItems         int             `json:"totalItems"`
	Page               int             `json:"page"`
	PageIndex          int             `json:"pageIndex"`
	Window             paging.Window   `json:"window"`
	HasPrev            bool            `json:"hasPrev"`
	HasNext            bool            `json:"hasNext"`
	SelectedPost       string          `json:"selectedPost,omitempty"`
	MenuOpen           bool            `json:"menuOpen"`
	MenuAnchor         string          `json:"menuAnchor,omitempty"`
	DialogOpen         bool            `json:"dialogOpen"`
	Mutating           bool            `json:"mutating"`
	Loading            bool            `json:"loading"`
	Failed             bool            `json:"failed"`
	Seq                uint64          `json:"seq"`
}

// Snapshot copies the current state.
func (v *PostListView) Snapshot() ViewSnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	s := ViewSnapshot{
		RowsPerPage:        v.rowsPerPage,
		RowsPerPageOptions: append([]int(nil), paging.RowsPerPageOptions...),
		SelectedPost:       v.selected,
		MenuOpen:           v.menuOpen,
		MenuAnchor:         v.menuAnchor,
		DialogOpen:         v.dialogOpen,
		Mutating:           v.mutating,
		Seq:                v.applied,
	}

	if v.list == nil {
		s.Loading = v.pending > 0
		// failed only once a request has come back without data
		s.Failed = !s.Loading && v.seq > 0
		return s
	}

	s.Posts = make([]*structs.Post, 0, len(v.list.Items))
	for _, p := range v.list.Items {
		if p == nil {
			continue
		}
		cp := *p
		if p.Author.Fullname != nil {
			name := *p.Author.Fullname
			cp.Author.Fullname = &name
		}
		s.Posts = append(s.Posts, &cp)
	}
	s.TotalItems = v.list.TotalItems
	s.Page = v.list.Page
	s.PageIndex = paging.ToPageIndex(v.list.Page)
	s.Window = paging.Range(s.PageIndex, v.rowsPerPage, s.TotalItems)
	s.HasPrev = s.PageIndex > 0
	s.HasNext = paging.HasNext(s.PageIndex, v.rowsPerPage, s.TotalItems)
	return s
}

// LastError returns the error of the latest listing request, if any.
func (v *PostListView) LastError() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lastErr
}
