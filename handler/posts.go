package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/ncobase/dashboard/ecode"
	"github.com/ncobase/dashboard/net/resp"
	"github.com/ncobase/dashboard/service"
	"github.com/ncobase/dashboard/web"
)

const postsPath = "/posts"

type pageForm struct {
	Page *int `form:"page" binding:"required,min=0"`
}

type rowsForm struct {
	Rows int `form:"rows" binding:"required"`
}

type menuForm struct {
	PostID string `form:"post_id" binding:"required"`
	Anchor string `form:"anchor"`
}

// formFields maps form struct fields to their input names
var formFields = map[string]string{
	"Page":   "page",
	"Rows":   "rows",
	"PostID": "post_id",
}

// bindError turns a form binding failure into a 400 naming the field.
func bindError(err error) *resp.Exception {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		name := formFields[verrs[0].Field()]
		if verrs[0].Tag() == "required" {
			return resp.InvalidParam(ecode.FieldIsRequired(name))
		}
		return resp.InvalidParam(ecode.FieldIsInvalid(name))
	}
	return resp.InvalidParam(ecode.FieldIsInvalid())
}

// view returns the posts list of the request's session.
func (h *Handler) view(c *gin.Context) (*service.PostListView, bool) {
	s := currentSession(c)
	if s == nil || s.View == nil {
		resp.Fail(c.Writer, resp.InternalServer("session not initialized"))
		return nil, false
	}
	return s.View, true
}

func backToPosts(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, postsPath)
}

// PostsPage loads the listing and renders it.
func (h *Handler) PostsPage(c *gin.Context) {
	v, ok := h.view(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if err := v.Load(ctx); err != nil {
		h.logger.Warnf(ctx, "load posts: %v", err)
	}
	c.HTML(http.StatusOK, web.PostsPage, web.PageData{
		Title: "Posts",
		Path:  c.Request.URL.Path,
		View:  v.Snapshot(),
	})
}

// PostsView returns the current state as JSON.
func (h *Handler) PostsView(c *gin.Context) {
	v, ok := h.view(c)
	if !ok {
		return
	}
	resp.Success(c.Writer, v.Snapshot())
}

// ChangePage switches to the 0-indexed page.
func (h *Handler) ChangePage(c *gin.Context) {
	var form pageForm
	if err := c.ShouldBind(&form); err != nil {
		resp.Fail(c.Writer, bindError(err))
		return
	}
	v, ok := h.view(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if err := v.ChangePage(ctx, *form.Page); err != nil {
		if errors.Is(err, service.ErrInvalidPage) {
			resp.Fail(c.Writer, resp.InvalidParam(ecode.FieldIsInvalid("page")))
			return
		}
		h.logger.Warnf(ctx, "change page: %v", err)
	}
	backToPosts(c)
}

// ChangeRowsPerPage switches the page size.
func (h *Handler) ChangeRowsPerPage(c *gin.Context) {
	var form rowsForm
	if err := c.ShouldBind(&form); err != nil {
		resp.Fail(c.Writer, bindError(err))
		return
	}
	v, ok := h.view(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if err := v.ChangeRowsPerPage(ctx, form.Rows); err != nil {
		if errors.Is(err, service.ErrInvalidRowsPerPage) {
			resp.Fail(c.Writer, resp.InvalidParam(ecode.FieldIsInvalid("rows")))
			return
		}
		h.logger.Warnf(ctx, "change rows per page: %v", err)
	}
	backToPosts(c)
}

// OpenMenu opens the action menu of a post.
func (h *Handler) OpenMenu(c *gin.Context) {
	var form menuForm
	if err := c.ShouldBind(&form); err != nil {
		resp.Fail(c.Writer, bindError(err))
		return
	}
	v, ok := h.view(c)
	if !ok {
		return
	}
	if err := v.OpenMenu(form.PostID, form.Anchor); err != nil {
		resp.Fail(c.Writer, resp.InvalidParam(ecode.FieldIsRequired("post_id")))
		return
	}
	backToPosts(c)
}

// CloseMenu closes the action menu.
func (h *Handler) CloseMenu(c *gin.Context) {
	v, ok := h.view(c)
	if !ok {
		return
	}
	v.CloseMenu()
	backToPosts(c)
}

// EditPost navigates to the editor of the selected post.
func (h *Handler) EditPost(c *gin.Context) {
	v, ok := h.view(c)
	if !ok {
		return
	}
	target, err := v.EditPost()
	if err != nil {
		backToPosts(c)
		return
	}
	c.Redirect(http.StatusSeeOther, target)
}

// OpenDeleteDialog asks for confirmation.
func (h *Handler) OpenDeleteDialog(c *gin.Context) {
	v, ok := h.view(c)
	if !ok {
		return
	}
	v.OpenDeleteDialog()
	backToPosts(c)
}

// CancelDelete closes the confirmation.
func (h *Handler) CancelDelete(c *gin.Context) {
	v, ok := h.view(c)
	if !ok {
		return
	}
	v.CancelDelete()
	backToPosts(c)
}

// ConfirmDelete deletes the selected post.
func (h *Handler) ConfirmDelete(c *gin.Context) {
	v, ok := h.view(c)
	if !ok {
		return
	}
	// ConfirmDelete logs its own failures and leaves the dialog open, so the
	// redirect shows the outcome either way.
	_ = v.ConfirmDelete(c.Request.Context())
	backToPosts(c)
}

// EditPage renders the editor shell.
func (h *Handler) EditPage(c *gin.Context) {
	c.HTML(http.StatusOK, web.EditPage, web.PageData{
		Title:  "Edit post",
		Path:   c.Request.URL.Path,
		PostID: c.Param("id"),
	})
}
