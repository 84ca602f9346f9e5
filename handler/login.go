package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/dashboard/ecode"
	"github.com/ncobase/dashboard/net/resp"
	"github.com/ncobase/dashboard/service"
	"github.com/ncobase/dashboard/web"
)

// LoginPage renders the provider buttons.
func (h *Handler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, web.LoginPage, web.PageData{
		Title:     "Proza admin dashboard - login",
		Path:      c.Request.URL.Path,
		Providers: h.svc.Login.Providers(),
	})
}

// Login redirects the browser to the backend's login flow.
// Test logins take the role from ?user=.
func (h *Handler) Login(c *gin.Context) {
	provider := c.Param("provider")

	var (
		target string
		err    error
	)
	if provider == service.TestProvider {
		target, err = h.svc.Login.TestLoginURL(c.Query("user"))
	} else {
		target, err = h.svc.Login.AuthURL(provider)
	}

	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownRole):
			resp.Fail(c.Writer, resp.InvalidParam(ecode.FieldIsInvalid("user")))
		default:
			resp.Fail(c.Writer, resp.InvalidParam(ecode.FieldIsInvalid("provider")))
		}
		return
	}

	c.Redirect(http.StatusFound, target)
}
