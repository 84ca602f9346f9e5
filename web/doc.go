// Package web holds the dashboard's embedded HTML pages and the functions
// that format post fields for them.
//
// Pages are parsed once into a Renderer that gin uses as its HTMLRender:
//
//	r, err := web.NewRenderer(web.NewFormatter(cfg.Display))
//	engine.HTMLRender = r
//	c.HTML(http.StatusOK, web.PostsPage, data)
package web
