// Package handler exposes the dashboard over HTTP with gin.
//
// Pages are rendered on the server. Every interaction on the posts list is a
// form POST under /posts/actions that updates the session's view and answers
// 303 See Other, so reloading never repeats an action.
package handler
