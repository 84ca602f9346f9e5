// Package cookie manages the dashboard session cookie and rebuilds the Cookie
// header that is forwarded to the backend's GraphQL endpoint.
//
//	opts := cookie.SessionOptions{Name: "dashboard_session", MaxAge: 12 * time.Hour}
//	_ = cookie.SetSessionID(w, id, opts)
//	id, err := cookie.GetSessionID(r, opts.Name)
//
// Cookies issued by the backend (for example after an OAuth login) reach the
// dashboard when both share a parent domain; ForwardHeader passes them on.
package cookie
