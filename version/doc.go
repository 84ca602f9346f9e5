// Package version exposes the dashboard's build information.
//
// Set it at build time with ldflags:
//
//	go build -ldflags "\
//	  -X github.com/ncobase/dashboard/version.Version=1.2.3 \
//	  -X github.com/ncobase/dashboard/version.Branch=main \
//	  -X github.com/ncobase/dashboard/version.Revision=abc1234"
//
// Fields left unset are filled from the VCS stamp embedded by the go tool.
package version
