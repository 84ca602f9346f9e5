package nanoid

import (
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/ncobase/dashboard/consts"
)

const (
	defaultSize = 16
)

func getSize(l ...int) int {
	size := defaultSize
	if len(l) > 0 {
		size = l[0]
	}
	return size
}

// Must generate optional length nanoid
func Must(l ...int) string {
	size := getSize(l...)
	return gonanoid.Must(size)
}

// String generate optional length nanoid, use const by default
func String(l ...int) string {
	size := getSize(l...)
	return gonanoid.MustGenerate(consts.LowerUpper, size)
}

// SessionID generates a dashboard session id
func SessionID() string {
	return gonanoid.MustGenerate(consts.NumLowerUpper, consts.SessionIDSize)
}

// IsSessionID verify is session id
func IsSessionID(id string) bool {
	if len(id) != consts.SessionIDSize {
		return false
	}
	for _, r := range id {
		if !strings.ContainsRune(consts.NumLowerUpper, r) {
			return false
		}
	}
	return true
}
