package logger

import (
	"strings"

	"github.com/sirupsen/logrus"
)

const maskedValue = "******"

// sensitiveFields are masked wherever they appear as log field names.
var sensitiveFields = []string{"cookie", "token", "authorization", "password", "secret"}

// DesensitizeHook masks sensitive log fields before any other hook or
// formatter sees them.
type DesensitizeHook struct{}

// NewDesensitizeHook creates the masking hook
func NewDesensitizeHook() *DesensitizeHook {
	return &DesensitizeHook{}
}

// Levels returns all log levels
func (h *DesensitizeHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire masks the entry's sensitive fields in place
func (h *DesensitizeHook) Fire(entry *logrus.Entry) error {
	for key, value := range entry.Data {
		if isSensitiveField(key) {
			entry.Data[key] = maskValue(value)
		}
	}
	return nil
}

func isSensitiveField(key string) bool {
	lower := strings.ToLower(key)
	for _, f := range sensitiveFields {
		if strings.Contains(lower, f) {
			return true
		}
	}
	return false
}

func maskValue(value any) any {
	if s, ok := value.(string); ok && s == "" {
		return s
	}
	return maskedValue
}
