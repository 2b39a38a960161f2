package util

import (
	"fmt"
	"regexp"
)

// validRecordChars matches the characters Route53 accepts in record names:
// alphanumerics, hyphens, periods, underscores (service records such as
// _dmarc), the wildcard star, and the apex at-sign.
var validRecordChars = regexp.MustCompile(`^[a-zA-Z0-9.\-_*@]+$`)

// ValidateRecordName checks a caller-supplied record or zone name before it
// reaches the provider, catching obvious typos with a readable error.
func ValidateRecordName(name string) error {
	if len(name) < 2 {
		return fmt.Errorf("record name must be at least 2 characters, got %d", len(name))
	}

	if !validRecordChars.MatchString(name) {
		return fmt.Errorf("record name %q contains invalid characters", name)
	}

	if name[0] == '-' || name[0] == '.' {
		return fmt.Errorf("record name must not start with %q", string(name[0]))
	}

	return nil
}
