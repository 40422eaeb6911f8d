package entity

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Fields collects declarative field-rule violations for one entity. Rules are
// evaluated against the merged entity, so the same rule set covers create and
// partial update. The first violation recorded per field wins.
type Fields struct {
	errs map[string]string
}

func CheckFields() *Fields {
	return &Fields{errs: make(map[string]string)}
}

func (f *Fields) add(field, reason string) {
	if _, ok := f.errs[field]; !ok {
		f.errs[field] = reason
	}
}

// Add records an arbitrary violation, for rules too specific for a helper.
func (f *Fields) Add(field, reason string) {
	f.add(field, reason)
}

// Require rejects blank strings.
func (f *Fields) Require(field, v string) {
	if strings.TrimSpace(v) == "" {
		f.add(field, "is required")
	}
}

// MaxLen rejects strings longer than max characters. The limit counts
// characters, not bytes, so accented names are not penalized.
func (f *Fields) MaxLen(field, v string, max int) {
	if utf8.RuneCountInString(v) > max {
		f.add(field, fmt.Sprintf("must not exceed %d characters", max))
	}
}

// MaxLenPtr applies MaxLen to an optional string.
func (f *Fields) MaxLenPtr(field string, v *string, max int) {
	if v != nil {
		f.MaxLen(field, *v, max)
	}
}

// Email rejects malformed addresses; an absent or blank value is accepted.
func (f *Fields) Email(field string, v *string) {
	if v == nil || *v == "" {
		return
	}
	if !emailPattern.MatchString(*v) {
		f.add(field, "must be a valid email address")
	}
}

// Past rejects dates that are not strictly in the past; absent is accepted.
func (f *Fields) Past(field string, d *Date) {
	if d == nil {
		return
	}
	if !d.Time.Before(Today().Time) {
		f.add(field, "must be in the past")
	}
}

// TimeOfDay rejects values that are not "HH:MM" clock times.
func (f *Fields) TimeOfDay(field, v string) {
	if v == "" {
		return
	}
	if _, err := time.Parse("15:04", v); err != nil {
		f.add(field, "must be a HH:MM time")
	}
}

// Err returns nil when no rule was violated, otherwise a ValidationError
// with one reason per field.
func (f *Fields) Err() error {
	if len(f.errs) == 0 {
		return nil
	}
	return &ValidationError{Fields: f.errs}
}
