package course

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"
)

// Filter narrows an already fetched course list. Empty fields match everything.
type Filter struct {
	Search   string
	Category string
	Tag      string
}

func (f Filter) Match(c Course) bool {
	if f.Category != "" && !strings.EqualFold(c.Category, f.Category) {
		return false
	}
	if f.Tag != "" && !slices.ContainsFunc(c.Tags, func(tag string) bool {
		return strings.EqualFold(tag, f.Tag)
	}) {
		return false
	}
	if search := strings.TrimSpace(f.Search); search != "" {
		search = strings.ToLower(search)
		return strings.Contains(strings.ToLower(c.Title), search) ||
			strings.Contains(strings.ToLower(c.Description), search)
	}
	return true
}

// Apply returns the matching courses in their original order.
func (f Filter) Apply(courses []Course) []Course {
	result := make([]Course, 0, len(courses))
	for _, c := range courses {
		if f.Match(c) {
			result = append(result, c)
		}
	}
	return result
}

type SortOrder string

const (
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)

var (
	_ pflag.Value = (*SortOrder)(nil)
)

// Set implements pflag.Value.
func (s *SortOrder) Set(v string) error {
	switch v {
	case string(SortAscending):
		*s = SortAscending
	case string(SortDescending):
		*s = SortDescending
	default:
		return fmt.Errorf("invalid value %q, valid values are %q or %q", v, SortAscending, SortDescending)
	}
	return nil
}

// String implements pflag.Value.
func (s *SortOrder) String() string {
	if s == nil {
		return ""
	}
	return string(*s)
}

// Type implements pflag.Value.
func (s *SortOrder) Type() string {
	return "SortOrder"
}

// SortByTitle sorts courses in place, case-insensitively.
func SortByTitle(courses []Course, order SortOrder) {
	slices.SortStableFunc(courses, func(a, b Course) int {
		cmp := strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		if order == SortDescending {
			return -cmp
		}
		return cmp
	})
}
