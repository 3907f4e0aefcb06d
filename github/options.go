package github

import (
	"fmt"
	"maps"
	"net/url"
	"strings"
)

// SortDirection orders list results ascending or descending.
type SortDirection int

const (
	Asc SortDirection = iota
	Desc
)

func (d SortDirection) String() string {
	switch d {
	case Desc:
		return "desc"
	default:
		return "asc"
	}
}

// encodeParams serializes a parameter map as an application/x-www-form-urlencoded
// query string. The second return value reports presence: an empty map
// yields ("", false), never an empty query string.
func encodeParams(params map[string]string) (string, bool) {
	if len(params) == 0 {
		return "", false
	}
	values := url.Values{}
	for k, v := range params {
		values.Set(k, v)
	}
	return values.Encode(), true
}

// snapshotParams returns an independent copy of a builder's parameter map
// so built options values are unaffected by later builder mutation.
func snapshotParams(params map[string]string) map[string]string {
	return maps.Clone(params)
}

// joinValues stringifies a sequence of enum values and joins them with a
// comma, preserving caller order. Duplicates are not filtered; the wire
// format carries whatever the caller supplied.
func joinValues[T fmt.Stringer](values []T) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, v.String())
	}
	return strings.Join(parts, ",")
}
