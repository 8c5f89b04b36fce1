package modio

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Operator suffixes understood by the list endpoints.
const (
	suffixNot        = "-not"
	suffixLike       = "-lk"
	suffixNotLike    = "-not-lk"
	suffixIn         = "-in"
	suffixNotIn      = "-not-in"
	suffixMin        = "-min"
	suffixMax        = "-max"
	suffixSmaller    = "-st"
	suffixGreater    = "-gt"
	suffixBitwiseAnd = "-bitwise-and"
)

// fieldAliases rewrites user-facing field names to their wire names.
var fieldAliases = map[string]string{
	"date":         "date_added",
	"live":         "date_live",
	"updated":      "date_updated",
	"expires":      "date_expires",
	"game":         "game_id",
	"mod":          "mod_id",
	"member":       "member_id",
	"submitter":    "submitted_by",
	"homepage":     "homepage_url",
	"profile":      "profile_url",
	"kvp":          "metadata_kvp",
	"metadata":     "metadata_blob",
	"key":          "metakey",
	"value":        "metavalue",
	"tag":          "tags",
	"type":         "event_type",
	"maturity":     "maturity_option",
	"presentation": "presentation_option",
	"submission":   "submission_option",
	"curation":     "curation_option",
	"community":    "community_options",
	"revenue":      "revenue_options",
	"api":          "api_access_options",
	"ugc":          "ugc_name",
	"team_id":      "team",
	"virus":        "virus_positive",
}

// filterPair is one accumulated predicate.
type filterPair struct {
	key   string
	value string
}

// Filter accumulates typed predicates, a sort key, and pagination for a
// list endpoint, and lowers them to query parameters. A Filter is an
// ordinary value: two filters never share state, the zero value is
// usable, and an empty filter serializes to no parameters. Setting the
// same field with the same operator twice keeps the later value.
type Filter struct {
	pairs []filterPair
}

// NewFilter creates an empty filter.
func NewFilter() *Filter {
	return &Filter{}
}

// alias rewrites a user-facing field name to its wire name.
func alias(field string) string {
	if wire, ok := fieldAliases[field]; ok {
		return wire
	}

	return field
}

// formatFilterValue lowers a predicate value to its wire string.
func formatFilterValue(value interface{}) string {
	switch v := value.(type) {
	case EventType:
		return v.Encode()
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// set stores a pair, overwriting an earlier pair with the same key.
func (f *Filter) set(key, value string) *Filter {
	for i := range f.pairs {
		if f.pairs[i].key == key {
			f.pairs[i].value = value

			return f
		}
	}

	f.pairs = append(f.pairs, filterPair{key: key, value: value})

	return f
}

func (f *Filter) op(field, suffix string, value interface{}) *Filter {
	return f.set(alias(field)+suffix, formatFilterValue(value))
}

func (f *Filter) join(field, suffix string, values []interface{}) *Filter {
	parts := make([]string, 0, len(values))
	for _, value := range values {
		parts = append(parts, formatFilterValue(value))
	}

	return f.set(alias(field)+suffix, strings.Join(parts, ","))
}

// Text performs a full-text search over the endpoint's indexed columns.
func (f *Filter) Text(query string) *Filter {
	return f.set("_q", query)
}

// Equals matches rows whose field equals the value exactly.
func (f *Filter) Equals(field string, value interface{}) *Filter {
	return f.op(field, "", value)
}

// NotEquals matches rows whose field differs from the value.
func (f *Filter) NotEquals(field string, value interface{}) *Filter {
	return f.op(field, suffixNot, value)
}

// Like matches with SQL LIKE semantics; "*" is the wildcard.
func (f *Filter) Like(field string, value interface{}) *Filter {
	return f.op(field, suffixLike, value)
}

// NotLike matches rows the pattern does not cover.
func (f *Filter) NotLike(field string, value interface{}) *Filter {
	return f.op(field, suffixNotLike, value)
}

// In matches rows whose field equals any of the values.
func (f *Filter) In(field string, values ...interface{}) *Filter {
	return f.join(field, suffixIn, values)
}

// NotIn matches rows whose field equals none of the values.
func (f *Filter) NotIn(field string, values ...interface{}) *Filter {
	return f.join(field, suffixNotIn, values)
}

// Min matches rows whose field is greater than or equal to the value.
func (f *Filter) Min(field string, value interface{}) *Filter {
	return f.op(field, suffixMin, value)
}

// Max matches rows whose field is less than or equal to the value.
func (f *Filter) Max(field string, value interface{}) *Filter {
	return f.op(field, suffixMax, value)
}

// SmallerThan matches rows whose field is strictly less than the value.
func (f *Filter) SmallerThan(field string, value interface{}) *Filter {
	return f.op(field, suffixSmaller, value)
}

// GreaterThan matches rows whose field is strictly greater than the value.
func (f *Filter) GreaterThan(field string, value interface{}) *Filter {
	return f.op(field, suffixGreater, value)
}

// BitwiseAnd matches rows whose field shares bits with the value. Used
// with option bitfields such as maturity and community options.
func (f *Filter) BitwiseAnd(field string, value interface{}) *Filter {
	return f.op(field, suffixBitwiseAnd, value)
}

// Sort orders results by the field, descending when reverse is set.
func (f *Filter) Sort(field string, reverse bool) *Filter {
	key := alias(field)
	if reverse {
		key = "-" + key
	}

	return f.set("_sort", key)
}

// Limit caps the number of results per page.
func (f *Filter) Limit(limit int) *Filter {
	return f.set("_limit", strconv.Itoa(limit))
}

// Offset skips the first n results.
func (f *Filter) Offset(offset int) *Filter {
	return f.set("_offset", strconv.Itoa(offset))
}

// ToValues serializes every accumulated pair into query parameters.
// A nil filter serializes to an empty set.
func (f *Filter) ToValues() url.Values {
	values := url.Values{}
	if f == nil {
		return values
	}

	for _, pair := range f.pairs {
		values.Set(pair.key, pair.value)
	}

	return values
}
