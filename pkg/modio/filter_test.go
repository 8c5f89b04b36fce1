package modio_test

import (
	"net/url"
	"testing"

	"github.com/fivetwenty-io/modio-client/pkg/modio"
	"github.com/stretchr/testify/assert"
)

//nolint:funlen // Test functions can be longer for detailed testing
func TestFilter_ToValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filter   *modio.Filter
		expected url.Values
	}{
		{
			name:     "empty filter",
			filter:   modio.NewFilter(),
			expected: url.Values{},
		},
		{
			name:     "nil filter",
			filter:   nil,
			expected: url.Values{},
		},
		{
			name:   "full text search",
			filter: modio.NewFilter().Text("The Lord of the Rings"),
			expected: url.Values{
				"_q": []string{"The Lord of the Rings"},
			},
		},
		{
			name:   "equality",
			filter: modio.NewFilter().Equals("id", 10),
			expected: url.Values{
				"id": []string{"10"},
			},
		},
		{
			name:   "negated equality",
			filter: modio.NewFilter().NotEquals("status", 1),
			expected: url.Values{
				"status-not": []string{"1"},
			},
		},
		{
			name:   "like and not like",
			filter: modio.NewFilter().Like("name", "Wizards*").NotLike("name", "*Demo"),
			expected: url.Values{
				"name-lk":     []string{"Wizards*"},
				"name-not-lk": []string{"*Demo"},
			},
		},
		{
			name:   "in joins values with commas",
			filter: modio.NewFilter().In("id", 3, 11, 16, 29),
			expected: url.Values{
				"id-in": []string{"3,11,16,29"},
			},
		},
		{
			name:   "not in",
			filter: modio.NewFilter().NotIn("id", 8, 13),
			expected: url.Values{
				"id-not-in": []string{"8,13"},
			},
		},
		{
			name:   "range operators",
			filter: modio.NewFilter().Min("game", 20).Max("game", 30).SmallerThan("id", 200).GreaterThan("id", 100),
			expected: url.Values{
				"game_id-min": []string{"20"},
				"game_id-max": []string{"30"},
				"id-st":       []string{"200"},
				"id-gt":       []string{"100"},
			},
		},
		{
			name:   "bitwise and",
			filter: modio.NewFilter().BitwiseAnd("maturity", 5),
			expected: url.Values{
				"maturity_option-bitwise-and": []string{"5"},
			},
		},
		{
			name:   "sort ascending",
			filter: modio.NewFilter().Sort("name", false),
			expected: url.Values{
				"_sort": []string{"name"},
			},
		},
		{
			name:   "sort descending prefixes a dash",
			filter: modio.NewFilter().Sort("date", true),
			expected: url.Values{
				"_sort": []string{"-date_added"},
			},
		},
		{
			name:   "pagination",
			filter: modio.NewFilter().Limit(20).Offset(5),
			expected: url.Values{
				"_limit":  []string{"20"},
				"_offset": []string{"5"},
			},
		},
		{
			name: "combined query",
			filter: modio.NewFilter().
				Text("The Lord").
				Equals("id", 10).
				Like("name", "W*").
				In("id", 3, 11).
				Sort("name", false).
				Limit(20).
				Offset(5),
			expected: url.Values{
				"_q":      []string{"The Lord"},
				"id":      []string{"10"},
				"name-lk": []string{"W*"},
				"id-in":   []string{"3,11"},
				"_sort":   []string{"name"},
				"_limit":  []string{"20"},
				"_offset": []string{"5"},
			},
		},
		{
			name:   "repeated key keeps later value",
			filter: modio.NewFilter().Equals("id", 1).Equals("id", 2),
			expected: url.Values{
				"id": []string{"2"},
			},
		},
		{
			name:   "event type values encode to wire form",
			filter: modio.NewFilter().Equals("type", modio.EventFileChanged),
			expected: url.Values{
				"event_type": []string{"MODFILE_CHANGED"},
			},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, testCase.filter.ToValues())
		})
	}
}

func TestFilter_FieldAliases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		field string
		wire  string
	}{
		{"date", "date_added"},
		{"live", "date_live"},
		{"updated", "date_updated"},
		{"expires", "date_expires"},
		{"game", "game_id"},
		{"mod", "mod_id"},
		{"submitter", "submitted_by"},
		{"homepage", "homepage_url"},
		{"kvp", "metadata_kvp"},
		{"metadata", "metadata_blob"},
		{"virus", "virus_positive"},
		{"tag", "tags"},
		{"name", "name"},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.field, func(t *testing.T) {
			t.Parallel()

			values := modio.NewFilter().Equals(testCase.field, 1).ToValues()
			assert.Equal(t, "1", values.Get(testCase.wire))
		})
	}
}

func TestFilter_ValueIndependence(t *testing.T) {
	t.Parallel()

	base := modio.NewFilter().Equals("game", 7)
	derived := modio.NewFilter().Equals("game", 7).Limit(5)

	assert.Len(t, base.ToValues(), 1)
	assert.Len(t, derived.ToValues(), 2)
}
