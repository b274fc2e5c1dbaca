package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sigerr-io/sigerr/internal/normalize"
)

func Test_RemoveStopSpans(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "nested_same_kind_brackets_with_quotes_inside",
			in:   "foo(('bar')).",
			want: "foo.",
		},
		{
			name: "quote_span_swallows_unbalanced_bracket",
			in:   "foo'(foo'.",
			want: "foo.",
		},
		{
			name: "unterminated_quote_consumes_to_end",
			in:   "'",
			want: "",
		},
		{
			name: "no_stop_characters_returned_unchanged",
			in:   "foo",
			want: "foo",
		},
		{
			name: "empty_input",
			in:   "",
			want: "",
		},
		{
			name: "curly_and_square_spans",
			in:   "a{b}c[d]e",
			want: "ace",
		},
		{
			name: "differing_kinds_not_cross_balanced",
			in:   "a([b)c]d",
			want: "ac]d",
		},
		{
			name: "unbalanced_paren_consumes_to_end",
			in:   "a(bc",
			want: "a",
		},
		{
			name: "double_quote_span",
			in:   `host "db-01" down`,
			want: "host  down",
		},
		{
			name: "same_kind_nesting_honored",
			in:   "x((y)z(w))t",
			want: "xt",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, normalize.RemoveStopSpans(tc.in))
		})
	}
}

func Test_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "prefix_before_first_colon_only",
			in:   "Timeout: host=10.0.0.1",
			want: "Timeout",
		},
		{
			name: "same_prefix_different_detail",
			in:   "Timeout: host=10.0.0.2",
			want: "Timeout",
		},
		{
			name: "no_colon_normalizes_whole_message",
			in:   "request (id 42) failed",
			want: "request  failed",
		},
		{
			name: "colon_inside_span_is_not_top_level",
			in:   "pool (state: busy) exhausted",
			want: "pool  exhausted",
		},
		{
			name: "spans_in_prefix_removed",
			in:   "write [shard 7] rejected: quorum lost",
			want: "write  rejected",
		},
		{
			name: "empty_message",
			in:   "",
			want: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, normalize.Normalize(tc.in))
		})
	}
}
