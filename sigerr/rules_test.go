package sigerr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigerr-io/sigerr/sigerr"
)

func Test_ValidateRules(t *testing.T) {
	assert.NoError(t, sigerr.ValidateRules(map[string]string{"r1": "true"}))
	assert.Error(t, sigerr.ValidateRules(map[string]string{"": "true"}))
	assert.Error(t, sigerr.ValidateRules(map[string]string{"r1": ""}))
}

func Test_NewRuleSet_CompileErrorSurfacesAtConstruction(t *testing.T) {
	_, err := sigerr.NewRuleSet(map[string]string{"broken": "type >"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func Test_RuleSet_Matches(t *testing.T) {
	rs, err := sigerr.NewRuleSet(map[string]string{
		"r_socket":    `has_code && type contains "net."`,
		"r_chained":   `depth > 1`,
		"r_panic":     `type contains "panic"`,
		"r_has_frame": `frames > 0`,
	})
	require.NoError(t, err)

	rec := chainedRecord()
	rec.ErrorCode = code(111)
	rec.TypeName = "net.OpError"

	// Sorted IDs, socket and chained and frame rules all hold.
	assert.Equal(t, []string{"r_chained", "r_has_frame", "r_socket"}, rs.Matches(rec))

	assert.Empty(t, rs.Matches(&sigerr.Record{TypeName: "app.Oops", Message: "x"}))
	assert.Nil(t, rs.Matches(nil))
}

func Test_RuleSet_TypeVariableShadowsBuiltin(t *testing.T) {
	// expr ships a builtin type() function; the occurrence variable of the
	// same name must win so documented rules compile and evaluate.
	rs, err := sigerr.NewRuleSet(map[string]string{
		"r_exact":    `type == "net.OpError"`,
		"r_contains": `type contains "net."`,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"r_contains", "r_exact"},
		rs.Matches(&sigerr.Record{TypeName: "net.OpError", Message: "x"}))
	assert.Empty(t, rs.Matches(&sigerr.Record{TypeName: "app.Oops", Message: "x"}))
}

func Test_RuleSet_EvaluationFailureIsNonMatch(t *testing.T) {
	rs, err := sigerr.NewRuleSet(map[string]string{
		// A variable outside the occurrence env never matches.
		"r_undefined": `tenant == "acme"`,
		"r_always":    `true`,
	})
	require.NoError(t, err)

	got := rs.Matches(&sigerr.Record{TypeName: "app.Oops", Message: "x"})
	assert.Equal(t, []string{"r_always"}, got)
}
