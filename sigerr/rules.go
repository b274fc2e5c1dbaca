package sigerr

import (
	"fmt"
	"sort"

	"github.com/expr-lang/expr"

	"github.com/sigerr-io/sigerr/internal/eval"
)

// RuleSet holds named grouping predicates written as expr-lang expressions.
// Rules run against a flattened view of an occurrence; the matching rule IDs
// let callers route or suppress occurrences before fingerprinting. Dedup
// policy itself stays outside the engine.
//
// Variables available to a rule: type, message, code, has_code, frames,
// depth.
type RuleSet struct {
	rules map[string]string
	cache *eval.Cache
	opts  []expr.Option
}

// ValidateRules is a lightweight guard for obvious mistakes.
func ValidateRules(rules map[string]string) error {
	for id, src := range rules {
		if id == "" {
			return fmt.Errorf("empty rule id")
		}
		if src == "" {
			return fmt.Errorf("rule %s has empty source", id)
		}
	}
	return nil
}

// NewRuleSet compiles every rule eagerly so malformed predicates surface at
// construction time rather than per occurrence.
func NewRuleSet(rules map[string]string) (*RuleSet, error) {
	if err := ValidateRules(rules); err != nil {
		return nil, err
	}
	rs := &RuleSet{
		rules: rules,
		cache: eval.NewCache(),
		// Compiling against a prototype env makes the occurrence variables
		// shadow expr builtins of the same name (type, in particular).
		// Undefined variables stay legal so an overreaching rule is a
		// non-match rather than a construction failure.
		opts: []expr.Option{
			expr.Env(occurrenceEnv(&Record{})),
			expr.AllowUndefinedVariables(),
		},
	}
	for id, src := range rules {
		if _, err := rs.cache.GetOrCompile(src, rs.opts...); err != nil {
			return nil, fmt.Errorf("compile rule %s: %w", id, err)
		}
	}
	return rs, nil
}

// Matches returns the IDs of rules whose predicate evaluates to true for
// rec, sorted for determinism. Evaluation failures count as non-matches.
func (rs *RuleSet) Matches(rec *Record) []string {
	if rec == nil {
		return nil
	}
	env := occurrenceEnv(rec)
	out := make([]string, 0, len(rs.rules))
	for id, src := range rs.rules {
		ok, err := eval.RunBool(src, env, rs.cache, rs.opts...)
		if err == nil && ok {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

// occurrenceEnv flattens rec into the variables rules can reference.
func occurrenceEnv(rec *Record) map[string]interface{} {
	var code int64
	hasCode := rec.ErrorCode != nil
	if hasCode {
		code = *rec.ErrorCode
	}
	depth := 0
	for cur := rec; cur != nil; cur = cur.Cause {
		depth++
	}
	return map[string]interface{}{
		"type":     rec.TypeName,
		"message":  rec.Message,
		"code":     code,
		"has_code": hasCode,
		"frames":   len(rec.Frames),
		"depth":    depth,
	}
}
