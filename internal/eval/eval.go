package eval

import (
	"fmt"

	"github.com/expr-lang/expr"
)

// RunBool compiles (cached) and runs src against env as a predicate.
// A non-boolean result is an error, not a silent coercion.
func RunBool(src string, env map[string]interface{}, cache *Cache, opts ...expr.Option) (bool, error) {
	p, err := cache.GetOrCompile(src, opts...)
	if err != nil {
		return false, err
	}
	v, err := expr.Run(p, env)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("rule result is %T, want bool", v)
	}
	return b, nil
}
