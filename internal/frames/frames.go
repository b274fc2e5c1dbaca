package frames

import "strings"

// UnknownType is the sentinel rendered when the frame provider could not
// resolve a declaring type or a parameter type. Unresolved metadata degrades
// to this sentinel instead of failing signature generation.
const UnknownType = "<unknown type>"

// Param is one formal parameter of a frame's method.
type Param struct {
	Type string // full type name; empty when unresolved
	Name string
}

// Frame is one call-site entry, pre-populated by an adapter over whatever
// debug-info facility the source runtime offers. It is plain data; the
// serializer never introspects anything.
type Frame struct {
	DeclaringType string // full name; empty when unresolved
	Method        string
	TypeParams    []string // generic parameter names, declaration order
	Params        []Param  // declaration order
}

// Serialize renders f into its canonical text form:
//
//	pkg.Type.Method<T1,T2>(pkg.Arg a,pkg.Arg2 b)
//
// The generic parameter list is omitted entirely for non-generic methods;
// the parentheses are always present, even with zero parameters.
func Serialize(f *Frame) string {
	var sb strings.Builder
	if f.DeclaringType != "" {
		sb.WriteString(f.DeclaringType)
	} else {
		sb.WriteString(UnknownType)
	}
	sb.WriteByte('.')
	sb.WriteString(f.Method)
	if len(f.TypeParams) > 0 {
		sb.WriteByte('<')
		sb.WriteString(strings.Join(f.TypeParams, ","))
		sb.WriteByte('>')
	}
	sb.WriteByte('(')
	for i, p := range f.Params {
		if i > 0 {
			sb.WriteByte(',')
		}
		if p.Type != "" {
			sb.WriteString(p.Type)
		} else {
			sb.WriteString(UnknownType)
		}
		sb.WriteByte(' ')
		sb.WriteString(p.Name)
	}
	sb.WriteByte(')')
	return sb.String()
}
