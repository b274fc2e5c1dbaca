package sigerr

import (
	"strings"

	"github.com/sigerr-io/sigerr/internal/frames"
)

// Frame is one call-site entry: declaring type, method, generic parameters,
// and formal parameters, pre-populated by an adapter over the source
// runtime's debug metadata.
type Frame = frames.Frame

// Param is one formal parameter of a Frame's method.
type Param = frames.Param

// UnknownType is rendered whenever a declaring type or parameter type could
// not be resolved. Incomplete metadata never fails signature generation.
const UnknownType = frames.UnknownType

// Record is a single exception occurrence as supplied by an adapter. The
// engine consumes it as plain data and never introspects live values.
type Record struct {
	TypeName  string
	Message   string
	ErrorCode *int64   // platform error code, when the runtime exposes one
	Origin    *Frame   // the frame that raised; may be nil
	Frames    []*Frame // captured call order; nil entries are skipped
	Cause     *Record  // next record in the chain; must be acyclic
}

// CodeExtractor returns the locale-invariant numeric code for records in a
// recognized exception family, and false for everything else.
type CodeExtractor func(rec *Record) (int64, bool)

// MultilineDumpMatcher reports whether a record belongs to a family whose
// messages embed multi-line diagnostic dumps. For those only the first line
// contributes to the signature.
type MultilineDumpMatcher func(rec *Record) bool

// Exception families whose message text varies with the OS language. Their
// numeric code replaces the message so signatures agree across locales.
// Foreign-runtime adapters can map their own names onto these, or install a
// custom extractor via WithCodeExtractor.
var (
	socketFamily  = []string{"net.OpError", "net.DNSError", "SocketException"}
	syscallFamily = []string{"os.SyscallError", "syscall.Errno", "Win32Exception"}
)

// DefaultCodeExtractor recognizes socket-style and system-call-style records
// and returns their numeric code.
func DefaultCodeExtractor(rec *Record) (int64, bool) {
	if rec.ErrorCode == nil {
		return 0, false
	}
	if matchesFamily(rec.TypeName, socketFamily) || matchesFamily(rec.TypeName, syscallFamily) {
		return *rec.ErrorCode, true
	}
	return 0, false
}

// DefaultMultilineDumpMatcher matches recovered panics, whose messages carry
// goroutine dumps after the first line.
func DefaultMultilineDumpMatcher(rec *Record) bool {
	return strings.Contains(strings.ToLower(rec.TypeName), "panic")
}

func matchesFamily(typeName string, family []string) bool {
	for _, name := range family {
		if strings.Contains(typeName, name) {
			return true
		}
	}
	return false
}
