package main

import (
	"fmt"
	"os"

	"github.com/sigerr-io/sigerr/sigerr"
)

func code(v int64) *int64 { return &v }

func main() {
	// A hand-built occurrence, the way a log-ingest adapter would supply it.
	rec := &sigerr.Record{
		TypeName:  "net.OpError",
		Message:   "dial tcp 10.0.0.1:5432: connect: connection refused",
		ErrorCode: code(111),
		Frames: []*sigerr.Frame{
			{DeclaringType: "store.Pool", Method: "Acquire", Params: []sigerr.Param{
				{Type: "context.Context", Name: "ctx"},
			}},
			{DeclaringType: "store.Pool", Method: "dial"},
		},
		Cause: &sigerr.Record{
			TypeName:  "syscall.Errno",
			Message:   "connection refused",
			ErrorCode: code(111),
			Frames: []*sigerr.Frame{
				{DeclaringType: "net.sysDialer", Method: "dialSingle"},
			},
		},
	}
	rec.Origin = rec.Frames[0]

	b := sigerr.New()
	if err := b.AddException(rec); err != nil {
		panic(err)
	}

	text, _ := b.Text()
	sig, _ := b.Signature()
	hexDigest, _ := b.SignatureHex()

	fmt.Println("BUFFER:")
	fmt.Println(text)
	fmt.Println("HEX:  ", hexDigest)
	fmt.Println("SHORT:", sig)

	// Grouping rules decide routing before the fingerprint is stored.
	rules := map[string]string{
		"r_socket":  `has_code && type contains "net."`,
		"r_chained": `depth > 1`,
		"r_panic":   `type contains "panic"`,
	}
	if err := sigerr.ValidateRules(rules); err != nil {
		panic(err)
	}
	rs, err := sigerr.NewRuleSet(rules)
	if err != nil {
		panic(err)
	}
	fmt.Println("RULES:", rs.Matches(rec))

	fmt.Println("\n====================================================================")

	// Capturing a live Go error chain instead of hand-built records.
	captured := sigerr.Capture(fmt.Errorf("load config: %w", os.ErrNotExist))

	b2 := sigerr.New(sigerr.WithFullStackTrace(false))
	if err := b2.AddException(captured); err != nil {
		panic(err)
	}
	sig2, _ := b2.Signature()
	fmt.Println("CAPTURED SHORT:", sig2)
}
