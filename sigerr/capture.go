package sigerr

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"syscall"
)

const captureMaxDepth = 64

// Capture builds a Record chain from a live Go error: the wrap chain becomes
// the cause chain, and the outermost record carries the caller's stack.
// It is a convenience adapter; the engine itself only ever consumes the
// resulting Record data.
func Capture(err error) *Record {
	return CaptureSkip(err, 1)
}

// CaptureSkip is Capture with additional stack frames skipped, for helper
// wrappers that capture on behalf of their caller.
func CaptureSkip(err error, skip int) *Record {
	if err == nil {
		return nil
	}
	head := recordFromError(err)
	head.Frames = callerFrames(skip + 1)
	if len(head.Frames) > 0 {
		head.Origin = head.Frames[0]
	}
	cur := head
	for wrapped := errors.Unwrap(err); wrapped != nil; wrapped = errors.Unwrap(wrapped) {
		next := recordFromError(wrapped)
		cur.Cause = next
		cur = next
	}
	return head
}

func recordFromError(err error) *Record {
	rec := &Record{
		TypeName: fmt.Sprintf("%T", err),
		Message:  err.Error(),
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		code := int64(errno)
		rec.ErrorCode = &code
	}
	return rec
}

// callerFrames resolves the current stack into pre-populated Frame values,
// most recent call first.
func callerFrames(skip int) []*Frame {
	pc := make([]uintptr, captureMaxDepth)
	// +2 skips runtime.Callers and callerFrames itself
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return nil
	}
	iter := runtime.CallersFrames(pc[:n])
	out := make([]*Frame, 0, n)
	for {
		fr, more := iter.Next()
		out = append(out, frameFromFunction(fr.Function))
		if !more {
			break
		}
	}
	return out
}

// frameFromFunction splits a fully-qualified runtime function name into the
// declaring-type/method shape the serializer expects. Go exposes no
// parameter metadata at runtime, so parameter lists stay empty; that is the
// graceful-degradation path, not an error.
func frameFromFunction(fn string) *Frame {
	if fn == "" {
		return &Frame{Method: "unknown"}
	}
	if i := strings.LastIndexByte(fn, '.'); i >= 0 {
		return &Frame{DeclaringType: fn[:i], Method: fn[i+1:]}
	}
	return &Frame{Method: fn}
}
