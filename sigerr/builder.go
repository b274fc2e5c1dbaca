package sigerr

import (
	"errors"
	"strconv"
	"strings"

	"github.com/sigerr-io/sigerr/internal/frames"
	"github.com/sigerr-io/sigerr/internal/normalize"
)

var (
	// ErrNilRecord is returned when a required exception record is absent.
	ErrNilRecord = errors.New("sigerr: nil exception record")
	// ErrClosed is returned by every operation except Close once the
	// builder has been closed.
	ErrClosed = errors.New("sigerr: builder is closed")
)

// Builder accumulates canonical text for one or more exception occurrences
// and derives a deterministic signature from it. For a fixed configuration,
// structurally identical chains always produce byte-identical text and
// therefore identical signatures.
//
// A Builder is exclusively owned by its caller and is not safe for
// concurrent use. Use one builder per logical unit of work.
type Builder struct {
	buf        strings.Builder
	closed     bool
	preprocess bool
	fullStack  bool
	codeOf     CodeExtractor
	multiline  MultilineDumpMatcher
}

// New creates a builder with an empty buffer and default configuration:
// message preprocessing and full stack serialization both enabled.
func New(opts ...Option) *Builder {
	b := &Builder{
		preprocess: true,
		fullStack:  true,
		codeOf:     DefaultCodeExtractor,
		multiline:  DefaultMultilineDumpMatcher,
	}
	for _, o := range opts {
		o.apply(b)
	}
	return b
}

// AddException appends rec and its entire cause chain to the buffer.
func (b *Builder) AddException(rec *Record) error { return b.add(rec, true) }

// AddSingle appends only rec itself, ignoring its cause chain.
func (b *Builder) AddSingle(rec *Record) error { return b.add(rec, false) }

func (b *Builder) add(rec *Record, traverse bool) error {
	if rec == nil {
		return ErrNilRecord
	}
	if b.closed {
		return ErrClosed
	}
	for cur := rec; cur != nil; cur = cur.Cause {
		b.buf.WriteString(cur.TypeName)
		b.buf.WriteString(": ")
		b.buf.WriteString(b.messageText(cur))
		b.buf.WriteByte('\n')
		b.writeFrames(cur)
		b.buf.WriteByte('\n')
		if !traverse {
			break
		}
	}
	return nil
}

// messageText picks the message contribution for one record.
func (b *Builder) messageText(rec *Record) string {
	if !b.preprocess {
		return rec.Message
	}
	if code, ok := b.codeOf(rec); ok {
		// The numeric code is locale-invariant; the message text is not,
		// so it is ignored entirely.
		return "ErrorCode: " + strconv.FormatInt(code, 10)
	}
	if b.multiline(rec) {
		if i := strings.IndexByte(rec.Message, '\n'); i >= 0 {
			return rec.Message[:i]
		}
		return rec.Message
	}
	return normalize.Normalize(rec.Message)
}

func (b *Builder) writeFrames(rec *Record) {
	if !b.fullStack {
		if rec.Origin != nil {
			b.buf.WriteString(frames.Serialize(rec.Origin))
			b.buf.WriteByte('\n')
		}
		return
	}
	for _, f := range rec.Frames {
		if f == nil {
			continue
		}
		b.buf.WriteString(frames.Serialize(f))
		b.buf.WriteByte('\n')
	}
}

// Clear truncates the buffer to empty. Configuration is untouched; a cleared
// builder signs like a freshly constructed one.
func (b *Builder) Clear() error {
	if b.closed {
		return ErrClosed
	}
	b.buf.Reset()
	return nil
}

// Close releases the buffer and permanently rejects further use. Calling
// Close again is a no-op.
func (b *Builder) Close() error {
	if !b.closed {
		b.closed = true
		b.buf.Reset()
	}
	return nil
}

// SignatureBytes returns the 16-byte digest of the accumulated text.
func (b *Builder) SignatureBytes() ([]byte, error) {
	if b.closed {
		return nil, ErrClosed
	}
	return Fingerprint(b.buf.String()), nil
}

// SignatureHex returns the digest as 32 lowercase hex characters.
func (b *Builder) SignatureHex() (string, error) {
	if b.closed {
		return "", ErrClosed
	}
	return FingerprintHex(b.buf.String()), nil
}

// Signature returns the 8-character short form used for display and support
// reference codes.
func (b *Builder) Signature() (string, error) {
	if b.closed {
		return "", ErrClosed
	}
	return ShortFingerprint(b.buf.String()), nil
}

// Text exposes the accumulated canonical text. Useful for debugging what a
// signature was derived from.
func (b *Builder) Text() (string, error) {
	if b.closed {
		return "", ErrClosed
	}
	return b.buf.String(), nil
}
