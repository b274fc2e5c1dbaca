package sigerr

type Option interface{ apply(*Builder) }

type optFunc func(*Builder)

func (f optFunc) apply(b *Builder) { f(b) }

// WithPreprocessMessages toggles message normalization and error-code
// substitution. Enabled by default.
func WithPreprocessMessages(enabled bool) Option {
	return optFunc(func(b *Builder) { b.preprocess = enabled })
}

// WithFullStackTrace toggles serializing every captured frame versus only
// the origin frame. Enabled by default.
func WithFullStackTrace(enabled bool) Option {
	return optFunc(func(b *Builder) { b.fullStack = enabled })
}

// WithCodeExtractor replaces the family-based default extractor.
func WithCodeExtractor(fn CodeExtractor) Option {
	return optFunc(func(b *Builder) { b.codeOf = fn })
}

// WithMultilineDumpMatcher replaces the default multi-line dump detection.
func WithMultilineDumpMatcher(fn MultilineDumpMatcher) Option {
	return optFunc(func(b *Builder) { b.multiline = fn })
}
