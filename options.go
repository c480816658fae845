package thrift

import "unicode/utf8"

// Default bounds, per SPEC_FULL.md §4.8.
const (
	DefaultMaxMethodNameLength = 256
	DefaultMaxBinaryLength     = 100 * 1024 * 1024
	DefaultMaxListLength       = 10_000_000
	DefaultMaxSetSize          = 10_000_000
	DefaultMaxMapSize          = 10_000_000
)

// MethodNameParser decodes a method name from its raw wire bytes.
// Overridable via WithMethodNameParser for callers that need
// non-UTF-8-strict decoding.
type MethodNameParser func(b []byte) (string, error)

func defaultMethodNameParser(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", newWireFormatError("method name is not valid UTF-8")
	}
	return string(b), nil
}

// ProtocolOptions declares the resource bounds the Binary Protocol
// decoder enforces before trusting any length-prefixed field,
// following the teacher's ClientOptions/AgentOptions idiom of a plain
// value struct constructed once and passed by value thereafter.
type ProtocolOptions struct {
	MaxMethodNameLength int
	MaxBinaryLength     int
	MaxListLength       int
	MaxSetSize          int
	MaxMapSize          int
	MethodNameParser    MethodNameParser
}

// ProtocolOption customizes a ProtocolOptions built by
// DefaultProtocolOptions.
type ProtocolOption func(*ProtocolOptions)

// DefaultProtocolOptions returns the default bounds from SPEC_FULL.md
// §4.8, overridden by any supplied options.
func DefaultProtocolOptions(opts ...ProtocolOption) ProtocolOptions {
	o := ProtocolOptions{
		MaxMethodNameLength: DefaultMaxMethodNameLength,
		MaxBinaryLength:     DefaultMaxBinaryLength,
		MaxListLength:       DefaultMaxListLength,
		MaxSetSize:          DefaultMaxSetSize,
		MaxMapSize:          DefaultMaxMapSize,
		MethodNameParser:    defaultMethodNameParser,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithMaxMethodNameLength overrides MaxMethodNameLength.
func WithMaxMethodNameLength(n int) ProtocolOption {
	return func(o *ProtocolOptions) { o.MaxMethodNameLength = n }
}

// WithMaxBinaryLength overrides MaxBinaryLength.
func WithMaxBinaryLength(n int) ProtocolOption {
	return func(o *ProtocolOptions) { o.MaxBinaryLength = n }
}

// WithMaxListLength overrides MaxListLength.
func WithMaxListLength(n int) ProtocolOption {
	return func(o *ProtocolOptions) { o.MaxListLength = n }
}

// WithMaxSetSize overrides MaxSetSize.
func WithMaxSetSize(n int) ProtocolOption {
	return func(o *ProtocolOptions) { o.MaxSetSize = n }
}

// WithMaxMapSize overrides MaxMapSize.
func WithMaxMapSize(n int) ProtocolOption {
	return func(o *ProtocolOptions) { o.MaxMapSize = n }
}

// WithMethodNameParser overrides MethodNameParser.
func WithMethodNameParser(p MethodNameParser) ProtocolOption {
	return func(o *ProtocolOptions) { o.MethodNameParser = p }
}
