package jww

import "errors"

// The decoder reports a closed set of error kinds. All decode failures are
// non-recoverable: the first error aborts the decode and no partial Document
// is ever returned. Use errors.Is against these sentinels; parameterized
// failures wrap the sentinel with fmt.Errorf("%w: ...") to attach the
// offending value.
var (
	// ErrInvalidSignature is returned when the input is shorter than 8 bytes
	// or its first 8 bytes are not "JwwData.".
	ErrInvalidSignature = errors.New("invalid JWW signature: expected 'JwwData.'")

	// ErrUnsupportedVersion is reserved for implementations that gate on
	// known versions. This decoder accepts any version word; it is kept so
	// callers that want stricter validation have a sentinel to wrap.
	ErrUnsupportedVersion = errors.New("unsupported JWW version")

	// ErrUnknownClassPID is returned when an entity record back-references a
	// pid that no prior class-definition record bound.
	ErrUnknownClassPID = errors.New("unknown class pid")

	// ErrUnknownEntityClass is returned when a newly bound class name falls
	// outside the fixed dispatch set. The stream is not self-synchronizing,
	// so this is always terminal.
	ErrUnknownEntityClass = errors.New("unknown entity class")

	// ErrEntityListNotFound is returned when the entity-list locator exhausts
	// the buffer without finding the class-definition pattern.
	ErrEntityListNotFound = errors.New("entity list not found")

	// ErrUnexpectedEOF is returned when a read runs past the end of the
	// buffer. It plays the role of io.ErrUnexpectedEOF for this decoder's
	// byte-cursor reads but does not wrap it, so match it with errors.Is
	// against this sentinel.
	ErrUnexpectedEOF = errors.New("unexpected end of JWW data")
)
