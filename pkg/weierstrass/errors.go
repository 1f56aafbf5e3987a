package weierstrass

// ErrorKind identifies a kind of error. It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind
// when determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidCurve is returned when a parameter set is singular, its
	// generator is not on the curve, or its order or cofactor is not
	// positive.
	ErrInvalidCurve = ErrorKind("ErrInvalidCurve")

	// ErrPointNotOnCurve is returned when affine coordinates do not satisfy
	// the curve equation.
	ErrPointNotOnCurve = ErrorKind("ErrPointNotOnCurve")

	// ErrInvalidEncoding is returned when a serialized point or scalar has
	// the wrong length, an unknown prefix, a coordinate that is not a field
	// element, or an x coordinate with no matching y.
	ErrInvalidEncoding = ErrorKind("ErrInvalidEncoding")

	// ErrRandomnessFailure is returned when the entropy source could not
	// supply the bytes needed to sample a private key.
	ErrRandomnessFailure = ErrorKind("ErrRandomnessFailure")

	// ErrInvalidScalar is returned when a private key scalar is outside
	// [1, N-1].
	ErrInvalidScalar = ErrorKind("ErrInvalidScalar")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to curve parameters, points, encodings
// or key generation. It has full support for errors.Is and errors.As, so the
// caller can ascertain the specific reason for the error by checking the
// underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// NewError creates an Error given a kind and a description.
func NewError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}

// causeError wraps a lower level error so that both the kind and the cause
// are visible to errors.Is.
type causeError struct {
	kind  ErrorKind
	cause error
}

func (e causeError) Error() string   { return string(e.kind) + ": " + e.cause.Error() }
func (e causeError) Unwrap() []error { return []error{e.kind, e.cause} }

// WrapError creates an Error of the given kind that also wraps cause.
func WrapError(kind ErrorKind, desc string, cause error) Error {
	if cause == nil {
		return NewError(kind, desc)
	}
	return Error{Err: causeError{kind: kind, cause: cause}, Description: desc + ": " + cause.Error()}
}
