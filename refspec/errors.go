package refspec

import (
	"errors"
	"fmt"
)

// Sentinel errors for refspec parsing and classification.
// Use errors.Is() to check which rule a refspec broke.
var (
	// ErrMalformedSigil indicates a doubled mode sigil or a sigil with nothing after it
	ErrMalformedSigil = errors.New("malformed refspec sigil")

	// ErrIllegalColonPlacement indicates an ambiguous or doubled ':' separator
	ErrIllegalColonPlacement = errors.New("illegal colon placement")

	// ErrWildcardMismatch indicates more than one '*' on a side, or unequal counts across sides
	ErrWildcardMismatch = errors.New("wildcard mismatch")

	// ErrIncompatibleNegative indicates a negative refspec with a destination, an object id or the tag shorthand
	ErrIncompatibleNegative = errors.New("incompatible negative refspec")

	// ErrInvalidRefName indicates a source or destination that is not a well-formed ref name
	ErrInvalidRefName = errors.New("invalid ref name")

	// ErrUnclassifiable indicates a refspec the operation has no instruction for
	ErrUnclassifiable = errors.New("unclassifiable refspec")
)

// Side names the half of a refspec an error refers to.
type Side string

const (
	// SideNone is used for errors about the refspec as a whole
	SideNone Side = ""
	// SideSource is the part before the colon
	SideSource Side = "source"
	// SideDestination is the part after the colon
	SideDestination Side = "destination"
)

// ParseError reports why a refspec could not be parsed.
type ParseError struct {
	// Kind is one of the Err* sentinels above
	Kind   error
	Input  string
	Side   Side
	Detail string
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%v in %q", e.Kind, e.Input)
	if e.Side != SideNone {
		msg += fmt.Sprintf(" (%s)", e.Side)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Is returns true if the target error is the sentinel this error was built from
func (e *ParseError) Is(target error) bool {
	return target == e.Kind
}

func newParseError(kind error, input []byte, side Side, detail string) *ParseError {
	return &ParseError{
		Kind:   kind,
		Input:  string(input),
		Side:   side,
		Detail: detail,
	}
}

// ClassifyError reports a parsed refspec that has no instruction.
type ClassifyError struct {
	Spec   string
	Detail string
	// Internal is set when the refspec reached a state a successful parse
	// cannot produce, which points at a bug rather than bad input.
	Internal bool
}

func (e *ClassifyError) Error() string {
	if e.Internal {
		return fmt.Sprintf("%v %q: internal inconsistency: %s", ErrUnclassifiable, e.Spec, e.Detail)
	}
	return fmt.Sprintf("%v %q: %s", ErrUnclassifiable, e.Spec, e.Detail)
}

// Is returns true if the target error is ErrUnclassifiable
func (e *ClassifyError) Is(target error) bool {
	return target == ErrUnclassifiable
}
