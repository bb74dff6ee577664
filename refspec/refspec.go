package refspec

import "bytes"

// Mode is set by the optional sigil in front of a refspec.
type Mode int

const (
	// Normal refspecs carry no sigil
	Normal Mode = iota
	// Force refspecs start with '+' and allow non-fast-forward updates
	Force
	// Negative refspecs start with '^' or '!' and exclude matching refs
	Negative
)

func (m Mode) String() string {
	switch m {
	case Normal:
		return "normal"
	case Force:
		return "force"
	case Negative:
		return "negative"
	default:
		return "unknown"
	}
}

// Operation is the direction a refspec is interpreted in.
type Operation int

const (
	// Fetch maps remote refs to local refs
	Fetch Operation = iota
	// Push maps local refs to remote refs
	Push
)

func (o Operation) String() string {
	switch o {
	case Fetch:
		return "fetch"
	case Push:
		return "push"
	default:
		return "unknown"
	}
}

// RefSpecRef is a parsed refspec whose source and destination point into the
// input it was parsed from. The input must not be modified while the
// RefSpecRef is in use.
type RefSpecRef struct {
	mode Mode
	op   Operation
	src  []byte
	dst  []byte
}

// RefSpec is a parsed refspec that owns its bytes.
type RefSpec struct {
	ref RefSpecRef
}

// Mode returns the refspec mode.
func (r RefSpecRef) Mode() Mode { return r.mode }

// Operation returns the operation the refspec was parsed for.
func (r RefSpecRef) Operation() Operation { return r.op }

// Source returns the source pattern, or nil when absent.
func (r RefSpecRef) Source() []byte { return r.src }

// Destination returns the destination pattern, or nil when absent.
func (r RefSpecRef) Destination() []byte { return r.dst }

// HasSource reports whether a source is present.
func (r RefSpecRef) HasSource() bool { return len(r.src) > 0 }

// HasDestination reports whether a destination is present.
func (r RefSpecRef) HasDestination() bool { return len(r.dst) > 0 }

// IsEmpty reports whether this is the degenerate refspec parsed from "".
func (r RefSpecRef) IsEmpty() bool {
	return r.mode == Normal && len(r.src) == 0 && len(r.dst) == 0
}

// Equal reports whether two refspecs have the same mode, operation and names.
func (r RefSpecRef) Equal(other RefSpecRef) bool {
	return r.mode == other.mode &&
		r.op == other.op &&
		bytes.Equal(r.src, other.src) &&
		bytes.Equal(r.dst, other.dst)
}

// ToOwned copies the refspec so it no longer references the parsed input.
func (r RefSpecRef) ToOwned() RefSpec {
	return RefSpec{ref: RefSpecRef{
		mode: r.mode,
		op:   r.op,
		src:  clone(r.src),
		dst:  clone(r.dst),
	}}
}

// AppendTo appends the canonical text of the refspec to b.
// Negative refspecs always use '^'.
func (r RefSpecRef) AppendTo(b []byte) []byte {
	switch r.mode {
	case Force:
		b = append(b, '+')
	case Negative:
		b = append(b, '^')
	}
	b = append(b, r.src...)
	if len(r.dst) > 0 {
		b = append(b, ':')
		b = append(b, r.dst...)
	}
	return b
}

func (r RefSpecRef) String() string {
	return string(r.AppendTo(make([]byte, 0, len(r.src)+len(r.dst)+2)))
}

// AsRef returns a borrowed view of the owned refspec. It does not copy.
func (r RefSpec) AsRef() RefSpecRef { return r.ref }

// Mode returns the refspec mode.
func (r RefSpec) Mode() Mode { return r.ref.mode }

// Operation returns the operation the refspec was parsed for.
func (r RefSpec) Operation() Operation { return r.ref.op }

// Source returns the source pattern, or "" when absent.
func (r RefSpec) Source() string { return string(r.ref.src) }

// Destination returns the destination pattern, or "" when absent.
func (r RefSpec) Destination() string { return string(r.ref.dst) }

// Equal reports whether two owned refspecs are equal.
func (r RefSpec) Equal(other RefSpec) bool { return r.ref.Equal(other.ref) }

// Instruction classifies the refspec with the default Classifier.
func (r RefSpec) Instruction() (Instruction, error) { return r.ref.Instruction() }

func (r RefSpec) String() string { return r.ref.String() }

func clone(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	return bytes.Clone(b)
}
