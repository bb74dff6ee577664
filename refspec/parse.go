package refspec

import (
	"bytes"
	"errors"

	"github.com/go-git/go-git/v5/plumbing"
)

var tagKeyword = []byte("tag ")

// Parser parses refspecs. The zero value uses CheckRefFormat.
type Parser struct {
	// Validator checks each present side of a refspec. Nil means CheckRefFormat.
	Validator NameValidator
}

// Parse parses input as a refspec for op using CheckRefFormat.
func Parse(input []byte, op Operation) (RefSpecRef, error) {
	return Parser{}.Parse(input, op)
}

// ParseOwned parses input and returns a refspec independent of any caller memory.
func ParseOwned(input string, op Operation) (RefSpec, error) {
	return Parser{}.ParseOwned(input, op)
}

// ParseAll parses every refspec in specs. Refspecs that fail are left out of
// the result and their errors are joined.
func ParseAll(specs []string, op Operation) ([]RefSpec, error) {
	return Parser{}.ParseAll(specs, op)
}

// ParseOwned parses input into an owned RefSpec.
func (p Parser) ParseOwned(input string, op Operation) (RefSpec, error) {
	// The conversion already copies input, so the result can borrow from it.
	ref, err := p.Parse([]byte(input), op)
	if err != nil {
		return RefSpec{}, err
	}
	return RefSpec{ref: ref}, nil
}

// ParseAll parses every refspec in specs into owned values.
func (p Parser) ParseAll(specs []string, op Operation) ([]RefSpec, error) {
	parsed := make([]RefSpec, 0, len(specs))
	var errs []error
	for _, s := range specs {
		spec, err := p.ParseOwned(s, op)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		parsed = append(parsed, spec)
	}
	return parsed, errors.Join(errs...)
}

// Parse parses input as a refspec for op. The returned value borrows from
// input; only the "tag <name>" shorthand allocates.
func (p Parser) Parse(input []byte, op Operation) (RefSpecRef, error) {
	spec := RefSpecRef{mode: Normal, op: op}
	if len(input) == 0 {
		return spec, nil
	}

	rest := input
	switch rest[0] {
	case '+':
		spec.mode = Force
		rest = rest[1:]
	case '^', '!':
		spec.mode = Negative
		rest = rest[1:]
	}
	if spec.mode != Normal {
		if len(rest) == 0 {
			return RefSpecRef{}, newParseError(ErrMalformedSigil, input, SideNone, "sigil is not followed by a refspec")
		}
		if isSigil(rest[0]) {
			return RefSpecRef{}, newParseError(ErrMalformedSigil, input, SideNone, "more than one mode sigil")
		}
	}

	if name, ok := bytes.CutPrefix(rest, tagKeyword); ok {
		return p.parseTag(input, spec, name)
	}

	src, dst, hasColon, ok := splitSeparator(rest)
	if !ok {
		return RefSpecRef{}, newParseError(ErrIllegalColonPlacement, input, SideNone, "more than one ':' separator")
	}

	if spec.mode == Negative {
		if hasColon {
			return RefSpecRef{}, newParseError(ErrIncompatibleNegative, input, SideDestination, "negative refspecs cannot have a destination")
		}
		if isObjectID(src) {
			return RefSpecRef{}, newParseError(ErrIncompatibleNegative, input, SideSource, "negative refspecs cannot name an object id")
		}
	}

	if hasColon && len(src) == 0 && len(dst) == 0 {
		return RefSpecRef{}, newParseError(ErrIllegalColonPlacement, input, SideNone, "both sides of ':' are empty")
	}
	if hasColon && op == Push && len(src) > 0 && len(dst) == 0 {
		return RefSpecRef{}, newParseError(ErrIllegalColonPlacement, input, SideDestination, "push destination after ':' is empty")
	}

	if err := checkWildcards(input, src, dst); err != nil {
		return RefSpecRef{}, err
	}
	if err := p.validate(input, src, SideSource); err != nil {
		return RefSpecRef{}, err
	}
	if err := p.validate(input, dst, SideDestination); err != nil {
		return RefSpecRef{}, err
	}

	spec.src = nilIfEmpty(src)
	spec.dst = nilIfEmpty(dst)
	return spec, nil
}

// parseTag expands "tag <name>" to refs/tags/<name> on both sides.
func (p Parser) parseTag(input []byte, spec RefSpecRef, name []byte) (RefSpecRef, error) {
	if spec.mode == Negative {
		return RefSpecRef{}, newParseError(ErrIncompatibleNegative, input, SideNone, "negative refspecs cannot use the tag shorthand")
	}
	if len(name) == 0 || bytes.ContainsAny(name, " :*") {
		return RefSpecRef{}, newParseError(ErrInvalidRefName, input, SideSource, "tag shorthand needs a plain tag name")
	}
	full := []byte(plumbing.NewTagReferenceName(string(name)))
	if err := p.validate(input, full, SideSource); err != nil {
		return RefSpecRef{}, err
	}
	spec.src = full
	spec.dst = full
	return spec, nil
}

func (p Parser) validate(input, name []byte, side Side) error {
	if len(name) == 0 {
		return nil
	}
	validator := p.Validator
	if validator == nil {
		validator = CheckRefFormat{}
	}
	if !validator.ValidName(name) {
		return newParseError(ErrInvalidRefName, input, side, string(name))
	}
	return nil
}

func checkWildcards(input, src, dst []byte) error {
	srcStars := bytes.Count(src, wildcard)
	dstStars := bytes.Count(dst, wildcard)
	if srcStars > 1 {
		return newParseError(ErrWildcardMismatch, input, SideSource, "at most one '*' is allowed")
	}
	if dstStars > 1 {
		return newParseError(ErrWildcardMismatch, input, SideDestination, "at most one '*' is allowed")
	}
	if len(src) > 0 && len(dst) > 0 && srcStars != dstStars {
		return newParseError(ErrWildcardMismatch, input, SideNone, "source and destination must both or neither contain '*'")
	}
	return nil
}

var wildcard = []byte("*")

// splitSeparator splits spec at its first unescaped ':'. A backslash escapes
// the byte after it. ok is false when a second unescaped ':' follows.
func splitSeparator(spec []byte) (src, dst []byte, hasColon, ok bool) {
	at := -1
	for i := 0; i < len(spec); i++ {
		switch spec[i] {
		case '\\':
			i++
		case ':':
			if at >= 0 {
				return nil, nil, true, false
			}
			at = i
		}
	}
	if at < 0 {
		return spec, nil, false, true
	}
	return spec[:at], spec[at+1:], true, true
}

func isSigil(c byte) bool {
	return c == '+' || c == '^' || c == '!'
}

func nilIfEmpty(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	return b
}
