package refspec

import "bytes"

// NameValidator decides whether one side of a refspec is a well-formed ref
// name or pattern. The parser has already checked that it holds at most one '*'.
type NameValidator interface {
	ValidName(name []byte) bool
}

// ValidatorFunc adapts a plain function to NameValidator.
type ValidatorFunc func(name []byte) bool

// ValidName calls f(name).
func (f ValidatorFunc) ValidName(name []byte) bool { return f(name) }

// CheckRefFormat is the default NameValidator. It applies the
// git-check-ref-format rules to full and partial names, treating a single
// '*' as an ordinary character, and accepts HEAD and its alias '@'.
// See https://git-scm.com/docs/git-check-ref-format for rules.
type CheckRefFormat struct{}

// ValidName implements NameValidator.
func (CheckRefFormat) ValidName(name []byte) bool {
	if len(name) == 0 {
		return false
	}
	if string(name) == "HEAD" || string(name) == "@" {
		return true
	}
	first, last := name[0], name[len(name)-1]
	if first == '-' || first == '.' || first == '/' || last == '.' || last == '/' {
		return false
	}
	for _, c := range name {
		if c < 0x20 || c == 0x7f {
			return false
		}
		switch c {
		case ' ', '~', '^', ':', '?', '[', '\\':
			return false
		}
	}
	for _, bad := range badSequences {
		if bytes.Contains(name, bad) {
			return false
		}
	}
	return !bytes.HasSuffix(name, lockSuffix)
}

var (
	lockSuffix   = []byte(".lock")
	badSequences = [][]byte{
		[]byte(".."),
		[]byte("@{"),
		[]byte("//"),
		[]byte("/."),
		[]byte(".lock/"),
	}
)

// isObjectID reports whether name is a full SHA-1 or SHA-256 hex object id.
func isObjectID(name []byte) bool {
	if len(name) != 40 && len(name) != 64 {
		return false
	}
	for _, c := range name {
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F') {
			return false
		}
	}
	return true
}
