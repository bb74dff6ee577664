package refspec

import (
	"bytes"
	"fmt"

	"github.com/go-git/go-git/v5/plumbing"
)

var refsPrefix = []byte("refs/")

// remoteName returns the side of the refspec that names refs on the remote.
func (r RefSpecRef) remoteName() []byte {
	if r.op == Push {
		return r.dst
	}
	if len(r.src) == 0 && len(r.dst) > 0 {
		return []byte(plumbing.HEAD)
	}
	return sourceName(r.src)
}

// Prefix returns the ref namespace on the remote this refspec can match, for
// example "refs/heads/" for "refs/heads/*:refs/remotes/origin/*". It is meant
// for filtering a remote's ref advertisement. Prefix returns nil for negative
// refspecs and for names that do not start with "refs/<namespace>/".
func (r RefSpecRef) Prefix() []byte {
	if r.mode == Negative {
		return nil
	}
	name := r.remoteName()
	if string(name) == string(plumbing.HEAD) {
		return name
	}
	suffix, ok := bytes.CutPrefix(name, refsPrefix)
	if !ok {
		return nil
	}
	slash := bytes.IndexByte(suffix, '/')
	if slash < 0 {
		return nil
	}
	prefix := name[:len(refsPrefix)+slash+1]
	if bytes.IndexByte(prefix, '*') >= 0 {
		return nil
	}
	return prefix
}

// ExpandPrefixes returns the ref prefixes a remote has to advertise for this
// refspec to match. Partial names such as "main" expand to every full name
// git would try for them.
func (r RefSpecRef) ExpandPrefixes() []string {
	if prefix := r.Prefix(); prefix != nil {
		return []string{string(prefix)}
	}
	if r.mode == Negative {
		return nil
	}
	name := r.remoteName()
	if len(name) == 0 || bytes.HasPrefix(name, refsPrefix) || isObjectID(name) {
		return nil
	}
	var out []string
	for _, rule := range plumbing.RefRevParseRules {
		if rule == "%s" {
			continue
		}
		out = append(out, fmt.Sprintf(rule, name))
	}
	return out
}
