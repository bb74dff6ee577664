package refspec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		op     Operation
		mode   Mode
		source string
		dest   string
	}{
		{
			name: "empty fetch spec",
			op:   Fetch,
		},
		{
			name: "empty push spec",
			op:   Push,
		},
		{
			name:   "forced wildcard fetch",
			input:  "+refs/heads/*:refs/remotes/origin/*",
			op:     Fetch,
			mode:   Force,
			source: "refs/heads/*",
			dest:   "refs/remotes/origin/*",
		},
		{
			name:   "partial source name",
			input:  "main",
			op:     Fetch,
			source: "main",
		},
		{
			name:   "fetch with trailing colon drops destination",
			input:  "refs/heads/main:",
			op:     Fetch,
			source: "refs/heads/main",
		},
		{
			name:  "push delete",
			input: ":refs/heads/topic",
			op:    Push,
			dest:  "refs/heads/topic",
		},
		{
			name:  "push delete pattern",
			input: ":refs/heads/tmp/*",
			op:    Push,
			dest:  "refs/heads/tmp/*",
		},
		{
			name:   "negative with caret",
			input:  "^refs/heads/wip",
			op:     Fetch,
			mode:   Negative,
			source: "refs/heads/wip",
		},
		{
			name:   "negative with bang",
			input:  "!refs/heads/wip",
			op:     Fetch,
			mode:   Negative,
			source: "refs/heads/wip",
		},
		{
			name:   "negative pattern",
			input:  "^refs/heads/wip/*",
			op:     Fetch,
			mode:   Negative,
			source: "refs/heads/wip/*",
		},
		{
			name:   "wildcard inside a component",
			input:  "refs/heads/feat-*:refs/remotes/origin/feat-*",
			op:     Fetch,
			source: "refs/heads/feat-*",
			dest:   "refs/remotes/origin/feat-*",
		},
		{
			name:   "tag shorthand",
			input:  "tag v1.0",
			op:     Fetch,
			source: "refs/tags/v1.0",
			dest:   "refs/tags/v1.0",
		},
		{
			name:   "forced tag shorthand on push",
			input:  "+tag v2",
			op:     Push,
			mode:   Force,
			source: "refs/tags/v2",
			dest:   "refs/tags/v2",
		},
		{
			name:   "HEAD alias",
			input:  "@:refs/heads/main",
			op:     Push,
			source: "@",
			dest:   "refs/heads/main",
		},
		{
			name:   "object id source",
			input:  "0123456789abcdef0123456789abcdef01234567:refs/heads/pinned",
			op:     Fetch,
			source: "0123456789abcdef0123456789abcdef01234567",
			dest:   "refs/heads/pinned",
		},
		{
			name:  "fetch destination only",
			input: ":refs/heads/fetched",
			op:    Fetch,
			dest:  "refs/heads/fetched",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			spec, err := Parse([]byte(tt.input), tt.op)
			require.NoError(t, err)
			require.Equal(t, tt.mode, spec.Mode())
			require.Equal(t, tt.op, spec.Operation())
			require.Equal(t, tt.source, string(spec.Source()))
			require.Equal(t, tt.dest, string(spec.Destination()))
			require.Equal(t, tt.source != "", spec.HasSource())
			require.Equal(t, tt.dest != "", spec.HasDestination())
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		op    Operation
		want  error
	}{
		{name: "double force", input: "++refs/heads/main", op: Fetch, want: ErrMalformedSigil},
		{name: "force then negative", input: "+^refs/heads/main", op: Fetch, want: ErrMalformedSigil},
		{name: "double negative", input: "^!refs/heads/main", op: Fetch, want: ErrMalformedSigil},
		{name: "lone force", input: "+", op: Push, want: ErrMalformedSigil},
		{name: "lone negative", input: "^", op: Fetch, want: ErrMalformedSigil},
		{name: "just a colon on fetch", input: ":", op: Fetch, want: ErrIllegalColonPlacement},
		{name: "just a colon on push", input: ":", op: Push, want: ErrIllegalColonPlacement},
		{name: "forced colon", input: "+:", op: Push, want: ErrIllegalColonPlacement},
		{name: "two separators", input: "a:b:c", op: Fetch, want: ErrIllegalColonPlacement},
		{name: "push with empty destination", input: "refs/heads/main:", op: Push, want: ErrIllegalColonPlacement},
		{name: "two wildcards in source", input: "refs/*/*:refs/remotes/x", op: Fetch, want: ErrWildcardMismatch},
		{name: "two wildcards in destination", input: "refs/heads/x:refs/*/*", op: Fetch, want: ErrWildcardMismatch},
		{name: "wildcard only in source", input: "refs/heads/*:refs/remotes/origin/main", op: Fetch, want: ErrWildcardMismatch},
		{name: "wildcard only in destination", input: "refs/heads/main:refs/remotes/origin/*", op: Push, want: ErrWildcardMismatch},
		{name: "two wildcards alone", input: "refs/*/x/*", op: Fetch, want: ErrWildcardMismatch},
		{name: "negative with destination", input: "^refs/heads/wip:refs/remotes/x", op: Fetch, want: ErrIncompatibleNegative},
		{name: "negative with empty destination", input: "^refs/heads/wip:", op: Fetch, want: ErrIncompatibleNegative},
		{name: "negative object id", input: "^0123456789abcdef0123456789abcdef01234567", op: Fetch, want: ErrIncompatibleNegative},
		{name: "negative tag shorthand", input: "^tag v1.0", op: Fetch, want: ErrIncompatibleNegative},
		{name: "tag shorthand without name", input: "tag ", op: Push, want: ErrInvalidRefName},
		{name: "tag shorthand with wildcard", input: "tag v*", op: Push, want: ErrInvalidRefName},
		{name: "tag shorthand with colon", input: "tag a:b", op: Push, want: ErrInvalidRefName},
		{name: "leading slash", input: "/refs/heads/main", op: Fetch, want: ErrInvalidRefName},
		{name: "trailing slash", input: "refs/heads/main/", op: Fetch, want: ErrInvalidRefName},
		{name: "empty component", input: "refs//main", op: Fetch, want: ErrInvalidRefName},
		{name: "control character", input: "refs/heads/ma\x01in", op: Fetch, want: ErrInvalidRefName},
		{name: "space", input: "refs/heads/my branch", op: Fetch, want: ErrInvalidRefName},
		{name: "double dot", input: "refs/heads/a..b", op: Fetch, want: ErrInvalidRefName},
		{name: "lock suffix", input: "refs/heads/main.lock", op: Fetch, want: ErrInvalidRefName},
		{name: "reflog syntax", input: "main@{1}", op: Push, want: ErrInvalidRefName},
		{name: "escaped colon", input: `a\:b`, op: Fetch, want: ErrInvalidRefName},
		{name: "invalid destination", input: "refs/heads/main:refs/heads/ma~in", op: Fetch, want: ErrInvalidRefName},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(tt.input), tt.op)
			require.Error(t, err)
			require.ErrorIs(t, err, tt.want)

			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr))
			require.Equal(t, tt.input, parseErr.Input)
		})
	}
}

func TestParseErrorSide(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("refs/heads/main:refs/heads/bad..name"), Fetch)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, SideDestination, parseErr.Side)
	require.Contains(t, parseErr.Error(), "destination")
	require.Contains(t, parseErr.Error(), "bad..name")
}

func TestParseTagShorthandMatchesLongForm(t *testing.T) {
	t.Parallel()

	for _, op := range []Operation{Fetch, Push} {
		short, err := Parse([]byte("tag v1.0"), op)
		require.NoError(t, err)
		long, err := Parse([]byte("refs/tags/v1.0:refs/tags/v1.0"), op)
		require.NoError(t, err)
		require.True(t, short.Equal(long), "%s: %s != %s", op, short, long)
	}
}

func TestParseBorrowsInput(t *testing.T) {
	t.Parallel()

	input := []byte("+refs/heads/*:refs/remotes/origin/*")
	spec, err := Parse(input, Fetch)
	require.NoError(t, err)

	// The borrowed form sees changes to the buffer it came from.
	input[1] = 'R'
	require.Equal(t, "Refs/heads/*", string(spec.Source()))
}

func TestParseWithValidator(t *testing.T) {
	t.Parallel()

	onlyHeads := Parser{Validator: ValidatorFunc(func(name []byte) bool {
		return len(name) > len("refs/heads/") && string(name[:len("refs/heads/")]) == "refs/heads/"
	})}

	_, err := onlyHeads.Parse([]byte("refs/heads/main:refs/heads/main"), Push)
	require.NoError(t, err)

	_, err = onlyHeads.Parse([]byte("refs/tags/v1:refs/tags/v1"), Push)
	require.ErrorIs(t, err, ErrInvalidRefName)
}

func TestParseAll(t *testing.T) {
	t.Parallel()

	specs, err := ParseAll([]string{
		"+refs/heads/*:refs/remotes/origin/*",
		"^refs/heads/wip",
		"refs/*/*:x",
		"a:b:c",
	}, Fetch)
	require.Len(t, specs, 2)
	require.ErrorIs(t, err, ErrWildcardMismatch)
	require.ErrorIs(t, err, ErrIllegalColonPlacement)

	specs, err = ParseAll([]string{"main", "tag v1"}, Push)
	require.NoError(t, err)
	require.Len(t, specs, 2)
}
