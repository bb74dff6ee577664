package refspec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var roundTripSpecs = []struct {
	input string
	op    Operation
}{
	{"", Fetch},
	{"", Push},
	{"main", Fetch},
	{"main", Push},
	{"HEAD", Fetch},
	{"+refs/heads/*:refs/remotes/origin/*", Fetch},
	{"refs/heads/main:refs/remotes/origin/main", Fetch},
	{"^refs/heads/wip", Fetch},
	{"^refs/heads/wip/*", Fetch},
	{":refs/heads/topic", Push},
	{"+:refs/heads/topic", Push},
	{"+refs/heads/feat-*:refs/heads/mirror/feat-*", Push},
	{"refs/tags/v1.0:refs/tags/v1.0", Push},
	{"@:refs/heads/main", Push},
	{":refs/heads/upstream", Fetch},
}

func TestFormatRoundTrip(t *testing.T) {
	t.Parallel()

	for _, tt := range roundTripSpecs {
		spec := mustParse(t, tt.input, tt.op)
		require.Equal(t, tt.input, spec.String())
		require.Equal(t, tt.input, spec.ToOwned().String())
	}
}

func TestParseIsIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []struct {
		input string
		op    Operation
	}{
		{"!refs/heads/wip", Fetch},
		{"tag v1.0", Push},
		{"+tag v1.0", Fetch},
		{"refs/heads/main:", Fetch},
	}
	for _, tt := range roundTripSpecs {
		inputs = append(inputs, tt)
	}

	for _, tt := range inputs {
		first := mustParse(t, tt.input, tt.op)
		second := mustParse(t, first.String(), tt.op)
		require.True(t, first.Equal(second), "%q: %q != %q", tt.input, first, second)
	}
}

func TestFormatNormalisesSigils(t *testing.T) {
	t.Parallel()

	require.Equal(t, "^refs/heads/wip", mustParse(t, "!refs/heads/wip", Fetch).String())
	require.Equal(t, "+refs/tags/v1:refs/tags/v1", mustParse(t, "+tag v1", Push).String())
	require.Equal(t, "refs/heads/main", mustParse(t, "refs/heads/main:", Fetch).String())
}

func TestAppendTo(t *testing.T) {
	t.Parallel()

	spec := mustParse(t, "+refs/heads/*:refs/remotes/origin/*", Fetch)
	out := spec.AppendTo([]byte("fetch = "))
	require.Equal(t, "fetch = +refs/heads/*:refs/remotes/origin/*", string(out))
}

func TestToOwnedIsIndependent(t *testing.T) {
	t.Parallel()

	input := []byte("refs/heads/main:refs/remotes/origin/main")
	borrowed, err := Parse(input, Fetch)
	require.NoError(t, err)
	owned := borrowed.ToOwned()

	for i := range input {
		input[i] = 'x'
	}

	require.Equal(t, "refs/heads/main", owned.Source())
	require.Equal(t, "refs/remotes/origin/main", owned.Destination())
	require.Equal(t, Fetch, owned.Operation())
	require.Equal(t, Normal, owned.Mode())
	require.NotEqual(t, "refs/heads/main", string(borrowed.Source()))
}

func TestOwnedAsRef(t *testing.T) {
	t.Parallel()

	owned, err := ParseOwned("^refs/heads/wip", Fetch)
	require.NoError(t, err)

	ref := owned.AsRef()
	require.Equal(t, Negative, ref.Mode())
	require.True(t, ref.ToOwned().Equal(owned))
	require.True(t, mustParse(t, "^refs/heads/wip", Fetch).Equal(ref))
}

func TestEmptySpec(t *testing.T) {
	t.Parallel()

	for _, op := range []Operation{Fetch, Push} {
		spec := mustParse(t, "", op)
		require.True(t, spec.IsEmpty())
		require.Nil(t, spec.Source())
		require.Nil(t, spec.Destination())
		require.Equal(t, Normal, spec.Mode())
	}

	require.False(t, mustParse(t, "main", Fetch).IsEmpty())
}

func TestEqualComparesOperation(t *testing.T) {
	t.Parallel()

	require.False(t, mustParse(t, "main", Fetch).Equal(mustParse(t, "main", Push)))
	require.False(t, mustParse(t, "+main", Fetch).Equal(mustParse(t, "main", Fetch)))
}

func TestModeAndOperationStrings(t *testing.T) {
	t.Parallel()

	require.Equal(t, "normal", Normal.String())
	require.Equal(t, "force", Force.String())
	require.Equal(t, "negative", Negative.String())
	require.Equal(t, "fetch", Fetch.String())
	require.Equal(t, "push", Push.String())
}
