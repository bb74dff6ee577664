package refspec

import "fmt"

// Instruction is the operation-specific effect of a refspec. The set of
// implementations is closed: FetchOnly, FetchAndUpdate, FetchExclude,
// FetchDefault, PushMatching, PushDelete and PushUpdate.
type Instruction interface {
	// Operation returns Fetch or Push.
	Operation() Operation
	String() string
	isInstruction()
}

// DefaultFetch selects what an empty fetch refspec fetches.
type DefaultFetch int

const (
	// DefaultFetchCurrentBranch fetches the remote HEAD for the current branch
	DefaultFetchCurrentBranch DefaultFetch = iota
	// DefaultFetchAllBranches fetches every branch of the remote
	DefaultFetchAllBranches
)

func (d DefaultFetch) String() string {
	switch d {
	case DefaultFetchCurrentBranch:
		return "current-branch"
	case DefaultFetchAllBranches:
		return "all-branches"
	default:
		return "unknown"
	}
}

// ParseDefaultFetch parses the names returned by DefaultFetch.String.
func ParseDefaultFetch(s string) (DefaultFetch, error) {
	switch s {
	case "current-branch":
		return DefaultFetchCurrentBranch, nil
	case "all-branches":
		return DefaultFetchAllBranches, nil
	default:
		return 0, fmt.Errorf("unknown fetch default %q (want current-branch or all-branches)", s)
	}
}

// FetchOnly fetches Source without updating a local ref.
type FetchOnly struct {
	Source []byte
}

// FetchAndUpdate fetches Source and stores it in Destination.
type FetchAndUpdate struct {
	Source              []byte
	Destination         []byte
	AllowNonFastForward bool
}

// FetchExclude removes refs matching Source from the fetch.
type FetchExclude struct {
	Source []byte
}

// FetchDefault is the instruction for an empty fetch refspec.
type FetchDefault struct {
	Target DefaultFetch
}

// PushMatching pushes all branches that exist on both sides.
type PushMatching struct {
	AllowNonFastForward bool
}

// PushDelete deletes Destination, which may be a pattern, on the remote.
type PushDelete struct {
	Destination []byte
}

// PushUpdate updates Destination on the remote with Source.
type PushUpdate struct {
	Source              []byte
	Destination         []byte
	AllowNonFastForward bool
}

func (FetchOnly) Operation() Operation      { return Fetch }
func (FetchAndUpdate) Operation() Operation { return Fetch }
func (FetchExclude) Operation() Operation   { return Fetch }
func (FetchDefault) Operation() Operation   { return Fetch }
func (PushMatching) Operation() Operation   { return Push }
func (PushDelete) Operation() Operation     { return Push }
func (PushUpdate) Operation() Operation     { return Push }

func (FetchOnly) isInstruction()      {}
func (FetchAndUpdate) isInstruction() {}
func (FetchExclude) isInstruction()   {}
func (FetchDefault) isInstruction()   {}
func (PushMatching) isInstruction()   {}
func (PushDelete) isInstruction()     {}
func (PushUpdate) isInstruction()     {}

func (i FetchOnly) String() string {
	return fmt.Sprintf("fetch only %s", i.Source)
}

func (i FetchAndUpdate) String() string {
	return fmt.Sprintf("fetch %s and update %s%s", i.Source, i.Destination, forceSuffix(i.AllowNonFastForward))
}

func (i FetchExclude) String() string {
	return fmt.Sprintf("exclude %s", i.Source)
}

func (i FetchDefault) String() string {
	return fmt.Sprintf("fetch default (%s)", i.Target)
}

func (i PushMatching) String() string {
	return "push matching branches" + forceSuffix(i.AllowNonFastForward)
}

func (i PushDelete) String() string {
	return fmt.Sprintf("delete %s", i.Destination)
}

func (i PushUpdate) String() string {
	return fmt.Sprintf("push %s to %s%s", i.Source, i.Destination, forceSuffix(i.AllowNonFastForward))
}

func forceSuffix(force bool) string {
	if force {
		return " (force)"
	}
	return ""
}
