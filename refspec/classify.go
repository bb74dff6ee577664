package refspec

import "github.com/go-git/go-git/v5/plumbing"

// Classifier turns parsed refspecs into instructions. The zero value fetches
// the current branch for an empty fetch refspec and lets a push refspec
// without destination update the ref of the same name.
type Classifier struct {
	FetchDefault DefaultFetch
	// StrictPush rejects push refspecs without an explicit destination.
	StrictPush bool
}

// Instruction classifies r with the zero Classifier.
func (r RefSpecRef) Instruction() (Instruction, error) {
	return Classifier{}.Classify(r)
}

// shape is the part of a refspec the classification rules look at.
type shape struct {
	op       Operation
	negative bool
	src      bool
	dst      bool
}

type rule func(c Classifier, r RefSpecRef) (Instruction, error)

// rules lists every combination a successful parse can produce. Shapes that
// are missing either cannot come out of Parse or have no instruction.
var rules = map[shape]rule{
	{op: Fetch}: func(c Classifier, _ RefSpecRef) (Instruction, error) {
		return FetchDefault{Target: c.FetchDefault}, nil
	},
	{op: Fetch, src: true}: func(_ Classifier, r RefSpecRef) (Instruction, error) {
		return FetchOnly{Source: sourceName(r.src)}, nil
	},
	{op: Fetch, src: true, dst: true}: func(_ Classifier, r RefSpecRef) (Instruction, error) {
		return FetchAndUpdate{Source: sourceName(r.src), Destination: r.dst, AllowNonFastForward: r.mode == Force}, nil
	},
	{op: Fetch, dst: true}: func(_ Classifier, r RefSpecRef) (Instruction, error) {
		return FetchAndUpdate{Source: []byte(plumbing.HEAD), Destination: r.dst, AllowNonFastForward: r.mode == Force}, nil
	},
	{op: Fetch, negative: true, src: true}: func(_ Classifier, r RefSpecRef) (Instruction, error) {
		return FetchExclude{Source: sourceName(r.src)}, nil
	},
	{op: Push}: func(_ Classifier, r RefSpecRef) (Instruction, error) {
		return PushMatching{AllowNonFastForward: r.mode == Force}, nil
	},
	{op: Push, dst: true}: func(_ Classifier, r RefSpecRef) (Instruction, error) {
		return PushDelete{Destination: r.dst}, nil
	},
	{op: Push, src: true, dst: true}: func(_ Classifier, r RefSpecRef) (Instruction, error) {
		return PushUpdate{Source: sourceName(r.src), Destination: r.dst, AllowNonFastForward: r.mode == Force}, nil
	},
	{op: Push, src: true}: func(c Classifier, r RefSpecRef) (Instruction, error) {
		if c.StrictPush {
			return nil, &ClassifyError{Spec: r.String(), Detail: "push refspec needs an explicit destination"}
		}
		name := sourceName(r.src)
		return PushUpdate{Source: name, Destination: name, AllowNonFastForward: r.mode == Force}, nil
	},
}

// Classify returns the instruction r resolves to.
func (c Classifier) Classify(r RefSpecRef) (Instruction, error) {
	key := shape{
		op:       r.op,
		negative: r.mode == Negative,
		src:      len(r.src) > 0,
		dst:      len(r.dst) > 0,
	}
	if apply, ok := rules[key]; ok {
		return apply(c, r)
	}
	if key.op == Push && key.negative {
		return nil, &ClassifyError{Spec: r.String(), Detail: "negative refspecs are not supported when pushing"}
	}
	return nil, &ClassifyError{Spec: r.String(), Detail: "no rule for this combination", Internal: true}
}

// sourceName resolves the '@' alias to HEAD.
func sourceName(src []byte) []byte {
	if string(src) == "@" {
		return []byte(plumbing.HEAD)
	}
	return src
}
