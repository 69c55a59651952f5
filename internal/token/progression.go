package token

import (
	"sort"
	"strconv"
	"strings"
)

// ProgressionStep is one entry of an ordered size-token progression.
type ProgressionStep struct {
	Name  string
	Value Value
}

// Progression is a strictly ordered list of size tokens:
// none < 0.5x < default < <numeric>x with numerics ascending. The elevation
// engine advances through it to derive auto-scaled magnitudes.
type Progression struct {
	steps []ProgressionStep
}

// ProgressionFromGroup builds the progression from a token group (for example
// the "size" branch of the Tokens document). Entries whose names do not fit
// the progression vocabulary are ignored.
func ProgressionFromGroup(doc Document, group string) Progression {
	branch := doc.Branch(group)
	if branch == nil {
		return Progression{}
	}

	steps := make([]ProgressionStep, 0, len(branch))
	// Direct map access: progression names like "0.5x" contain dots and must
	// not be split as lookup paths.
	for name, node := range branch {
		if _, ok := progressionRank(name); !ok {
			continue
		}
		value, ok := CoerceValue(node)
		if !ok {
			continue
		}
		steps = append(steps, ProgressionStep{Name: name, Value: value})
	}

	sort.Slice(steps, func(i, j int) bool {
		ri, _ := progressionRank(steps[i].Name)
		rj, _ := progressionRank(steps[j].Name)
		return ri < rj
	})

	return Progression{steps: steps}
}

// progressionRank orders progression names: none first, then multipliers with
// "default" counting as 1x.
func progressionRank(name string) (float64, bool) {
	switch name {
	case "none":
		return -1, true
	case "default":
		return 1, true
	}
	if multiplier, ok := strings.CutSuffix(name, "x"); ok {
		if rank, err := strconv.ParseFloat(multiplier, 64); err == nil {
			return rank, true
		}
	}
	return 0, false
}

// Len returns the number of steps in the progression.
func (p Progression) Len() int {
	return len(p.steps)
}

// Steps returns the ordered steps.
func (p Progression) Steps() []ProgressionStep {
	out := make([]ProgressionStep, len(p.steps))
	copy(out, p.steps)
	return out
}

// Index returns the position of the named step, or -1 when absent.
func (p Progression) Index(name string) int {
	for i, step := range p.steps {
		if step.Name == name {
			return i
		}
	}
	return -1
}

// Advance returns the step reached by moving n positions forward from the
// named baseline, counting the baseline itself as the first position. The
// result clamps at both ends of the progression.
func (p Progression) Advance(baseline string, n int) (ProgressionStep, bool) {
	if len(p.steps) == 0 {
		return ProgressionStep{}, false
	}
	start := p.Index(baseline)
	if start < 0 {
		return ProgressionStep{}, false
	}
	target := start + n - 1
	if target < 0 {
		target = 0
	}
	if target >= len(p.steps) {
		target = len(p.steps) - 1
	}
	return p.steps[target], true
}
