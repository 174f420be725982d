package domain

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Phase is one stage of the software development lifecycle. Values are the
// literal strings stored in project files and must not be translated.
type Phase string

const (
	PhaseAnalysis    Phase = "análisis"
	PhaseDesign      Phase = "diseño"
	PhaseDevelopment Phase = "desarrollo"
	PhaseTesting     Phase = "pruebas"
	PhaseDeployment  Phase = "implementación"
	PhaseMaintenance Phase = "mantenimiento"
)

// lifecycle is shared by every project and never mutated.
var lifecycle = [...]Phase{
	PhaseAnalysis,
	PhaseDesign,
	PhaseDevelopment,
	PhaseTesting,
	PhaseDeployment,
	PhaseMaintenance,
}

// Lifecycle returns the ordered phases. The returned slice is a copy.
func Lifecycle() []Phase {
	out := make([]Phase, len(lifecycle))
	copy(out, lifecycle[:])
	return out
}

// LifecycleLen is the number of phases in the lifecycle.
func LifecycleLen() int { return len(lifecycle) }

func FirstPhase() Phase { return lifecycle[0] }

func LastPhase() Phase { return lifecycle[len(lifecycle)-1] }

// Index returns the 0-based position of p in the lifecycle, or -1.
func (p Phase) Index() int {
	for i, ph := range lifecycle {
		if ph == p {
			return i
		}
	}
	return -1
}

// Valid reports whether p is a lifecycle member.
func (p Phase) Valid() bool {
	return p.Index() >= 0
}

func (p Phase) String() string { return string(p) }

// ParsePhase trims and lowercases s and reports whether the result is a
// lifecycle phase. Input is NFC-normalized so decomposed accents still match.
func ParsePhase(s string) (Phase, bool) {
	p := Phase(norm.NFC.String(strings.ToLower(strings.TrimSpace(s))))
	return p, p.Valid()
}

// NormalizePhase is ParsePhase that falls back to the first phase for any
// value outside the lifecycle, including blank input.
func NormalizePhase(s string) Phase {
	if p, ok := ParsePhase(s); ok {
		return p
	}
	return FirstPhase()
}
