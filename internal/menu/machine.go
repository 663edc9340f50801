package menu

import (
	"fmt"

	"github.com/gokatas/katas/internal/config"
	"github.com/gokatas/katas/internal/infiltration"
	"github.com/gokatas/katas/internal/lasagna"
	"github.com/gokatas/katas/pkg/types"
)

// State is the menu's position in its loop.
type State int

const (
	// AwaitingSelection is the initial state: the next token is a selection.
	AwaitingSelection State = iota
	// Terminated means the loop has exited and nothing more is read.
	Terminated
)

func (s State) String() string {
	switch s {
	case AwaitingSelection:
		return "awaiting_selection"
	case Terminated:
		return "terminated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Selection is the integer read from the input.
type Selection int

// Meaningful selections. Every other value quits.
const (
	SelectCooking      Selection = 1
	SelectInfiltration Selection = 2
)

// Option names a selection for logs and metrics.
func (s Selection) Option() string {
	switch s {
	case SelectCooking:
		return "cooking"
	case SelectInfiltration:
		return "infiltration"
	default:
		return "quit"
	}
}

// Report is the computed outcome of one transition. Exactly one of Cooking
// and Rules is set for a recognised selection; both are empty on quit.
type Report struct {
	Selection Selection
	Cooking   *CookingResult
	Rules     []RuleResult
}

// Empty reports whether the transition computed nothing.
func (r Report) Empty() bool {
	return r.Cooking == nil && len(r.Rules) == 0
}

// CookingResult holds the lasagna calculator outputs for the fixtures.
type CookingResult struct {
	Remaining   int
	Overrun     bool
	Preparation int
	Total       int
}

// RuleResult is one evaluated infiltration rule.
type RuleResult struct {
	Rule    infiltration.Rule
	Party   types.Party
	Outcome bool
}

// Transition applies sel to state. It never touches I/O.
func Transition(state State, sel Selection, fx config.Fixtures) (State, Report, error) {
	if state == Terminated {
		return Terminated, Report{}, nil
	}

	switch sel {
	case SelectCooking:
		return AwaitingSelection, Report{Selection: sel, Cooking: cook(fx.Cooking)}, nil
	case SelectInfiltration:
		rules, err := infiltrate(fx.Infiltration)
		if err != nil {
			return state, Report{}, err
		}
		return AwaitingSelection, Report{Selection: sel, Rules: rules}, nil
	default:
		return Terminated, Report{Selection: sel}, nil
	}
}

func cook(fx config.CookingFixtures) *CookingResult {
	return &CookingResult{
		Remaining:   lasagna.RemainingDurationMinutes(fx.RemainingElapsedMinutes),
		Overrun:     lasagna.Overrun(fx.RemainingElapsedMinutes),
		Preparation: lasagna.PreparationDurationMinutes(fx.PreparationLayers),
		Total:       lasagna.TotalDurationMinutes(fx.TotalLayers, fx.TotalElapsedMinutes),
	}
}

func infiltrate(fx config.InfiltrationFixtures) ([]RuleResult, error) {
	parties := map[infiltration.Rule]types.Party{
		infiltration.FastAttack:     fx.FastAttack,
		infiltration.Spy:            fx.Spy,
		infiltration.SignalPrisoner: fx.SignalPrisoner,
		infiltration.FreePrisoner:   fx.FreePrisoner,
	}

	out := make([]RuleResult, 0, len(parties))
	for _, rule := range infiltration.Rules() {
		p := parties[rule]
		ok, err := infiltration.Evaluate(rule, p)
		if err != nil {
			return nil, fmt.Errorf("menu: %w", err)
		}
		out = append(out, RuleResult{Rule: rule, Party: p, Outcome: ok})
	}
	return out, nil
}
