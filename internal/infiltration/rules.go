package infiltration

import (
	"errors"
	"fmt"

	"github.com/gokatas/katas/pkg/types"
)

// ErrUnknownRule is returned by Evaluate for a Rule outside the known set.
var ErrUnknownRule = errors.New("infiltration: unknown rule")

// Rule names one of the infiltration predicates.
type Rule int

// Rules in the order the menu prints them.
const (
	FastAttack Rule = iota + 1
	Spy
	SignalPrisoner
	FreePrisoner
)

// String returns the predicate name used in menu output and metric labels.
func (r Rule) String() string {
	switch r {
	case FastAttack:
		return "canFastAttack"
	case Spy:
		return "canSpy"
	case SignalPrisoner:
		return "canSignalPrisoner"
	case FreePrisoner:
		return "canFreePrisoner"
	default:
		return fmt.Sprintf("Rule(%d)", int(r))
	}
}

// Rules returns every rule in menu order.
func Rules() []Rule {
	return []Rule{FastAttack, Spy, SignalPrisoner, FreePrisoner}
}

// CanFastAttack reports whether a fast attack can be made.
func CanFastAttack(knightAwake bool) bool {
	return !knightAwake
}

// CanSpy reports whether the group can be spied upon.
func CanSpy(knightAwake, archerAwake, prisonerAwake bool) bool {
	return knightAwake || archerAwake || prisonerAwake
}

// CanSignalPrisoner reports whether the prisoner can be signaled without the
// archer noticing.
func CanSignalPrisoner(archerAwake, prisonerAwake bool) bool {
	return !archerAwake || prisonerAwake
}

// CanFreePrisoner reports whether the prisoner can be freed. The dog scares
// off the guards regardless of who is awake.
func CanFreePrisoner(knightAwake, archerAwake, prisonerAwake, dogPresent bool) bool {
	return (!knightAwake && !archerAwake && prisonerAwake) || dogPresent
}

// Evaluate applies rule to the facts in p.
func Evaluate(rule Rule, p types.Party) (bool, error) {
	switch rule {
	case FastAttack:
		return CanFastAttack(p.KnightAwake), nil
	case Spy:
		return CanSpy(p.KnightAwake, p.ArcherAwake, p.PrisonerAwake), nil
	case SignalPrisoner:
		return CanSignalPrisoner(p.ArcherAwake, p.PrisonerAwake), nil
	case FreePrisoner:
		return CanFreePrisoner(p.KnightAwake, p.ArcherAwake, p.PrisonerAwake, p.DogPresent), nil
	default:
		return false, fmt.Errorf("%w: %d", ErrUnknownRule, int(rule))
	}
}
