// Package infiltration encodes the decision logic for Annalyn's rescue quest.
//
// rules.go provides four pure predicates over the awake state of the knight,
// the archer and the prisoner, plus the presence of Annalyn's dog:
//
//   - CanFastAttack: the knight is asleep
//   - CanSpy: at least one of the three is awake
//   - CanSignalPrisoner: the archer is asleep or the prisoner is awake
//   - CanFreePrisoner: the dog is present, or only the prisoner is awake
//
// Evaluate applies a named Rule to a types.Party so callers that hold the
// facts as data (the menu fixtures) do not need to pick arguments by hand.
package infiltration
