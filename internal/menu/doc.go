// Package menu drives the interactive console menu.
//
// machine.go is the pure part: Transition(state, selection, fixtures) returns
// the next State and a Report holding the computed results. Selection 1 runs
// the lasagna calculator, 2 runs the infiltration rules, anything else moves
// the machine to Terminated with an empty Report.
//
// render.go formats the prompt and Reports as the labelled text lines the
// menu has always printed.
//
// driver.go owns all I/O: Driver.Run reads one whitespace-delimited integer
// per iteration, applies Transition, renders the Report and reports it to an
// optional Recorder. A token that is not an integer, or end of input before a
// quit selection, ends Run with an *InputError. Fixtures can be swapped
// between iterations with SetFixtures (used by config hot-reload).
package menu
