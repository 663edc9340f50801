// Package metrics records what happened during one menu session and writes it
// in the Prometheus text exposition format.
//
// session.go provides Session, which satisfies the menu driver's Recorder
// interface and keeps three families:
//
//	katas_menu_selections_total{option}          counter
//	katas_rule_evaluations_total{rule, outcome}  counter
//	katas_cooking_minutes{quantity}              gauge (last value)
//
// Every sample also carries a session label so files from different runs can
// be told apart.
//
// expfmt.go reads an exposition file back into metric families and sums
// values by label; the stats command is built on it.
package metrics
