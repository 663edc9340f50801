// Package types defines shared Go types used by both the rules package and
// the menu driver. These are the canonical in-memory representations of the
// facts a decision rule is evaluated against, separate from the YAML fixture
// format.
package types
