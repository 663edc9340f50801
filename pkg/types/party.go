package types

import "gopkg.in/yaml.v3"

// Party is one snapshot of the facts an infiltration rule is evaluated
// against. A rule reads only the fields it cares about.
type Party struct {
	KnightAwake   bool `yaml:"knight_awake"`
	ArcherAwake   bool `yaml:"archer_awake"`
	PrisonerAwake bool `yaml:"prisoner_awake"`

	// DogPresent is true when Annalyn brought her pet dog along.
	DogPresent bool `yaml:"dog_present"`
}

// UnmarshalYAML decodes a party snapshot as a whole. Omitted facts are false
// rather than inherited from whatever value p held before decoding.
func (p *Party) UnmarshalYAML(node *yaml.Node) error {
	type plain Party
	var v plain
	if err := node.Decode(&v); err != nil {
		return err
	}
	*p = Party(v)
	return nil
}
