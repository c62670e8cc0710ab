package catalog

import "fmt"

// State is a Brazilian federative unit (UF).
type State struct {
	Code string `json:"code" yaml:"code"` // Two-letter acronym, e.g. "SP"
	Name string `json:"name" yaml:"name"`
}

// Label returns the dropdown text for the state, e.g. "SP - São Paulo".
func (s State) Label() string {
	return fmt.Sprintf("%s - %s", s.Code, s.Name)
}

// City is a locality inside a state together with its micro-region.
type City struct {
	Name            string `json:"name" yaml:"name"`
	MicroregionName string `json:"microregion" yaml:"microregion"`
}

// StateCodeLength is the number of characters in a UF acronym.
const StateCodeLength = 2
