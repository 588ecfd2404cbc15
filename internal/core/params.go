package core

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeBool denotes boolean parameters.
	ParamTypeBool ParamType = "bool"
)

// Parameter describes a single value reported by a simulation or the viewer.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the values a sim exposes to the overlay.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// ParameterProvider is implemented by sims that can describe themselves.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// Lines flattens the snapshot into "Label: value" strings, one per parameter,
// preceded by each group's name.
func (s ParameterSnapshot) Lines() []string {
	var out []string
	for _, g := range s.Groups {
		if g.Name != "" {
			out = append(out, g.Name)
		}
		for _, p := range g.Params {
			out = append(out, "  "+p.Label+": "+p.Value)
		}
	}
	return out
}
