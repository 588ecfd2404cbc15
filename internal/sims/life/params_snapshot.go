package life

import (
	"strconv"

	"zlife/internal/core"
)

// Parameters reports the board and progress values shown on the overlay.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("size", "Size", l.grid.Size()),
				intParam("exponent", "Exponent", l.grid.Exponent()),
			},
		},
		{
			Name: "Population",
			Params: []core.Parameter{
				intParam("generation", "Generation", l.gen),
				intParam("alive", "Alive", l.grid.Population()),
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}
