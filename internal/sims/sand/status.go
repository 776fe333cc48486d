package sand

import (
	"fmt"
	"strconv"

	"sandbox/internal/core"
)

const (
	keyBrush   = "brush"
	keyCell    = "cell"
	keyDensity = "density"
	keyRunning = "running"
)

// StatusLine renders the overlay text shown every frame.
func (w *World) StatusLine() string {
	running := "No"
	if w.params.Running {
		running = "Yes"
	}
	return fmt.Sprintf("Brush size: %d\nCELL_SIZE: %d\nChance: %.3f\nSimulation running: %s\nParticles: %d",
		w.params.BrushSize, w.params.CellSize, w.params.Density, running, w.grid.Count())
}

// Parameters snapshots the tunables for the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Brush",
			Params: []core.Parameter{
				intParam(keyBrush, "Brush size", w.params.BrushSize),
				floatParam(keyDensity, "Chance", w.params.Density),
			},
		},
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam(keyCell, "Cell size", w.params.CellSize),
				boolParam(keyRunning, "Running", w.params.Running),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable parameters.
func (w *World) ParameterControls() []core.ParameterControl {
	cell := core.ParameterControl{
		Key: keyCell, Label: "Cell size", Type: core.ParamTypeInt,
		Step: cellStep, Min: float64(w.params.MinCellSize), HasMin: true,
	}
	if w.params.MaxCellSize > 0 {
		cell.Max = float64(w.params.MaxCellSize)
		cell.HasMax = true
	}
	return []core.ParameterControl{
		{
			Key: keyBrush, Label: "Brush size", Type: core.ParamTypeInt,
			Step: brushStep, Min: float64(w.params.MinBrushSize), HasMin: true,
		},
		cell,
		{
			Key: keyDensity, Label: "Chance", Type: core.ParamTypeFloat,
			Step: densityStep, Min: 0, Max: 1, HasMin: true, HasMax: true,
		},
	}
}

// SetIntParameter updates brush or cell size. A cell size change reallocates
// the grid under the same policy as the scroll wheel.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case keyBrush:
		w.params.BrushSize = value
		w.params.Clamp()
		return true
	case keyCell:
		if !w.params.CellSizeAllocatable(value) {
			return false
		}
		w.params.CellSize = value
		w.reallocate()
		return true
	}
	return false
}

// SetFloatParameter updates the spawn density.
func (w *World) SetFloatParameter(key string, value float64) bool {
	if key != keyDensity {
		return false
	}
	w.params.Density = value
	w.params.Clamp()
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', 3, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
