package life

// CellState is the state of a single cell.
type CellState uint8

const (
	// Dead is the zero value so freshly allocated grids start empty.
	Dead CellState = iota
	Alive
)

// Intensity values used by renderers that expect a grayscale frame.
const (
	IntensityOff uint8 = 0
	IntensityOn  uint8 = 255
)

func (s CellState) String() string {
	if s == Alive {
		return "alive"
	}
	return "dead"
}

// Intensity converts the state to the 255/0 display encoding.
func (s CellState) Intensity() uint8 {
	if s == Alive {
		return IntensityOn
	}
	return IntensityOff
}

// FromIntensity maps a display value back to a state. Any nonzero value is
// treated as live.
func FromIntensity(v uint8) CellState {
	if v != IntensityOff {
		return Alive
	}
	return Dead
}

// Next applies Conway's rule to a cell with the given live-neighbor count.
func Next(s CellState, liveNeighbors int) CellState {
	if s == Alive {
		if liveNeighbors < 2 || liveNeighbors > 3 {
			return Dead
		}
		return Alive
	}
	if liveNeighbors == 3 {
		return Alive
	}
	return Dead
}
