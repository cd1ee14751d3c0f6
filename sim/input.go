package sim

// Input is one frame's worth of intent, sampled by the frontend before
// each tick. Held fields report level, Pressed fields report the edge.
// The simulation never polls hardware; feeding identical Input
// sequences replays identical runs.
type Input struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
	Run   bool

	Jump        bool
	JumpPressed bool

	Fire        bool
	FirePressed bool

	DownPressed   bool
	SelectPressed bool // cycles the armed weapon
}

// MoveX returns -1, 0, or +1 from the held directions.
func (in Input) MoveX() int {
	switch {
	case in.Left && !in.Right:
		return -1
	case in.Right && !in.Left:
		return 1
	}
	return 0
}
