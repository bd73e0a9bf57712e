package demo

type Phase int

const (
	// PhaseShowing displays the current step.
	PhaseShowing Phase = iota
	// PhaseTransition is the beat between steps (the chat panel's typing
	// dots, the anki panel's card flip).
	PhaseTransition
)

// Player loops through a fixed script. It owns no timers: whatever renders
// the panel calls Tick on its own animation cadence, and teardown is simply
// dropping the Player.
type Player struct {
	steps      int
	transition bool
	index      int
	phase      Phase
}

// NewPlayer returns a Player over a script of `steps` entries. When
// `transition` is set, a PhaseTransition beat is inserted before each step
// advance.
func NewPlayer(steps int, transition bool) *Player {
	return &Player{steps: steps, transition: transition}
}

func (p *Player) Index() int {
	return p.index
}

func (p *Player) Phase() Phase {
	return p.phase
}

// Tick advances the machine one beat. The index wraps modulo the script
// length, so the panel loops forever.
func (p *Player) Tick() {
	if p.steps <= 0 {
		return
	}
	if p.transition && p.phase == PhaseShowing {
		p.phase = PhaseTransition
		return
	}
	p.phase = PhaseShowing
	p.index = (p.index + 1) % p.steps
}

func (p *Player) Reset() {
	p.index = 0
	p.phase = PhaseShowing
}
