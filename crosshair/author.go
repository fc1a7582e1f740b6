package crosshair

// AuthorState is the phase of the two-click segment authoring flow.
type AuthorState int

const (
	AuthorIdle AuthorState = iota
	AuthorAwaitingFirst
	AuthorAwaitingSecond
)

// Author is the editing-session state machine for drawing custom lines.
// Each completed pair of clicks produces one Line stamped with the current
// pen thickness and color; appending it to the config is the caller's job
// so the config value itself stays copy-on-write.
type Author struct {
	state   AuthorState
	pending Point

	PenThickness int
	PenColor     uint32
}

// NewAuthor returns an idle author with the given pen.
func NewAuthor(thickness int, color uint32) *Author {
	return &Author{PenThickness: thickness, PenColor: color}
}

func (a *Author) State() AuthorState { return a.state }

func (a *Author) Active() bool { return a.state != AuthorIdle }

// Pending returns the captured first point, if one is waiting for its pair.
func (a *Author) Pending() (Point, bool) {
	return a.pending, a.state == AuthorAwaitingSecond
}

// Start activates authoring. No-op when already active.
func (a *Author) Start() {
	if a.state == AuthorIdle {
		a.state = AuthorAwaitingFirst
	}
}

// Stop deactivates authoring, discarding any incomplete point.
func (a *Author) Stop() {
	a.state = AuthorIdle
	a.pending = Point{}
}

// Reset cancels a pending point without deactivating, used by "clear all".
func (a *Author) Reset() {
	if a.state == AuthorAwaitingSecond {
		a.state = AuthorAwaitingFirst
		a.pending = Point{}
	}
}

// Click feeds one pointer-down position in local coordinates. The first
// click of a pair is captured; the second completes a Line and the machine
// returns to awaiting a first point. Clicks while idle are ignored.
func (a *Author) Click(p Point) (Line, bool) {
	switch a.state {
	case AuthorAwaitingFirst:
		a.pending = p
		a.state = AuthorAwaitingSecond
		return Line{}, false
	case AuthorAwaitingSecond:
		l := Line{
			StartX:    a.pending.X,
			StartY:    a.pending.Y,
			EndX:      p.X,
			EndY:      p.Y,
			Thickness: a.PenThickness,
			Color:     a.PenColor,
		}
		a.pending = Point{}
		a.state = AuthorAwaitingFirst
		return l, true
	}
	return Line{}, false
}

// ToLocal translates a surface position into the author's local frame.
func ToLocal(x, y, centerX, centerY int) Point {
	return Point{X: x - centerX, Y: y - centerY}
}
