package input

// Key is an abstract game input symbol, decoupled from the terminal backend
type Key int

const (
	KeyLeft  Key = iota // rotate counter-clockwise
	KeyRight            // rotate clockwise
	KeyBoost            // hold to boost forward
	KeyBrake            // hold to slow down
	KeyFan              // hold for the 3-projectile fan
	KeyKill             // debug: kill the ship
	KeyQuit
)

// Set is one frame's pressed-key snapshot, read-only to simulation systems
type Set map[Key]struct{}

// NewSet returns an empty snapshot
func NewSet() Set {
	return make(Set)
}

// Contains reports whether the key is pressed this frame
func (s Set) Contains(k Key) bool {
	_, ok := s[k]
	return ok
}

// Add marks a key as pressed
func (s Set) Add(k Key) {
	s[k] = struct{}{}
}

// Clear empties the snapshot in place
func (s Set) Clear() {
	for k := range s {
		delete(s, k)
	}
}
