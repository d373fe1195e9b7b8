package body

// Kind tags a body with a display/diagnostic category. It has no effect
// on the physics; Default is used when a scenario omits type, and is the
// Kind of any Body built with New and never assigned one.
type Kind int

const (
	Default Kind = iota
	Star
	Quasar
	Planet
	Comet
	Asteroid
	Blackhole
	Wormhole
)

// kindNames maps each JSON/CLI spelling to its Kind, matching spec.md §6's
// scenario "type" field exactly.
var kindNames = map[string]Kind{
	"Star":      Star,
	"Quasar":    Quasar,
	"Planet":    Planet,
	"Comet":     Comet,
	"Asteroid":  Asteroid,
	"Blackhole": Blackhole,
	"Wormhole":  Wormhole,
}

// ParseKind resolves a scenario "type" string to a Kind. An unrecognized
// string is a config error per spec.md §7.
func ParseKind(s string) (Kind, bool) {
	k, ok := kindNames[s]
	return k, ok
}
