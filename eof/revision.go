package eof

// Revision identifies an EVM hard-fork level. Only the ordering relative to
// Cancun matters to this package: EOF is defined starting at Cancun.
type Revision int

const (
	Frontier Revision = iota
	Homestead
	Byzantium
	Constantinople
	Istanbul
	Berlin
	London
	Paris
	Shanghai
	Cancun
	Prague
)

// String returns the canonical lower-case fork name.
func (r Revision) String() string {
	switch r {
	case Frontier:
		return "frontier"
	case Homestead:
		return "homestead"
	case Byzantium:
		return "byzantium"
	case Constantinople:
		return "constantinople"
	case Istanbul:
		return "istanbul"
	case Berlin:
		return "berlin"
	case London:
		return "london"
	case Paris:
		return "paris"
	case Shanghai:
		return "shanghai"
	case Cancun:
		return "cancun"
	case Prague:
		return "prague"
	default:
		return "unknown"
	}
}

// ParseRevision maps a fork name to its Revision, for config and CLI flags.
func ParseRevision(name string) (Revision, bool) {
	for r := Frontier; r <= Prague; r++ {
		if r.String() == name {
			return r, true
		}
	}
	return 0, false
}
