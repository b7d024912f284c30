package ir

const (
	DefaultMinAtomDistance = 4.0
	DefaultBlockadeRadius  = 8.0

	minAtomDistanceFloor = 1.0
	minAtomDistanceCeil  = 20.0
	blockadeRadiusFloor  = 4.0
	blockadeRadiusCeil   = 15.0

	minRegisterAtoms = 1
	maxRegisterAtoms = 256
)

// Register is the atom array a Job operates on.
type Register struct {
	LayoutType      string   `json:"layout_type,omitempty"`
	MinAtomDistance float64  `json:"min_atom_distance"`
	BlockadeRadius  float64  `json:"blockade_radius"`
	Atoms           []Atom   `json:"atoms"`
	Zones           []Zone   `json:"zones,omitempty"`
}

// NewRegister validates and constructs a Register. minAtomDistance and
// blockadeRadius of 0 are replaced with their spec defaults (4.0 and 8.0
// µm respectively) since 0 is never a valid explicit value for either.
func NewRegister(layoutType string, minAtomDistance, blockadeRadius float64, atoms []Atom, zones []Zone) (*Register, error) {
	r := &Register{
		LayoutType:      layoutType,
		MinAtomDistance: minAtomDistance,
		BlockadeRadius:  blockadeRadius,
		Atoms:           atoms,
		Zones:           zones,
	}
	r.ApplyDefaults()
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// ApplyDefaults replaces a zero MinAtomDistance/BlockadeRadius with the
// spec defaults (4.0 and 8.0 µm). 0 is never a valid explicit value for
// either field, so this is unambiguous whether the value came from a Go
// zero-value struct literal or an omitted JSON field.
func (r *Register) ApplyDefaults() {
	if r.MinAtomDistance == 0 {
		r.MinAtomDistance = DefaultMinAtomDistance
	}
	if r.BlockadeRadius == 0 {
		r.BlockadeRadius = DefaultBlockadeRadius
	}
}

// Validate checks the register-level structural invariants of spec.md §3.
func (r *Register) Validate() error {
	if len(r.Atoms) < minRegisterAtoms {
		return newErr(ErrEmptyAtomList, "register must contain at least %d atom(s)", minRegisterAtoms)
	}
	if len(r.Atoms) > maxRegisterAtoms {
		return newErr(ErrTooManyAtoms, "register contains %d atoms, exceeding the %d limit", len(r.Atoms), maxRegisterAtoms)
	}

	seen := make(map[int]bool, len(r.Atoms))
	for _, a := range r.Atoms {
		if seen[a.ID] {
			return newErr(ErrDuplicateAtomID, "atom id %d appears more than once", a.ID)
		}
		seen[a.ID] = true
	}

	if r.MinAtomDistance < minAtomDistanceFloor || r.MinAtomDistance > minAtomDistanceCeil {
		return newErr(ErrRegisterBoundsInvalid, "min_atom_distance (%v) must lie within [%v,%v]", r.MinAtomDistance, minAtomDistanceFloor, minAtomDistanceCeil)
	}
	if r.BlockadeRadius < blockadeRadiusFloor || r.BlockadeRadius > blockadeRadiusCeil {
		return newErr(ErrRegisterBoundsInvalid, "blockade_radius (%v) must lie within [%v,%v]", r.BlockadeRadius, blockadeRadiusFloor, blockadeRadiusCeil)
	}
	if r.MinAtomDistance > r.BlockadeRadius {
		return newErr(ErrRegisterBoundsInvalid, "min_atom_distance (%v) must not exceed blockade_radius (%v)", r.MinAtomDistance, r.BlockadeRadius)
	}

	seenZones := make(map[string]bool, len(r.Zones))
	for _, z := range r.Zones {
		if seenZones[z.ID] {
			return newErr(ErrDuplicateZoneID, "zone id %q appears more than once", z.ID)
		}
		seenZones[z.ID] = true
		if err := z.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// AtomByID returns the atom with the given id and whether it was found.
func (r *Register) AtomByID(id int) (Atom, bool) {
	for _, a := range r.Atoms {
		if a.ID == id {
			return a, true
		}
	}
	return Atom{}, false
}

// ZonesDefined reports whether the register carries any zones. Absence of
// zones is a valid, backward-compatible configuration (spec §3, §4.2.2.4):
// the whole canvas is then treated as a single ENTANGLEMENT zone for
// zonal-check purposes.
func (r *Register) ZonesDefined() bool {
	return len(r.Zones) > 0
}

// ZonesOfType returns the zones matching the given type.
func (r *Register) ZonesOfType(t ZoneType) []Zone {
	var out []Zone
	for _, z := range r.Zones {
		if z.Type == t {
			out = append(out, z)
		}
	}
	return out
}

// ZoneContaining returns the first zone containing p, if any.
func (r *Register) ZoneContaining(p Position) (Zone, bool) {
	for _, z := range r.Zones {
		if z.Contains(p) {
			return z, true
		}
	}
	return Zone{}, false
}
