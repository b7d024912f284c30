package ir

// ZoneType names the functional role of a register zone.
type ZoneType string

const (
	ZoneStorage      ZoneType = "STORAGE"
	ZoneEntanglement ZoneType = "ENTANGLEMENT"
	ZoneReadout      ZoneType = "READOUT"
	ZonePreparation  ZoneType = "PREPARATION"
	ZoneReservoir    ZoneType = "RESERVOIR"
	ZoneBuffer       ZoneType = "BUFFER"
)

// Zone is an axis-aligned rectangular region of the register dedicated to a
// single functional role.
type Zone struct {
	ID             string   `json:"zone_id"`
	Type           ZoneType `json:"zone_type"`
	XMin           float64  `json:"x_min"`
	XMax           float64  `json:"x_max"`
	YMin           float64  `json:"y_min"`
	YMax           float64  `json:"y_max"`
	ShieldingLight bool     `json:"shielding_light"`
}

// NewZone validates bounds (x_min < x_max, y_min < y_max) and returns the
// constructed Zone, or an InvertedZoneBounds structural error.
func NewZone(id string, zoneType ZoneType, xMin, xMax, yMin, yMax float64, shieldingLight bool) (*Zone, error) {
	z := &Zone{ID: id, Type: zoneType, XMin: xMin, XMax: xMax, YMin: yMin, YMax: yMax, ShieldingLight: shieldingLight}
	if err := z.Validate(); err != nil {
		return nil, err
	}
	return z, nil
}

// Validate checks the zone's own structural invariant: x_min<x_max and
// y_min<y_max. It does not know about sibling zones, so zone_id uniqueness
// is enforced by the caller (Register.Validate).
func (z Zone) Validate() error {
	if !(z.XMin < z.XMax) || !(z.YMin < z.YMax) {
		return newErr(ErrInvertedZoneBounds, "zone %q: bounds must satisfy x_min<x_max and y_min<y_max, got (%v,%v)-(%v,%v)", z.ID, z.XMin, z.YMin, z.XMax, z.YMax)
	}
	return nil
}

// Contains reports whether p lies within the zone's closed rectangle.
func (z Zone) Contains(p Position) bool {
	return p.X >= z.XMin && p.X <= z.XMax && p.Y >= z.YMin && p.Y <= z.YMax
}
