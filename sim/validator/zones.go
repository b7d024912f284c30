package validator

import "github.com/MRamiBalles/quantum-navigator/sim/ir"

// checkGlobalPulseZones implements spec.md §4.2.2.4: a global pulse
// reaching an atom parked in a STORAGE zone is a concern only when zones
// are defined at all; absence of zones is a valid, backward-compatible
// configuration and skips zonal checking entirely.
func (r *run) checkGlobalPulseZones(io indexedOp) {
	if !r.job.Register.ZonesDefined() {
		return
	}
	for _, atom := range r.job.Register.Atoms {
		pos := r.positions[atom.ID]
		zone, ok := r.job.Register.ZoneContaining(pos)
		if !ok || zone.Type != ir.ZoneStorage {
			continue
		}
		if zone.ShieldingLight {
			r.addWarning(newWarning(WarnPulseInShieldedZone, SeverityHigh, io.index, "global pulse reaches an atom in a shielded storage zone"), nil)
		} else {
			r.addWarning(newWarning(WarnPulseInStorageZone, SeverityMedium, io.index, "global pulse reaches an atom in an unshielded storage zone"), nil)
		}
	}
}

// checkMeasurementZones implements spec.md §4.2.2.4: if READOUT zones
// exist, a measured atom outside all of them is a concern; if none exist,
// measurement is allowed anywhere.
func (r *run) checkMeasurementZones(io indexedOp) {
	if !r.job.Register.ZonesDefined() {
		return
	}
	readoutZones := r.job.Register.ZonesOfType(ir.ZoneReadout)
	if len(readoutZones) == 0 {
		return
	}

	for _, atomID := range io.op.AtomIDs {
		pos, ok := r.positions[atomID]
		if !ok {
			continue
		}
		inReadout := false
		for _, z := range readoutZones {
			if z.Contains(pos) {
				inReadout = true
				break
			}
		}
		if !inReadout {
			r.addWarning(newWarning(WarnMeasurementOutsideRead, SeverityMedium, io.index, "measured atom lies outside all readout zones"), nil)
		}
	}
}
