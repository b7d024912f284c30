package validator

import "fmt"

// nearCollisionFactor is the 1.1x band above min_atom_distance that
// downgrades a close approach from a hard Collision to a NEAR_COLLISION
// warning (spec §4.2.2.1).
const nearCollisionFactor = 1.1

// checkRegisterGeometry runs the pre-walk pairwise distance and AOD-grid
// checks of spec.md §4.2.2.1, before any operation is processed.
func (r *run) checkRegisterGeometry() {
	atoms := r.job.Register.Atoms
	minDist := r.job.Register.MinAtomDistance

	for i := 0; i < len(atoms); i++ {
		for j := i + 1; j < len(atoms); j++ {
			d := atoms[i].Pos.Distance(atoms[j].Pos)
			switch {
			case d < minDist:
				r.addError(newPhysicsErr(ErrCollision, -1, "atoms %d and %d are %.3fµm apart, below min_atom_distance %.3fµm", atoms[i].ID, atoms[j].ID, d, minDist))
			case d < nearCollisionFactor*minDist:
				msg := fmt.Sprintf("atoms %d and %d at %.3fµm, within 1.1x min_atom_distance", atoms[i].ID, atoms[j].ID, d)
				r.addWarning(
					newWarning(WarnNearCollision, SeverityMedium, -1, msg),
					func() error {
						return newPhysicsErr(ErrCollision, -1, "atoms %d and %d are %.3fµm apart, within the near-collision band", atoms[i].ID, atoms[j].ID, d)
					},
				)
			}
		}
	}

	for _, a := range atoms {
		if a.Role.Mobile() && !a.HasAODGrid() {
			r.addWarning(
				newWarning(WarnMissingAODGrid, SeverityHigh, -1, "mobile atom lacks aod_row/aod_col; topological checks degraded to no-op"),
				nil,
			)
		}
	}
}
