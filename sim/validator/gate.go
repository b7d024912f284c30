package validator

const weakBlockadeFactor = 0.9

// checkRydbergGate implements spec.md §4.2.2.3: a gate beyond the blockade
// radius cannot entangle its pair; a gate inside the van-der-Waals
// collision distance is physically impossible regardless of blockade.
func (r *run) checkRydbergGate(io indexedOp) {
	op := io.op
	if op.ControlAtom == nil || op.TargetAtom == nil {
		return // structurally invalid; job-level validation already rejects this
	}

	control := r.positions[*op.ControlAtom]
	target := r.positions[*op.TargetAtom]
	d := control.Distance(target)

	blockadeRadius := r.job.Register.BlockadeRadius
	minDist := r.job.Register.MinAtomDistance

	switch {
	case d > blockadeRadius:
		r.addError(newPhysicsErr(ErrBlockadeDistance, io.index, "gate distance %.4fµm exceeds blockade_radius %.4fµm", d, blockadeRadius))
	case d > weakBlockadeFactor*blockadeRadius:
		r.addWarning(
			newWarning(WarnWeakBlockade, SeverityHigh, io.index, "gate distance close to the blockade ceiling"),
			func() error {
				return newPhysicsErr(ErrBlockadeDistance, io.index, "gate distance %.4fµm exceeds the strict weak-blockade threshold", d)
			},
		)
	}

	if d < minDist {
		r.addError(newPhysicsErr(ErrCollision, io.index, "gate distance %.4fµm is below min_atom_distance %.4fµm (van der Waals regime)", d, minDist))
	}
}
