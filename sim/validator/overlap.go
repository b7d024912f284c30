package validator

import (
	"fmt"

	"github.com/MRamiBalles/quantum-navigator/sim/ir"
)

// checkTemporalOverlap implements spec.md §4.2.2.5: concurrent shuttles are
// permitted (the scheduler may coordinate them) but always flagged, since
// they are a common source of surprising interaction with the topological
// rule.
func (r *run) checkTemporalOverlap(ops []indexedOp) {
	var shuttles []indexedOp
	for _, io := range ops {
		if io.op.Kind == ir.OpShuttleMove {
			shuttles = append(shuttles, io)
		}
	}

	for i := 0; i < len(shuttles); i++ {
		a := shuttles[i].op
		aStart, aEnd := a.StartTimeNs, a.EndTimeNs()
		for j := i + 1; j < len(shuttles); j++ {
			b := shuttles[j].op
			bStart, bEnd := b.StartTimeNs, b.EndTimeNs()
			if aStart < bEnd && bStart < aEnd {
				msg := fmt.Sprintf("overlaps with operation %d (start_time %d)", shuttles[j].index, bStart)
				r.addWarning(newWarning(WarnConcurrentShuttles, SeverityHigh, shuttles[i].index, msg), nil)
			}
		}
	}
}
