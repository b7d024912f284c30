package physics

// LossProbability computes the atom-loss probability implied by a
// vibrational number n_vib:
//
//	p = min(1, base + factor · max(0, n_vib − threshold))
func LossProbability(nVib float64, profile *DeviceProfile) float64 {
	excess := nVib - profile.LossThreshold
	if excess < 0 {
		excess = 0
	}
	p := profile.LossBaseProbability + profile.LossFactor*excess
	if p > 1 {
		return 1
	}
	if p < 0 {
		return 0
	}
	return p
}
