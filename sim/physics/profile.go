// Package physics implements the pure, dependency-free physics models
// consumed by the validator and simulator: vibrational heating, fidelity
// loss, atom-loss probability, and syndrome-decoder queue dynamics.
//
// Every model function here is a total function: no error returns, no
// panics, no I/O. The one exception in the package is LoadProfile, which
// reads a YAML file and returns an error. Stochastic behavior (decoder capacity jitter) takes its
// randomness as an explicit *rand.Rand parameter so callers control
// determinism; nothing in this package reads ambient entropy or the clock.
package physics

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DeviceProfile groups the physical constants the models are parameterized
// over. The spec's constants (k=0.01, critical_n_vib=18.0, ...) are
// empirical per-device calibration values; exposing them as a profile
// rather than package constants lets a future vendor device override them
// without touching validator or simulator code.
type DeviceProfile struct {
	// HeatingCoefficient is k in Δn_vib = k·d·v.
	HeatingCoefficient float64 `yaml:"heating_coefficient"`
	// FidelityLossAlpha is α in fidelity_loss = min(1, α·n_vib).
	FidelityLossAlpha float64 `yaml:"fidelity_loss_alpha"`
	// LossThreshold is the n_vib above which atom-loss risk accelerates.
	LossThreshold float64 `yaml:"loss_threshold"`
	// LossBaseProbability is the per-cycle/per-move baseline loss rate.
	LossBaseProbability float64 `yaml:"loss_base_probability"`
	// LossFactor scales the excess-over-threshold contribution to loss.
	LossFactor float64 `yaml:"loss_factor"`
	// MaxAODVelocity is the hard ceiling on AOD shuttle velocity, µm/µs.
	MaxAODVelocity float64 `yaml:"max_aod_velocity"`
	// CriticalNVib is the vibrational number at which heating is judged
	// critical (used by the validator's HEATING_HIGH_NVIB band).
	CriticalNVib float64 `yaml:"critical_n_vib"`
	// FidelityWarnNVib is the vibrational number above which fidelity
	// degradation first becomes warning-worthy.
	FidelityWarnNVib float64 `yaml:"fidelity_warn_n_vib"`
	// DecoderBaseCapacity is C₀, the decoder's syndrome-processing capacity
	// at code distance 0, in syndromes per cycle.
	DecoderBaseCapacity float64 `yaml:"decoder_base_capacity"`
	// DecoderDecay is α in capacity = C₀·exp(−α·d).
	DecoderDecay float64 `yaml:"decoder_decay"`
	// DecoderJitterMin and DecoderJitterMax bound the uniform jitter
	// multiplier applied to decoder capacity each cycle.
	DecoderJitterMin float64 `yaml:"decoder_jitter_min"`
	DecoderJitterMax float64 `yaml:"decoder_jitter_max"`
	// CycleWindowMs is the zone-reorder cycle time used to convert queue
	// depth into a latency figure.
	CycleWindowMs float64 `yaml:"cycle_window_ms"`
}

// DefaultProfile returns the constants specified for the 2025 FPQA regime
// (spec §4.1/§4.4). Callers needing a device-specific calibration should
// copy this value and override individual fields.
func DefaultProfile() *DeviceProfile {
	return &DeviceProfile{
		HeatingCoefficient:  0.01,
		FidelityLossAlpha:   0.008,
		LossThreshold:       18.0,
		LossBaseProbability: 0.001,
		LossFactor:          0.005,
		MaxAODVelocity:      0.55,
		CriticalNVib:        18.0,
		FidelityWarnNVib:    10.0,
		DecoderBaseCapacity: 10.0,
		DecoderDecay:        0.4,
		DecoderJitterMin:    0.9,
		DecoderJitterMax:    1.1,
		CycleWindowMs:       20.0,
	}
}

// WithOverrideCaps returns a copy of profile with any field named in
// overrides replaced by its value. Keys match the profile's yaml tags
// (e.g. "max_aod_velocity"); unrecognized keys are ignored, since
// override_caps is a job-level forward-compatible escape hatch (spec.md
// §3's Job.device.override_caps) and a job built against a newer schema
// should not fail to validate against an older binary.
func WithOverrideCaps(profile *DeviceProfile, overrides map[string]float64) *DeviceProfile {
	p := *profile
	for key, value := range overrides {
		switch key {
		case "heating_coefficient":
			p.HeatingCoefficient = value
		case "fidelity_loss_alpha":
			p.FidelityLossAlpha = value
		case "loss_threshold":
			p.LossThreshold = value
		case "loss_base_probability":
			p.LossBaseProbability = value
		case "loss_factor":
			p.LossFactor = value
		case "max_aod_velocity":
			p.MaxAODVelocity = value
		case "critical_n_vib":
			p.CriticalNVib = value
		case "fidelity_warn_n_vib":
			p.FidelityWarnNVib = value
		case "decoder_base_capacity":
			p.DecoderBaseCapacity = value
		case "decoder_decay":
			p.DecoderDecay = value
		case "decoder_jitter_min":
			p.DecoderJitterMin = value
		case "decoder_jitter_max":
			p.DecoderJitterMax = value
		case "cycle_window_ms":
			p.CycleWindowMs = value
		}
	}
	return &p
}

// LoadProfile reads a YAML device-profile override from path, starting from
// DefaultProfile and overwriting only the fields present in the file. This
// lets a vendor calibration file override a subset of constants without
// restating every field.
func LoadProfile(path string) (*DeviceProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading device profile %s: %w", path, err)
	}

	profile := DefaultProfile()
	if err := yaml.Unmarshal(data, profile); err != nil {
		return nil, fmt.Errorf("parsing device profile %s: %w", path, err)
	}
	return profile, nil
}
