package signal

import "math"

// Sample is one evaluation of the model at a bearing and time.
type Sample struct {
	Time      float64 // s
	Frequency float64 // Hz
	Omega     float64 // rad/s
	Amplitude float64 // Pa
	Raw       float64 // signed carrier, Pa
	Pressure  float64 // Raw, or |Raw| when rectifying
}

// Model bundles the per-tick signal parameters.
type Model struct {
	Directivity Directivity
	Rectify     bool
	Phase       float64 // carrier phase offset θ, radians
}

// NewModel returns the default model: lobe envelope, rectified output and a
// phase offset equal to the virtual beam angle.
func NewModel(virtualBeamDeg float64) Model {
	return Model{
		Directivity: Lobe,
		Rectify:     true,
		Phase:       Radians(virtualBeamDeg),
	}
}

// Amplitude returns A(α) for a bearing in radians under the model's
// directivity. Lobe returns 0 outside ±180°.
func (m Model) Amplitude(alphaRad float64) float64 {
	alphaDeg := Degrees(alphaRad)
	if m.Directivity == Legacy {
		return LegacyAmplitude(alphaDeg)
	}
	if math.Abs(alphaDeg) > 180 {
		return 0
	}
	return LobeAmplitude(alphaDeg)
}

// Evaluate computes frequency, amplitude and pressure for bearing α (radians)
// at elapsed time t (seconds).
func (m Model) Evaluate(alphaRad, t float64) Sample {
	freq := Frequency(alphaRad)
	omega := AngularFrequency(freq)

	var raw float64
	if m.Directivity == Lobe {
		raw = Pressure(alphaRad, omega, t, m.Phase)
	} else {
		raw = LegacyAmplitude(Degrees(alphaRad)) * math.Sin(omega*t+m.Phase)
	}

	p := raw
	if m.Rectify {
		p = math.Abs(raw)
	}

	return Sample{
		Time:      t,
		Frequency: freq,
		Omega:     omega,
		Amplitude: m.Amplitude(alphaRad),
		Raw:       raw,
		Pressure:  p,
	}
}
