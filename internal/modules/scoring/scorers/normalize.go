package scorers

// Calibration bounds for rescaling raw model outputs onto the 0-100 scale.
// The ranges are deliberately wide so typical healthy-company scores map
// near the top of the scale.
const (
	AltmanCalibrationLo = -3.0
	AltmanCalibrationHi = 10.0
	OhlsonCalibrationLo = -5.0
	OhlsonCalibrationHi = 4.0
)

// Normalize linearly rescales raw into [0,100] using the given calibration
// bounds, clamping so extreme model outputs never leave the scale.
func Normalize(raw, lo, hi float64) float64 {
	scaled := 100 * (raw - lo) / (hi - lo)
	if scaled < 0 {
		return 0
	}
	if scaled > 100 {
		return 100
	}
	return scaled
}
