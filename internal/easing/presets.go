package easing

// Named curves, using the CSS timing-function control points.
var (
	Linear    = New(0, 0, 1, 1)
	Ease      = New(0.25, 0.1, 0.25, 1)
	EaseIn    = New(0.42, 0, 1, 1)
	EaseOut   = New(0, 0, 0.58, 1)
	EaseInOut = New(0.42, 0, 0.58, 1)

	// Drift is the soft, nearly linear curve the letterforms were first animated with.
	Drift = New(0.17, 0.67, 0.83, 0.67)
)

// ByName looks up a named curve.
func ByName(name string) (Curve, bool) {
	switch name {
	case "linear":
		return Linear, true
	case "ease":
		return Ease, true
	case "ease-in":
		return EaseIn, true
	case "ease-out":
		return EaseOut, true
	case "ease-in-out":
		return EaseInOut, true
	case "drift":
		return Drift, true
	}
	return Curve{}, false
}
