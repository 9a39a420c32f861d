package mortgage

// RateSource supplies the reference market rate used to anchor the generated
// rate options. The engine treats the rate as an opaque input and never
// computes or hardcodes one.
type RateSource interface {
	ReferenceRate() (float64, error)
}

// StaticRateSource returns a fixed reference rate, typically loaded from the
// profile configuration.
type StaticRateSource struct {
	Rate float64
}

func (s StaticRateSource) ReferenceRate() (float64, error) {
	if s.Rate <= 0 {
		return 0, ErrUnresolvedRate
	}
	return s.Rate, nil
}
