package lp

// DefaultEpsilon is the decode clipping threshold: solution entries in
// (−DefaultEpsilon, 0) are treated as numerical noise and reported as 0.
const DefaultEpsilon = 1e-9

// Options configures LP construction and decoding.
//   - Epsilon: decode clipping threshold for tiny negative flows
//     (default DefaultEpsilon).
type Options struct {
	Epsilon float64
}

// DefaultOptions returns production-safe defaults.
func DefaultOptions() Options {
	return Options{Epsilon: DefaultEpsilon}
}

// normalize fills unset fields with their defaults.
func (o *Options) normalize() {
	if o.Epsilon <= 0 {
		o.Epsilon = DefaultEpsilon
	}
}
