package contrast

// Option configures an evaluation.
// Use functional options to customize evaluation behavior.
//
// Example:
//
//	// Default: composited channels are rounded to 8-bit values
//	res, err := contrast.Compute(bg, fg, nil)
//
//	// Keep full floating-point precision
//	res, err := contrast.Compute(bg, fg, nil, contrast.WithFullPrecision())
type Option func(*options)

// options holds optional configuration for an evaluation.
type options struct {
	quantize bool
}

// defaultOptions returns the default evaluation options.
func defaultOptions() options {
	return options{
		quantize: true,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithQuantization controls whether composited channels are rounded to the
// nearest 8-bit value before their luminance is computed.
//
// Rounding is on by default so that ratios match those reported by design
// tools, which store composited colors as 8-bit values.
func WithQuantization(on bool) Option {
	return func(o *options) {
		o.quantize = on
	}
}

// WithFullPrecision disables quantization of composited channels.
// It is shorthand for WithQuantization(false).
func WithFullPrecision() Option {
	return WithQuantization(false)
}
