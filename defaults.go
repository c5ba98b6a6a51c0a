package ghostext

// withDefaults fills the zero fields of opts. Envelope is left alone
// because its default depends on the resolved Encoding.
func withDefaults(opts Options) Options {
	opts.Encoding = coalesce[*Encoding](opts.Encoding, StdEncoding)
	opts.Logger = coalesce[Logger](opts.Logger, NopLogger{})
	opts.Hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	if opts.MaxDecode < 0 {
		opts.MaxDecode = 0
	}
	return opts
}

func coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
