package trace

// composeOptions is a holder of options
type composeOptions struct {
	panicCallback func(e interface{})
}

// ComposeOption specified Guard compose option
type ComposeOption func(o *composeOptions)

// WithPanicCallback specified behavior on panic raised by composed hooks
func WithPanicCallback(cb func(e interface{})) ComposeOption {
	return func(o *composeOptions) {
		o.panicCallback = cb
	}
}

// Compose returns a new Guard which has functional fields composed both
// from t and x. Both hooks fire on every event, t's first.
func (t *Guard) Compose(x *Guard, opts ...ComposeOption) *Guard {
	var ret Guard
	options := composeOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}
	ret.OnGet = composeHooks(t.OnGet, x.OnGet, options)
	ret.OnSet = composeHooks(t.OnSet, x.OnSet, options)
	ret.OnChange = composeHooks(t.OnChange, x.OnChange, options)
	ret.OnRead = composeHooks(t.OnRead, x.OnRead, options)
	ret.OnWrite = composeHooks(t.OnWrite, x.OnWrite, options)

	return &ret
}

func composeHooks[Start, Done any](h1, h2 func(Start) func(Done), options composeOptions) func(Start) func(Done) {
	if h1 == nil && h2 == nil {
		return nil
	}

	return func(info Start) func(Done) {
		if options.panicCallback != nil {
			defer func() {
				if e := recover(); e != nil {
					options.panicCallback(e)
				}
			}()
		}
		var d1, d2 func(Done)
		if h1 != nil {
			d1 = h1(info)
		}
		if h2 != nil {
			d2 = h2(info)
		}

		return func(info Done) {
			if options.panicCallback != nil {
				defer func() {
					if e := recover(); e != nil {
						options.panicCallback(e)
					}
				}()
			}
			if d1 != nil {
				d1(info)
			}
			if d2 != nil {
				d2(info)
			}
		}
	}
}
