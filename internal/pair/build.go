package pair

// Result holds every stage of the pipeline.
type Result struct {
	Base      []Pair
	Generated []Pair
	Combined  []Pair
	Chain     []Pair
}

type Option func(*options)

type options struct {
	filter *Filter
}

// WithFilter drops combined pairs rejected by f before sorting.
func WithFilter(f *Filter) Option {
	return func(o *options) { o.filter = f }
}

// Build generates the pairs for base and sorts base and generated pairs into a chain.
func Build(base []Pair, opts ...Option) (*Result, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	generated := Generate(base)
	combined := Combine(base, generated)
	if o.filter != nil {
		var err error
		if combined, err = o.filter.Apply(combined); err != nil {
			return nil, err
		}
	}
	chain, err := Sort(combined)
	if err != nil {
		return nil, err
	}
	return &Result{Base: base, Generated: generated, Combined: combined, Chain: chain}, nil
}

// Default is the list used when no pairs are given.
func Default() []Pair {
	return []Pair{
		New("Greeshma", "Hemant"),
		New("Varsha", "Shishira"),
		New("Sharat", "Vasant"),
	}
}
