package pick

// DefaultDelimiter separates path tokens unless WithDelimiter says otherwise.
const DefaultDelimiter = "/"

type Option func(*options)

type options struct {
	delimiter string
	workers   int
}

func newOptions(opts []Option) options {
	o := options{delimiter: DefaultDelimiter, workers: 1}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithDelimiter sets the token separator. An empty delimiter keeps the default.
func WithDelimiter(delimiter string) Option {
	return func(o *options) {
		if delimiter != "" {
			o.delimiter = delimiter
		}
	}
}

// WithWorkers bounds how many queries of a batch run concurrently. Values
// below 2 run the batch sequentially.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}
