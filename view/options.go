package view

// Option configures a View.
type Option func(*config)

type config struct {
	pageSize int
	sort     string
}

const DefaultPageSize = 20

// WithPageSize sets the number of records per page.
func WithPageSize(n int) Option {
	return func(c *config) {
		c.pageSize = n
	}
}

// WithSort selects the initial sort by name. Empty means unsorted.
func WithSort(name string) Option {
	return func(c *config) {
		c.sort = name
	}
}

func applyOptions(opts []Option) *config {
	cfg := &config{pageSize: DefaultPageSize}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
