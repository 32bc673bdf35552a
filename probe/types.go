package probe

// DefaultEndpoint is the default server endpoint URL.
const DefaultEndpoint = "http://localhost:3000"

// Config holds the connection settings of a Client.
type Config struct {
	Endpoint string
}

// WithDefaults returns a copy of the config with empty fields filled in.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.Endpoint == "" {
		out.Endpoint = DefaultEndpoint
	}
	return &out
}

// Result is the outcome of fetching one path.
type Result struct {
	Path        string
	Status      int
	ContentType string
	Size        int64
	Err         error
}

// Verification compares a live response with the expected route table entry.
type Verification struct {
	Result
	ExpectedStatus      int
	ExpectedContentType string
	ExpectedSize        int64
	Mismatches          []string
}

// OK reports whether the response matched the expected entry.
func (v Verification) OK() bool {
	return v.Err == nil && len(v.Mismatches) == 0
}
