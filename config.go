package clinics

import "time"

// Output formats.
const (
	FormatCSV      = "csv"
	FormatMarkdown = "markdown"
	FormatXML      = "xml"
)

// DefaultSources returns the listing pages scraped when no sources are
// configured.
func DefaultSources() []string {
	return []string{
		"https://jfir.jp/eat-facilities/",
		"https://jfir.jp/eat-facilities-2/",
		"https://jfir.jp/eat-facilities-3/",
		"https://jfir.jp/eat-facilities-4/",
	}
}

// Config holds settings for a scrape run.
type Config struct {
	Sources     []string      `yaml:"sources"`
	Output      string        `yaml:"output"`
	Format      string        `yaml:"format"`
	BOM         bool          `yaml:"bom"`
	Strict      bool          `yaml:"strict"`
	Browser     bool          `yaml:"browser"`
	Concurrency int           `yaml:"concurrency"`
	Rate        float64       `yaml:"rate"`
	Timeout     time.Duration `yaml:"timeout"`
	UserAgent   string        `yaml:"user_agent"`
	DB          string        `yaml:"db"`
	HTMLDir     string        `yaml:"html_dir"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() *Config {
	return &Config{
		Sources:     DefaultSources(),
		Output:      "output.csv",
		Format:      FormatCSV,
		Concurrency: 1,
		Rate:        1,
		Timeout:     10 * time.Second,
	}
}

// HeadingPolicy returns the policy selected by Strict.
func (c *Config) HeadingPolicy() HeadingPolicy {
	if c.Strict {
		return HeadingRequired
	}
	return HeadingOptional
}

// Validate returns an error if the config contains invalid fields.
func (c *Config) Validate() error {
	if len(c.Sources) == 0 {
		return Errorf(EINVALID, "at least one source is required")
	}
	if c.Output == "" {
		return Errorf(EINVALID, "output path required")
	}
	switch c.Format {
	case FormatCSV, FormatMarkdown, FormatXML:
	default:
		return Errorf(EINVALID, "unknown format %q (want csv, markdown or xml)", c.Format)
	}
	if c.Concurrency < 1 {
		return Errorf(EINVALID, "concurrency must be at least 1")
	}
	if c.Rate <= 0 {
		return Errorf(EINVALID, "rate must be positive")
	}
	if c.Timeout <= 0 {
		return Errorf(EINVALID, "timeout must be positive")
	}
	return nil
}
