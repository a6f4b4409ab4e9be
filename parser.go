package clinics

// HeadingPolicy decides what happens to a record block that has no section
// heading before it in the document.
type HeadingPolicy int

const (
	// HeadingOptional gives such records an empty area.
	HeadingOptional HeadingPolicy = iota
	// HeadingRequired fails the parse with ENOTFOUND.
	HeadingRequired
)

// String returns the policy name.
func (p HeadingPolicy) String() string {
	switch p {
	case HeadingOptional:
		return "optional"
	case HeadingRequired:
		return "required"
	default:
		return "unknown"
	}
}

// Parser turns one HTML document into its clinic records, in document order.
// source names the document in errors and diagnostics.
type Parser interface {
	Parse(source, html string) ([]Record, error)
}
