package ports

// PatternExpander defines the interface for resolving glob patterns.
//
//go:generate go run go.uber.org/mock/mockgen -source=expander.go -destination=mocks/mock_expander.go -package=mocks
type PatternExpander interface {
	// Expand resolves shell-style glob patterns rooted at base into
	// concrete paths. Patterns that match nothing contribute no paths.
	// Results follow pattern declaration order; matches of a single
	// pattern are sorted so dry-run output is reproducible.
	Expand(base string, patterns []string) []string
}
