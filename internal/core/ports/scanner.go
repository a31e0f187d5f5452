package ports

// ArtifactScanner defines the interface for the project tree scan.
//
//go:generate go run go.uber.org/mock/mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type ArtifactScanner interface {
	// FindArtifactDirs walks root once, top-down, and returns the build
	// artifact directories found, in traversal order. Recorded
	// directories are not descended into, and known irrelevant subtrees
	// are pruned from the walk.
	FindArtifactDirs(root string) []string
}
