package ports

// HomeGuard defines the interface for the path-containment safety check.
//
//go:generate go run go.uber.org/mock/mockgen -source=guard.go -destination=mocks/mock_guard.go -package=mocks
type HomeGuard interface {
	// UnderHome reports whether path resolves to a location strictly
	// inside home. home itself is not under home. Resolution failures
	// yield false; the guard fails closed.
	UnderHome(path, home string) bool
}
