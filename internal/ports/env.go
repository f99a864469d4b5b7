package ports

import "context"

// EnvPort answers questions about the host environment. All methods are
// idempotent and free of side effects.
type EnvPort interface {
	// LookPath returns the absolute path of a binary on the search path.
	LookPath(name string) (string, error)

	// Version returns the version string reported by `<name> --version`.
	Version(ctx context.Context, name string) (string, error)
}
