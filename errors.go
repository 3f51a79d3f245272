package fem

import "errors"

// Error kinds reported by the package.  Use errors.Is to check:
// errors.Is(err, fem.ErrInvalidArgument)
var (
	// ErrInvalidArgument indicates a malformed problem definition - a
	// degenerate mesh, an unsupported element degree, or conflicting
	// boundary conditions.
	ErrInvalidArgument = errors.New("fem: invalid argument")

	// ErrSingularSystem indicates the assembled linear system cannot be
	// solved.  This does not occur for a well-posed elliptic problem with
	// at least one Dirichlet condition pinning the solution.
	ErrSingularSystem = errors.New("fem: singular linear system")
)
