// Package domain defines the core business entities for tabfind.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Record: A normalised, searchable browser record
//   - SourceKind: Which collection a record came from
//   - ResultSet: The combined view handed to renderers
//   - NavigationState: Keyboard focus over the flattened result list
//   - AppSettings: User-tunable search behaviour
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
