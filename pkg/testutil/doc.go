// Package testutil provides utilities for testing restruct components.
//
// Key components:
//   - TestEnvironment: a root directory on an in-memory or real filesystem
//   - Tree helpers: build a tree from a map of paths and list it back
//
// Usage guidelines:
//   - Engine tests should use EnvMemoryOnly for speed and isolation
//   - Use EnvIsolated where OS behaviour matters (symlinks, canonical paths)
//   - All test data should be defined inline, not in external files
package testutil
