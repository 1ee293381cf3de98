// Package core sequences a restructuring run.
//
// A run reads the rule file, resolves its root, applies the prefix section,
// then the rename section, and finally removes directories left empty.
// Sections other than prefix and rename are ignored. The first failure
// aborts the run; moves already made are kept and cleanup is not attempted.
package core
