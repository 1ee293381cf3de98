// Package prefix assigns files to ordered top-level directories.
//
// Rules run in declaration order. Each explicit rule claims the files of its
// target that no earlier rule claimed and moves them from <top>/<rest> to
// <order>_<top>/<rest>. The single optional catch-all rule is applied last,
// to every file of the pre-move snapshot that is still unclaimed; files
// placed by explicit rules are never swept again.
//
// A destination that already exists is left alone and the move counts as
// skipped, so a pass interrupted by a failed move can be run again. A target
// that does not exist fails with MissingTarget, including one whose files an
// earlier rule already moved away. There is no rollback: an error aborts the
// pass and keeps the moves already made.
package prefix
