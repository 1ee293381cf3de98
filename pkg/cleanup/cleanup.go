// Package cleanup removes directories left empty by the moves.
package cleanup

import (
	"sort"

	"github.com/arthur-debert/restruct/pkg/errors"
	"github.com/arthur-debert/restruct/pkg/filesystem"
	"github.com/arthur-debert/restruct/pkg/logging"
	"github.com/arthur-debert/restruct/pkg/paths"
	"github.com/arthur-debert/restruct/pkg/snapshot"
	"github.com/rs/zerolog"
)

// Service removes empty directories below a root
type Service struct {
	fs     *filesystem.FS
	logger zerolog.Logger
}

// New creates a cleanup service
func New(fsys *filesystem.FS) *Service {
	return &Service{
		fs:     fsys,
		logger: logging.GetLogger("cleanup"),
	}
}

// Run visits every directory below root deepest first and removes those
// that are empty when visited, so a parent emptied by removing its children
// goes too. root itself is never removed. The removed paths are returned.
func (s *Service) Run(root string) ([]string, error) {
	done := logging.LogOperationStart(s.logger, "cleanup")
	defer done()

	dirs, err := snapshot.Directories(s.fs, root)
	if err != nil {
		return nil, err
	}
	SortDeepestFirst(dirs)

	var removed []string
	for _, dir := range dirs {
		entries, err := s.fs.ReadDir(dir)
		if err != nil {
			return removed, errors.Wrapf(err, errors.ErrRead, "cannot list %s", dir)
		}
		if len(entries) > 0 {
			continue
		}
		if err := s.fs.Remove(dir); err != nil {
			return removed, errors.Wrapf(err, errors.ErrRemove, "cannot remove empty directory %s", dir).
				WithDetail("path", dir)
		}
		removed = append(removed, dir)
		s.logger.Debug().Str("path", dir).Msg("Removed empty directory")
	}

	s.logger.Info().Int("removed", len(removed)).Msg("Cleanup complete")
	return removed, nil
}

// SortDeepestFirst orders directories by depth, deepest first, then in
// reverse lexical order
func SortDeepestFirst(dirs []string) {
	sort.SliceStable(dirs, func(i, j int) bool {
		di, dj := paths.PathDepth(dirs[i]), paths.PathDepth(dirs[j])
		if di != dj {
			return di > dj
		}
		return dirs[i] > dirs[j]
	})
}
