package core

import (
	"github.com/arthur-debert/restruct/pkg/cleanup"
	"github.com/arthur-debert/restruct/pkg/config"
	"github.com/arthur-debert/restruct/pkg/errors"
	"github.com/arthur-debert/restruct/pkg/filesystem"
	"github.com/arthur-debert/restruct/pkg/logging"
	"github.com/arthur-debert/restruct/pkg/prefix"
	"github.com/arthur-debert/restruct/pkg/rename"
	"github.com/arthur-debert/restruct/pkg/rulefile"
	"github.com/arthur-debert/restruct/pkg/rules"
	"github.com/rs/zerolog"
)

// RestructureOptions defines the options for a restructuring run.
type RestructureOptions struct {
	// RuleFile is the path to the rule file.
	RuleFile string
	// FS is the filesystem to operate on. Defaults to the OS filesystem.
	FS *filesystem.FS
	// Config holds tool settings. Defaults to config.Default().
	Config *config.Config
}

// Result aggregates what each pass did. Passes that did not run are nil.
type Result struct {
	RuleFile string         `json:"ruleFile"`
	Root     string         `json:"root"`
	Prefix   *prefix.Result `json:"prefix,omitempty"`
	Rename   *rename.Result `json:"rename,omitempty"`
	Removed  []string       `json:"removed"`
	Ignored  []string       `json:"ignoredSections,omitempty"`
}

// Restructure runs every pass described by the rule file. On failure the
// returned result holds the work done before the abort.
func Restructure(opts RestructureOptions) (*Result, error) {
	log := logging.GetLogger("core.restructure")
	log.Debug().Str("ruleFile", opts.RuleFile).Msg("Executing restructure")

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	dirPerm, err := cfg.Filesystem.DirPerm()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "invalid configuration")
	}

	rs, err := rulefile.Read(fsys, opts.RuleFile)
	if err != nil {
		return nil, err
	}

	result := &Result{RuleFile: opts.RuleFile, Root: rs.Root, Removed: []string{}}
	for _, name := range rs.Order {
		if name != rules.SectionPrefix && name != rules.SectionRename {
			log.Debug().Str("section", name).Msg("Ignoring unknown section")
			result.Ignored = append(result.Ignored, name)
		}
	}

	// every section is parsed before the first pass touches the tree
	prefixLines, hasPrefix := rs.Section(rules.SectionPrefix)
	var prefixRules []rules.PrefixRule
	if hasPrefix {
		if prefixRules, err = rules.ParsePrefixRules(prefixLines); err != nil {
			return result, err
		}
	}
	renameLines, hasRename := rs.Section(rules.SectionRename)
	var renameRules []rules.RenameRule
	if hasRename {
		if renameRules, err = rules.ParseRenameRules(renameLines); err != nil {
			return result, err
		}
	}

	if hasPrefix {
		result.Prefix, err = prefix.New(fsys, dirPerm).Resolve(rs.Root, prefixRules)
		if err != nil {
			return result, aborted(log, "prefix", err)
		}
	}

	if hasRename {
		result.Rename, err = rename.New(fsys, dirPerm).Resolve(rs.Root, renameRules)
		if err != nil {
			return result, aborted(log, "rename", err)
		}
	}

	removed, err := cleanup.New(fsys).Run(rs.Root)
	result.Removed = append(result.Removed, removed...)
	if err != nil {
		return result, err
	}

	log.Info().
		Str("root", rs.Root).
		Int("removed", len(result.Removed)).
		Msg("Restructure finished")
	return result, nil
}

// Moved counts entries relocated by the prefix and rename passes
func (r *Result) Moved() int {
	n := 0
	if r.Prefix != nil {
		n += r.Prefix.Moved()
	}
	if r.Rename != nil {
		n += len(r.Rename.Renames)
	}
	return n
}

func aborted(log zerolog.Logger, pass string, err error) error {
	log.Warn().
		Str("pass", pass).
		Str("code", string(errors.GetErrorCode(err))).
		Msg("Pass aborted, the tree may be partially reorganized")
	return err
}
