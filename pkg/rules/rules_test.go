// Test Type: Unit Test
// Description: Tests for the rule model - rule line parsing and validation

package rules_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/restruct/pkg/errors"
	"github.com/arthur-debert/restruct/pkg/filesystem"
	"github.com/arthur-debert/restruct/pkg/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrefixRule(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		want      rules.PrefixRule
		catchAll  bool
		wantError bool
	}{
		{
			name: "directory_target",
			line: "10 src",
			want: rules.PrefixRule{Order: "10", Target: "src", Line: "10 src"},
		},
		{
			name: "nested_file_target",
			line: "10 src/a.txt",
			want: rules.PrefixRule{Order: "10", Target: filepath.FromSlash("src/a.txt"), Line: "10 src/a.txt"},
		},
		{
			name:     "catch_all",
			line:     "99 .",
			want:     rules.PrefixRule{Order: "99", Target: ".", Line: "99 ."},
			catchAll: true,
		},
		{
			name: "target_with_spaces_kept_whole",
			line: "05   my docs/notes ",
			want: rules.PrefixRule{Order: "05", Target: filepath.FromSlash("my docs/notes"), Line: "05   my docs/notes"},
		},
		{
			name: "dot_slash_prefix_is_cleaned",
			line: "10\t./src/",
			want: rules.PrefixRule{Order: "10", Target: "src", Line: "10\t./src/"},
		},
		{
			name:      "missing_target",
			line:      "10",
			wantError: true,
		},
		{
			name:      "explicit_root_target",
			line:      "10 ./",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := rules.ParsePrefixRule(tt.line)
			if tt.wantError {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrParse))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.catchAll, got.IsCatchAll())
		})
	}
}

func TestParseRenameRule(t *testing.T) {
	got, err := rules.ParseRenameRule("old/a.txt  new/b.txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("old/a.txt"), got.Source)
	assert.Equal(t, filepath.FromSlash("new/b.txt"), got.Destination)

	_, err = rules.ParseRenameRule("lonely")
	assert.True(t, errors.IsErrorCode(err, errors.ErrParse))
}

func TestParseSections(t *testing.T) {
	prefix, err := rules.ParsePrefixRules([]string{"10 src", "99 ."})
	require.NoError(t, err)
	require.Len(t, prefix, 2)
	assert.Equal(t, "99", prefix[1].Order)

	_, err = rules.ParsePrefixRules([]string{"10 src", "bad"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrParse))

	renames, err := rules.ParseRenameRules([]string{"a b", "c d"})
	require.NoError(t, err)
	assert.Len(t, renames, 2)

	_, err = rules.ParseRenameRules([]string{"a"})
	assert.Error(t, err)
}

func TestValidatePrefixRules(t *testing.T) {
	t.Run("single_catch_all", func(t *testing.T) {
		prefix, err := rules.ParsePrefixRules([]string{"10 src", "99 ."})
		require.NoError(t, err)
		assert.NoError(t, rules.ValidatePrefixRules(prefix))
	})

	t.Run("no_catch_all", func(t *testing.T) {
		prefix, err := rules.ParsePrefixRules([]string{"10 src"})
		require.NoError(t, err)
		assert.NoError(t, rules.ValidatePrefixRules(prefix))
	})

	t.Run("duplicate_catch_all", func(t *testing.T) {
		prefix, err := rules.ParsePrefixRules([]string{"1 .", "10 src", "2 ."})
		require.NoError(t, err)

		err = rules.ValidatePrefixRules(prefix)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrDuplicateCatchAll))
		assert.Contains(t, err.Error(), "1 .")
		assert.Contains(t, err.Error(), "2 .")
	})
}

func TestRuleSet(t *testing.T) {
	rs := rules.NewRuleSet("/tree")
	rs.AddRule("prefix", "10 src")
	rs.AddSection("notes")
	rs.AddRule("prefix", "99 .")

	lines, ok := rs.Section("prefix")
	require.True(t, ok)
	assert.Equal(t, []string{"10 src", "99 ."}, lines)

	lines, ok = rs.Section("notes")
	assert.True(t, ok)
	assert.Empty(t, lines)

	_, ok = rs.Section("rename")
	assert.False(t, ok)

	assert.Equal(t, []string{"prefix", "notes"}, rs.Order)
}

func TestRuleSetValidate(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll("/tree", 0755))
	require.NoError(t, fsys.WriteFile("/file.txt", []byte("x"), 0644))

	assert.NoError(t, rules.NewRuleSet("/tree").Validate(fsys))

	for _, root := range []string{"", "/missing", "/file.txt"} {
		err := rules.NewRuleSet(root).Validate(fsys)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidRoot), "root %q", root)
	}
}
