// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, categories and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/restruct/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "missing_target_error",
			code:    errors.ErrMissingTarget,
			message: "missing path in prefix rule: src",
			wantStr: "[MISSING_TARGET] missing path in prefix rule: src",
		},
		{
			name:    "parse_error",
			code:    errors.ErrParse,
			message: "entry outside of a section",
			wantStr: "[PARSE] entry outside of a section",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrRenameDestinationExists, "rename destination exists: %s", "b/c.txt")
	if err.Message != "rename destination exists: b/c.txt" {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrMove, "move failed")

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[FS_MOVE] move failed: base error"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrMove, "move failed"); err != nil {
			t.Error("Wrap(nil) should return nil")
		}
		if err := errors.Wrapf(nil, errors.ErrMove, "move failed: %s", "x"); err != nil {
			t.Error("Wrapf(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrMissingTarget, "missing").
		WithDetail("rule", "10 src").
		WithDetail("path", "/tree/src")

	if err.Details["rule"] != "10 src" {
		t.Errorf("WithDetail() rule = %v", err.Details["rule"])
	}
	if got := errors.GetErrorDetails(err)["path"]; got != "/tree/src" {
		t.Errorf("GetErrorDetails() path = %v", got)
	}
	if errors.GetErrorDetails(stderrors.New("plain")) != nil {
		t.Error("GetErrorDetails() should be nil for plain errors")
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrDuplicateCatchAll, "error 1")
	err2 := errors.New(errors.ErrDuplicateCatchAll, "error 2")
	err3 := errors.New(errors.ErrMissingTarget, "error 3")

	t.Run("same_code_is_equal", func(t *testing.T) {
		if !err1.Is(err2) {
			t.Error("Is() should return true for same code")
		}
	})

	t.Run("different_code_not_equal", func(t *testing.T) {
		if err1.Is(err3) {
			t.Error("Is() should return false for different codes")
		}
	})

	t.Run("works_with_errors_Is", func(t *testing.T) {
		if !stderrors.Is(err1, err2) {
			t.Error("errors.Is() should work with Error")
		}
	})
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrRenameSourceMissing, "missing"),
			code:     errors.ErrRenameSourceMissing,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrRenameSourceMissing, "missing"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrRemove, "denied"),
			code:     errors.ErrRemove,
			expected: true,
		},
		{
			name:     "plain_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrParse,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrParse,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected errors.ErrorCode
	}{
		{
			name:     "coded_error",
			err:      errors.New(errors.ErrInvalidRoot, "bad root"),
			expected: errors.ErrInvalidRoot,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			expected: errors.ErrUnknown,
		},
		{
			name:     "nil_error",
			err:      nil,
			expected: errors.ErrUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		code errors.ErrorCode
		want errors.Category
	}{
		{errors.ErrRuleFileNotFound, errors.CategoryConfig},
		{errors.ErrParse, errors.CategoryConfig},
		{errors.ErrInvalidRoot, errors.CategoryConfig},
		{errors.ErrDuplicateCatchAll, errors.CategoryStructural},
		{errors.ErrMissingTarget, errors.CategoryStructural},
		{errors.ErrOutsideRoot, errors.CategoryStructural},
		{errors.ErrRenameSourceMissing, errors.CategoryStructural},
		{errors.ErrRenameDestinationExists, errors.CategoryStructural},
		{errors.ErrMove, errors.CategoryFilesystem},
		{errors.ErrRemove, errors.CategoryFilesystem},
		{errors.ErrInternal, errors.CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := errors.CategoryOf(tt.code); got != tt.want {
				t.Errorf("CategoryOf(%s) = %v, want %v", tt.code, got, tt.want)
			}
			if got := errors.New(tt.code, "x").Category(); got != tt.want {
				t.Errorf("Category() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	fsErr := errors.Wrap(rootCause, errors.ErrMove, "cannot move file")
	ruleErr := errors.Wrap(fsErr, errors.ErrInternal, "prefix pass failed")

	t.Run("top_level_has_correct_code", func(t *testing.T) {
		if !errors.IsErrorCode(ruleErr, errors.ErrInternal) {
			t.Error("Top level should have ErrInternal code")
		}
	})

	t.Run("can_find_middle_error", func(t *testing.T) {
		var rerr *errors.Error
		if stderrors.As(ruleErr.Unwrap(), &rerr) {
			if !errors.IsErrorCode(rerr, errors.ErrMove) {
				t.Error("Middle error should have ErrMove code")
			}
		}
	})

	t.Run("can_find_root_cause", func(t *testing.T) {
		if !stderrors.Is(ruleErr, rootCause) {
			t.Error("Should find root cause with errors.Is")
		}
	})
}
