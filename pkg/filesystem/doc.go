// Package filesystem provides filesystem implementations for restruct.
//
// FS wraps an afero.Fs so the engines run unchanged against the OS
// filesystem and an in-memory filesystem in tests.
package filesystem
