// Package rulefile reads restructure rule files into a rules.RuleSet.
//
// The native format is line based:
//
//	using <root-path>
//	<section-name>:
//	<rule-line>
//
// Blank lines are ignored. The first non-blank line must be the using
// declaration; every later line either opens a section (it ends with ":")
// or belongs to the open one.
//
// Files ending in .toml, .yaml or .yml carry the same data as a document
// with a "using" string and a "sections" table of string lists.
package rulefile
