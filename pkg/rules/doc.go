// Package rules holds the parsed form of a restructure rule file.
//
// A RuleSet maps section names to ordered raw rule lines. Two sections are
// understood by the engines:
//
//	prefix:
//	10 src
//	20 docs/a.md
//	99 .
//	rename:
//	old/name.txt new/name.txt
//
// Here every file under src/ goes to 10_src/, docs/a.md goes to
// 20_docs/a.md, and everything else is swept into 99_<top>/ by the
// catch-all.
//
// # Prefix Rules
//
// Prefix rules are evaluated in declaration order and the first rule to
// claim a file wins, so a narrow rule declared before a broad one carves an
// exception out of it. At most one rule may use the catch-all target ".".
//
// Order tags are opaque strings. They only name the generated top-level
// directory ("<order>_<top>"); choosing tags that sort the way the caller
// wants is the caller's job.
//
// Other section names are kept in the RuleSet and ignored by the engines.
package rules
