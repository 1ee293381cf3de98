package cli

// Command descriptions
const (
	MsgRootUse   = "restruct [flags] <rule-file>"
	MsgRootShort = "Reorganize a directory tree from a rule file"
	MsgRootLong  = `restruct reorganizes the directory named by a rule file's "using" line.

The prefix section moves files under ordered top-level directories
("10 src" moves src/ to 10_src/, "99 ." sweeps everything not claimed by an
earlier rule). The rename section then relocates paths exactly. Directories
left empty are removed last.

Rule files ending in .toml or .yaml are read in those encodings; any other
file uses the line based format.`
	MsgRootExample = `  restruct layout.rules
  restruct -v --format json layout.yaml`

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat  = "Summary format: auto, term, text or json (default from output.format)"
)

// MsgUsageTemplate is cobra's usage template with bold section headings
const MsgUsageTemplate = `{{boldUpper "Usage"}}:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if gt (len .Aliases) 0}}

{{boldUpper "Aliases"}}:
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

{{boldUpper "Examples"}}:
{{.Example}}{{end}}{{if .HasAvailableLocalFlags}}

{{boldUpper "Flags"}}:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}
`
