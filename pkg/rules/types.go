package rules

// Section names understood by the engines
const (
	SectionPrefix = "prefix"
	SectionRename = "rename"
)

// CatchAll is the prefix target matching every unclaimed file
const CatchAll = "."

// RuleSet is the parsed rule file: a root plus named, ordered sections
type RuleSet struct {
	// Root is the absolute, canonical directory every rule is relative to
	Root string

	// Sections maps a section name to its rule lines in file order
	Sections map[string][]string

	// Order lists section names in the order they were first declared
	Order []string
}

// NewRuleSet creates an empty rule set for root
func NewRuleSet(root string) *RuleSet {
	return &RuleSet{
		Root:     root,
		Sections: make(map[string][]string),
	}
}

// AddSection opens a section. Reopening an existing section keeps its rules.
func (rs *RuleSet) AddSection(name string) {
	if _, ok := rs.Sections[name]; ok {
		return
	}
	rs.Sections[name] = []string{}
	rs.Order = append(rs.Order, name)
}

// AddRule appends a rule line to a section, opening it if needed
func (rs *RuleSet) AddRule(section, line string) {
	rs.AddSection(section)
	rs.Sections[section] = append(rs.Sections[section], line)
}

// Section returns the rule lines of a section and whether it was declared
func (rs *RuleSet) Section(name string) ([]string, bool) {
	lines, ok := rs.Sections[name]
	return lines, ok
}

// PrefixRule assigns an order tag to a file, a subtree or, with the
// CatchAll target, to everything left over
type PrefixRule struct {
	Order  string
	Target string
	// Line is the raw rule text, kept for error messages
	Line string
}

// IsCatchAll reports whether the rule targets every unclaimed file
func (r PrefixRule) IsCatchAll() bool {
	return r.Target == CatchAll
}

// RenameRule relocates Source to Destination, both relative to the root
type RenameRule struct {
	Source      string
	Destination string
	Line        string
}
