package rulefile

import (
	"bytes"
	"sort"

	"github.com/arthur-debert/restruct/pkg/errors"
	"github.com/arthur-debert/restruct/pkg/rules"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type tomlDocument struct {
	Using    string              `toml:"using"`
	Sections map[string][]string `toml:"sections"`
}

type yamlDocument struct {
	Using    string    `yaml:"using"`
	Sections yaml.Node `yaml:"sections"`
}

// ParseTOML reads the TOML encoding. Sections are recorded in sorted order.
func ParseTOML(data []byte) (*rules.RuleSet, error) {
	var doc tomlDocument
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrParse, "invalid TOML rule file")
	}
	if doc.Using == "" {
		return nil, errors.New(errors.ErrParse, "TOML rule file needs a \"using\" key")
	}

	rs := rules.NewRuleSet(doc.Using)
	names := make([]string, 0, len(doc.Sections))
	for name := range doc.Sections {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		rs.AddSection(name)
		for _, line := range doc.Sections[name] {
			rs.AddRule(name, line)
		}
	}
	return rs, nil
}

// ParseYAML reads the YAML encoding. Sections keep document order.
func ParseYAML(data []byte) (*rules.RuleSet, error) {
	var doc yamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrParse, "invalid YAML rule file")
	}
	if doc.Using == "" {
		return nil, errors.New(errors.ErrParse, "YAML rule file needs a \"using\" key")
	}

	rs := rules.NewRuleSet(doc.Using)
	if doc.Sections.Kind == 0 {
		return rs, nil
	}
	if doc.Sections.Kind != yaml.MappingNode {
		return nil, errors.Newf(errors.ErrParse,
			"line %d: \"sections\" must be a mapping", doc.Sections.Line)
	}

	for i := 0; i+1 < len(doc.Sections.Content); i += 2 {
		key, value := doc.Sections.Content[i], doc.Sections.Content[i+1]
		var lines []string
		if err := value.Decode(&lines); err != nil {
			return nil, errors.Wrapf(err, errors.ErrParse,
				"line %d: section %q must be a list of strings", value.Line, key.Value)
		}
		rs.AddSection(key.Value)
		for _, line := range lines {
			rs.AddRule(key.Value, line)
		}
	}
	return rs, nil
}
