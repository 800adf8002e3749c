package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalogue is the static seed configuration: which statement files to
// load per account, the tag vocabulary, description-to-tag rules, and
// transaction sub-split rules. It is supplied externally (YAML file or
// built-in defaults), never computed.
type Catalogue struct {
	// Statements maps an account to the period tokens to seed from
	// <data-root>/<account>/<period>.csv.
	Statements   map[string][]string `yaml:"statements"`
	Tags         []string            `yaml:"tags"`
	Descriptions []DescriptionRule   `yaml:"descriptions"`
	Expansions   []ExpansionRule     `yaml:"expansions"`
}

// DescriptionRule attaches tags to every transaction whose description
// exactly matches Desc.
type DescriptionRule struct {
	Desc string   `yaml:"desc"`
	Tags []string `yaml:"tags"`
}

// ExpansionRule splits the transaction matching (date, desc, amount,
// balance) into tagged sub-amounts. Amounts are decimal strings.
type ExpansionRule struct {
	Date    string  `yaml:"date"`
	Desc    string  `yaml:"desc"`
	Amount  string  `yaml:"amount"`
	Balance string  `yaml:"balance"`
	Splits  []Split `yaml:"splits"`
}

// Split is one sub-amount of an expansion rule.
type Split struct {
	Amount string   `yaml:"amount"`
	Tags   []string `yaml:"tags"`
}

// Load reads a catalogue YAML file from disk.
func Load(path string) (*Catalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed catalogue: %w", err)
	}
	var c Catalogue
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing seed catalogue: %w", err)
	}
	return &c, nil
}

// Save writes a Catalogue to a YAML file.
func Save(path string, c *Catalogue) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling seed catalogue: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing seed catalogue: %w", err)
	}
	return nil
}
