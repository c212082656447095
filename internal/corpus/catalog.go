package corpus

import (
	_ "embed" // Embedded default data.
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/verte-zerg/jyutquiz/internal/model"
)

//go:embed data/tests.json
var defaultTests []byte

var (
	// ErrUnknownTest is returned for a test id missing from the catalog.
	ErrUnknownTest = errors.New("unknown test")
	// ErrUnknownSection is returned for a section id missing from its test.
	ErrUnknownSection = errors.New("unknown section")
)

type catalogFile struct {
	Tests []model.TestConfig `json:"tests"`
}

// Catalog is the ordered list of configured tests.
type Catalog struct {
	tests []model.TestConfig
}

// DefaultCatalog returns the embedded test catalog.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultTests)
}

// LoadCatalog reads a test catalog JSON file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tests: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes and validates test catalog JSON.
func ParseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse tests: %w", err)
	}
	if len(file.Tests) == 0 {
		return nil, fmt.Errorf("test catalog is empty")
	}
	validate := validator.New()
	for _, test := range file.Tests {
		if err := validate.Struct(test); err != nil {
			return nil, fmt.Errorf("invalid test %q: %w", test.ID, err)
		}
	}
	return &Catalog{tests: file.Tests}, nil
}

// Tests returns every test in catalog order.
func (c *Catalog) Tests() []model.TestConfig {
	return append([]model.TestConfig(nil), c.tests...)
}

// Test returns the test with id.
func (c *Catalog) Test(id string) (model.TestConfig, error) {
	for _, test := range c.tests {
		if test.ID == id {
			return test, nil
		}
	}
	return model.TestConfig{}, fmt.Errorf("%w: %s", ErrUnknownTest, id)
}

// Section resolves a section of a test. A section without its own question
// distribution inherits the test's.
func (c *Catalog) Section(testID, sectionID string) (model.SectionConfig, error) {
	test, err := c.Test(testID)
	if err != nil {
		return model.SectionConfig{}, err
	}
	for _, section := range test.Sections {
		if section.ID != sectionID {
			continue
		}
		if len(section.QuestionDistribution) == 0 {
			section.QuestionDistribution = append(model.Distribution(nil), test.QuestionDistribution...)
		}
		return section, nil
	}
	return model.SectionConfig{}, fmt.Errorf("%w: %s/%s", ErrUnknownSection, testID, sectionID)
}
