package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ledgerline/taxengine/internal/domain"
)

// overrideFile is the on-disk shape of a rule override document.
type overrideFile struct {
	TaxYears []domain.TaxYearRules `yaml:"tax_years"`
}

// LoadFile builds a repository from a YAML rule file, replacing the
// built-in tables entirely. Every snapshot in the file is validated before
// the repository is constructed.
func LoadFile(path string) (*Repository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file %s: %w", path, err)
	}

	var file overrideFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse rules file %s: %w", path, err)
	}
	if len(file.TaxYears) == 0 {
		return nil, fmt.Errorf("rules file %s defines no tax years", path)
	}

	repo, err := NewRepositoryFromRules(file.TaxYears)
	if err != nil {
		return nil, fmt.Errorf("rules file %s: %w", path, err)
	}
	return repo, nil
}
