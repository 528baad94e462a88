package memory

import (
    _ "embed"
    "fmt"
    "os"

    "github.com/go-playground/validator/v10"
    "gopkg.in/yaml.v3"

    "xeni/internal/domain"
)

//go:embed demo.yaml
var demoFixtures []byte

type fixtureFile struct {
    Cases []domain.CaseBundle `yaml:"cases"`
}

// DemoBundles returns the embedded demo cases.
func DemoBundles() ([]domain.CaseBundle, error) { return ParseBundles(demoFixtures) }

// LoadBundles reads a fixture file with a top-level `cases:` list of bundles.
func LoadBundles(path string) ([]domain.CaseBundle, error) {
    raw, err := os.ReadFile(path)
    if err != nil {
        return nil, fmt.Errorf("read fixtures: %w", err)
    }
    return ParseBundles(raw)
}

func ParseBundles(raw []byte) ([]domain.CaseBundle, error) {
    var f fixtureFile
    if err := yaml.Unmarshal(raw, &f); err != nil {
        return nil, fmt.Errorf("parse fixtures: %w", err)
    }
    v := validator.New()
    for i, b := range f.Cases {
        if err := ValidateBundle(v, b); err != nil {
            return nil, fmt.Errorf("fixture case %d (%s): %w", i, b.Case.ID, err)
        }
    }
    return f.Cases, nil
}

// ValidateBundle checks struct tags and the closed enumerations of a bundle.
func ValidateBundle(v *validator.Validate, b domain.CaseBundle) error {
    if err := v.Struct(b); err != nil {
        return err
    }
    for _, d := range b.Documents {
        if !d.PipelineStatus.Valid() {
            return fmt.Errorf("document %s: invalid pipeline status %q", d.ID, d.PipelineStatus)
        }
    }
    for _, is := range b.Issues {
        switch {
        case !is.Type.Valid():
            return fmt.Errorf("issue %s: invalid type %q", is.ID, is.Type)
        case !is.Severity.Valid():
            return fmt.Errorf("issue %s: invalid severity %q", is.ID, is.Severity)
        case !is.Status.Valid():
            return fmt.Errorf("issue %s: invalid status %q", is.ID, is.Status)
        }
    }
    return nil
}
