package catalog

import (
    _ "embed"
    "errors"
    "fmt"
    "os"
    "sort"

    "github.com/go-playground/validator/v10"
    "gopkg.in/yaml.v3"

    "xeni/internal/domain"
)

//go:embed default.yaml
var defaultCatalog []byte

var ErrUnknownVisaType = errors.New("unknown visa type")

// Catalog holds the evidence slot templates for each visa type. It is read
// once at startup and never mutated.
type Catalog struct {
    visaTypes map[string][]domain.EvidenceSlotTemplate
}

type file struct {
    VisaTypes map[string]struct {
        Slots []domain.EvidenceSlotTemplate `yaml:"slots"`
    } `yaml:"visa_types"`
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) { return Parse(defaultCatalog) }

// Load reads a catalog from path, falling back to the embedded one when path is empty.
func Load(path string) (*Catalog, error) {
    if path == "" {
        return Default()
    }
    raw, err := os.ReadFile(path)
    if err != nil {
        return nil, fmt.Errorf("read catalog: %w", err)
    }
    return Parse(raw)
}

func Parse(raw []byte) (*Catalog, error) {
    var f file
    if err := yaml.Unmarshal(raw, &f); err != nil {
        return nil, fmt.Errorf("parse catalog: %w", err)
    }
    v := validator.New()
    c := &Catalog{visaTypes: make(map[string][]domain.EvidenceSlotTemplate, len(f.VisaTypes))}
    for visa, vt := range f.VisaTypes {
        seen := make(map[string]bool, len(vt.Slots))
        for _, s := range vt.Slots {
            if err := validateSlot(v, s); err != nil {
                return nil, fmt.Errorf("visa type %q slot %q: %w", visa, s.ID, err)
            }
            if seen[s.ID] {
                return nil, fmt.Errorf("visa type %q: duplicate slot %q", visa, s.ID)
            }
            seen[s.ID] = true
        }
        c.visaTypes[visa] = vt.Slots
    }
    return c, nil
}

func validateSlot(v *validator.Validate, s domain.EvidenceSlotTemplate) error {
    if err := v.Struct(s); err != nil {
        return err
    }
    if !s.Priority.Valid() {
        return fmt.Errorf("invalid priority %q", s.Priority)
    }
    if s.MinCount != nil && s.MaxCount != nil && *s.MaxCount < *s.MinCount {
        return fmt.Errorf("maxCount %d below minCount %d", *s.MaxCount, *s.MinCount)
    }
    return nil
}

// SlotsFor returns a copy of the templates for a visa type, in catalog order.
func (c *Catalog) SlotsFor(visaType string) ([]domain.EvidenceSlotTemplate, error) {
    slots, ok := c.visaTypes[visaType]
    if !ok {
        return nil, fmt.Errorf("%w: %s", ErrUnknownVisaType, visaType)
    }
    return append([]domain.EvidenceSlotTemplate(nil), slots...), nil
}

// VisaTypes lists the catalogued visa types in lexical order.
func (c *Catalog) VisaTypes() []string {
    out := make([]string, 0, len(c.visaTypes))
    for k := range c.visaTypes {
        out = append(out, k)
    }
    sort.Strings(out)
    return out
}
