package notification

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Template names known to this service.
const (
	TemplateLinkedAccountCohort     = "LinkedAccountCohort"
	TemplateLinkedAccountVacancy    = "LinkedAccountVacancy"
	TemplateCreateAccountExpired    = "CreateAccountExpired"
	TemplateAddAccountExpired       = "AddAccountExpired"
	TemplateUpdatePermissionExpired = "UpdatePermissionExpired"
)

// knownTemplates is the closed set of template names the service can emit.
var knownTemplates = []string{
	TemplateLinkedAccountCohort,
	TemplateLinkedAccountVacancy,
	TemplateCreateAccountExpired,
	TemplateAddAccountExpired,
	TemplateUpdatePermissionExpired,
}

// Catalog maps template names to the template ids the email channel expects.
// An unresolvable name is a configuration fault, caught when the catalog is
// loaded rather than when a notification is dispatched.
type Catalog struct {
	templates map[string]string
}

// catalogFile is the YAML shape of a catalog file.
type catalogFile struct {
	Templates map[string]string `yaml:"templates"`
}

// NewCatalog creates a Catalog from a name→template-id mapping, validating
// that every known template name resolves.
func NewCatalog(templates map[string]string) (Catalog, error) {
	var missing []string
	for _, name := range knownTemplates {
		if templates[name] == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return Catalog{}, fmt.Errorf("template catalog missing entries: %v", missing)
	}

	copied := make(map[string]string, len(templates))
	for name, id := range templates {
		copied[name] = id
	}
	return Catalog{templates: copied}, nil
}

// LoadCatalog reads and validates a catalog YAML file:
//
//	templates:
//	  LinkedAccountCohort: "6a72cbe2-97bd-4b7c-a02f-01a79ad6a4f0"
//	  ...
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read template catalog: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Catalog{}, fmt.Errorf("parse template catalog: %w", err)
	}

	return NewCatalog(file.Templates)
}

// DefaultCatalog returns a catalog whose template ids equal the template
// names. Useful for development and tests, where the email channel is a fake.
func DefaultCatalog() Catalog {
	templates := make(map[string]string, len(knownTemplates))
	for _, name := range knownTemplates {
		templates[name] = name
	}
	c, _ := NewCatalog(templates)
	return c
}

// TemplateID resolves a template name to the email channel's template id.
func (c Catalog) TemplateID(name string) (string, bool) {
	id, ok := c.templates[name]
	return id, ok
}
