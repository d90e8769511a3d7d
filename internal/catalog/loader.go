package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/osse101/Forgeworks_Go/internal/domain"
	"github.com/osse101/Forgeworks_Go/internal/validation"
)

// Loader turns JSON documents from the design tool into validated catalogs
// and rulesets. Every document passes the generated JSON schema first, then
// the struct tags, then the catalog's own integrity rules.
type Loader struct {
	schemas validation.SchemaValidator
	structs *validation.StructValidator
}

// NewLoader generates and registers the catalog and ruleset schemas
func NewLoader() (*Loader, error) {
	return NewLoaderWithValidator(validation.NewSchemaValidator())
}

// NewLoaderWithValidator registers the schemas with an existing validator
func NewLoaderWithValidator(schemas validation.SchemaValidator) (*Loader, error) {
	l := &Loader{
		schemas: schemas,
		structs: validation.NewStructValidator(),
	}
	docs, err := SchemaDocuments()
	if err != nil {
		return nil, err
	}
	for _, name := range []string{SchemaCatalog, SchemaRuleset} {
		if err := l.schemas.Register(name, docs[name]); err != nil {
			return nil, fmt.Errorf(ErrMsgSchemaRegFailed, name, err)
		}
	}
	return l, nil
}

// SchemaDocuments generates every schema documents are validated against,
// keyed by schema name
func SchemaDocuments() (map[string][]byte, error) {
	sources := []struct {
		name        string
		v           any
		title       string
		description string
	}{
		{SchemaCatalog, Document{}, SchemaCatalogTitle, SchemaCatalogDescription},
		{SchemaRuleset, domain.Ruleset{}, SchemaRulesetTitle, SchemaRulesetDescription},
	}

	docs := make(map[string][]byte, len(sources))
	for _, src := range sources {
		schema, err := validation.GenerateSchema(src.v, src.title, src.description)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgSchemaGenFailed, src.name, err)
		}
		docs[src.name] = schema
	}
	return docs, nil
}

// ParseCatalog validates and interns a catalog document
func (l *Loader) ParseCatalog(data []byte) (*Catalog, error) {
	var doc Document
	if err := l.decode(data, SchemaCatalog, &doc); err != nil {
		return nil, err
	}
	return New(&doc)
}

// LoadCatalog reads a catalog document from disk
func (l *Loader) LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadFileFailed, path, err)
	}
	return l.ParseCatalog(data)
}

// ParseRuleset validates a ruleset document. Missing identity fields are
// filled in so a hand-written file needs only the tuning values. Scalar
// tuning left out keeps its default; the weights object is taken as a whole,
// so a weight the document omits is zero.
func (l *Loader) ParseRuleset(data []byte) (*domain.Ruleset, error) {
	rs := domain.NewRuleset(domain.DefaultRulesetName)
	rs.Weights = domain.Weights{}
	if err := l.decode(data, SchemaRuleset, rs); err != nil {
		return nil, err
	}
	if rs.ID == "" {
		rs.ID = uuid.NewString()
	}
	if rs.Version <= 0 {
		rs.Version = 1
	}
	return rs, nil
}

// LoadRuleset reads a ruleset document from disk
func (l *Loader) LoadRuleset(path string) (*domain.Ruleset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadFileFailed, path, err)
	}
	return l.ParseRuleset(data)
}

// ValidateRuleset checks struct tags on a ruleset built in code
func (l *Loader) ValidateRuleset(rs *domain.Ruleset) error {
	if rs == nil {
		return fmt.Errorf("%w: ruleset is nil", domain.ErrInvalidRuleset)
	}
	if err := l.structs.ValidateStruct(rs); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidRuleset, err)
	}
	return nil
}

func (l *Loader) decode(data []byte, schema string, target any) error {
	if err := l.schemas.ValidateBytes(data, schema); err != nil {
		return err
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: "+ErrMsgParseFailed, domain.ErrInvalidInput, schema, err)
	}
	return l.structs.ValidateStruct(target)
}
