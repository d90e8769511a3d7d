package main

import (
	"flag"
	"fmt"
	"log"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/osse101/Forgeworks_Go/internal/catalog"
	"github.com/osse101/Forgeworks_Go/internal/validation"
)

func main() {
	outputDir := flag.String("output", "configs/schemas", "Directory to write the JSON schemas into")
	validate := flag.Bool("validate", false, "Check the catalog and ruleset documents against the written schemas")
	catalogPath := flag.String("catalog", "configs/catalog.json", "Catalog document checked by -validate")
	rulesetPath := flag.String("ruleset", "configs/ruleset.json", "Ruleset document checked by -validate")
	flag.Parse()

	schemaPaths, err := writeSchemas(*outputDir)
	if err != nil {
		log.Fatalf("Failed to generate schemas: %v", err)
	}
	for _, name := range slices.Sorted(maps.Keys(schemaPaths)) {
		fmt.Printf("✓ Generated %s\n", schemaPaths[name])
	}

	if !*validate {
		return
	}

	documents := map[string]string{
		catalog.SchemaCatalog: *catalogPath,
		catalog.SchemaRuleset: *rulesetPath,
	}
	if err := validateDocuments(validation.NewSchemaValidator(), schemaPaths, documents); err != nil {
		log.Fatalf("Validation failed: %v", err)
	}
	for _, name := range slices.Sorted(maps.Keys(documents)) {
		fmt.Printf("✓ Validated %s\n", documents[name])
	}
}

// writeSchemas writes one schema file per document kind and returns the
// written paths keyed by kind
func writeSchemas(outputDir string) (map[string]string, error) {
	docs, err := catalog.SchemaDocuments()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	paths := make(map[string]string, len(docs))
	for _, name := range slices.Sorted(maps.Keys(docs)) {
		path := filepath.Join(outputDir, name+".schema.json")
		if err := os.WriteFile(path, docs[name], 0644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}
		paths[name] = path
	}
	return paths, nil
}

// validateDocuments checks each document file against the schema file of its
// kind, stopping at the first failure
func validateDocuments(v validation.SchemaValidator, schemaPaths, documents map[string]string) error {
	for _, kind := range slices.Sorted(maps.Keys(documents)) {
		schemaPath, ok := schemaPaths[kind]
		if !ok {
			return fmt.Errorf("no schema written for %s documents", kind)
		}
		if err := v.ValidateFile(documents[kind], schemaPath); err != nil {
			return fmt.Errorf("%s: %w", documents[kind], err)
		}
	}
	return nil
}
