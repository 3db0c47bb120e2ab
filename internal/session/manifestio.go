package session

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/Supreeeme/xrizer/internal/manifest/schema"
)

// FetchManifest resolves a manifest path to the raw JSON bytes. The
// default, ReadLocalManifest, just reads a filesystem path;
// internal/manifestfetch.Fetcher.FetchManifest has the same shape and
// serves s3:// URIs, but no caller in this module passes it in.
// internal/session never
// depends on internal/manifestfetch directly, so the loader stays
// usable with a bare filesystem path in tests.
type FetchManifest func(path string) ([]byte, error)

// ReadLocalManifest reads path off the local filesystem.
func ReadLocalManifest(path string) ([]byte, error) {
	return os.ReadFile(path)
}

var docValidator = validator.New()

// decodeManifest parses and structurally validates raw manifest JSON,
// per spec.md §4.5's "any JSON parse error ... is reported and
// skipped" and SPEC_FULL.md §6's embedded-schema pre-validation.
func decodeManifest(raw []byte) (schema.Document, error) {
	var doc schema.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return schema.Document{}, fmt.Errorf("parse manifest: %w", err)
	}
	if err := docValidator.Struct(doc); err != nil {
		return schema.Document{}, fmt.Errorf("validate manifest: %w", err)
	}
	return doc, nil
}
