// Package schema resolves and applies the JSON Schemas bundled for each
// supported STAC version.
//
// Schemas are stored as {version}/{type}.json, where type is one of
// "catalog", "collection", "item" or "itemcollection".
package schema

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Object type names used to locate schema files.
const (
	TypeCatalog        = "catalog"
	TypeCollection     = "collection"
	TypeItem           = "item"
	TypeItemCollection = "itemcollection"
)

// LatestVersion is the newest STAC version with bundled schemas.
const LatestVersion = "1.0.0"

//go:embed jsonschemas
var bundled embed.FS

// Registry loads schema documents from a filesystem and caches their
// compiled form. The zero value is not usable; use New or Default.
type Registry struct {
	fsys     fs.FS
	compiled sync.Map // key -> *jsonschema.Schema
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry backed by the bundled schemas.
func Default() *Registry {
	defaultOnce.Do(func() {
		sub, err := fs.Sub(bundled, "jsonschemas")
		if err != nil {
			panic(fmt.Sprintf("schema: bundled schemas unavailable: %v", err))
		}
		defaultRegistry = New(sub)
	})
	return defaultRegistry
}

// New returns a Registry reading {version}/{type}.json files from fsys.
func New(fsys fs.FS) *Registry {
	return &Registry{fsys: fsys}
}

// Load returns the raw schema document for a version and type.
func Load(version, typeName string) (map[string]any, error) {
	return Default().Load(version, typeName)
}

// Validate checks doc against the bundled schema for version and type.
func Validate(doc any, version, typeName string) error {
	return Default().Validate(doc, version, typeName)
}

func (r *Registry) read(version, typeName string) ([]byte, error) {
	name := path.Join(version, typeName+".json")
	if version == "" || typeName == "" || strings.Contains(typeName, "/") || !fs.ValidPath(name) || path.Dir(name) != version {
		return nil, &SchemaNotFoundError{Version: version, Type: typeName}
	}
	data, err := fs.ReadFile(r.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &SchemaNotFoundError{Version: version, Type: typeName}
	}
	if err != nil {
		return nil, errors.Wrapf(err, "schema: read %s", name)
	}
	return data, nil
}

// Load returns the raw schema document for a version and type.
func (r *Registry) Load(version, typeName string) (map[string]any, error) {
	data, err := r.read(version, typeName)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, "schema: decode %s/%s", version, typeName)
	}
	return doc, nil
}

// Schema returns the compiled schema for a version and type. Compilation
// happens on first use; concurrent first uses may compile more than once,
// but only one result is kept.
func (r *Registry) Schema(version, typeName string) (*jsonschema.Schema, error) {
	key := version + "/" + typeName
	if s, ok := r.compiled.Load(key); ok {
		return s.(*jsonschema.Schema), nil
	}

	data, err := r.read(version, typeName)
	if err != nil {
		return nil, err
	}

	url := "mem://stac/" + key + ".json"
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft7
	if err := c.AddResource(url, bytes.NewReader(data)); err != nil {
		return nil, errors.Wrapf(err, "schema: add resource %s", key)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, errors.Wrapf(err, "schema: compile %s", key)
	}

	actual, _ := r.compiled.LoadOrStore(key, compiled)
	return actual.(*jsonschema.Schema), nil
}

// Validate checks doc against the schema for version and type. It returns
// a *SchemaNotFoundError when no schema exists and a *ValidationError
// listing every violation when doc does not conform.
func (r *Registry) Validate(doc any, version, typeName string) error {
	s, err := r.Schema(version, typeName)
	if err != nil {
		return err
	}

	err = s.Validate(doc)
	if err == nil {
		return nil
	}

	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return errors.Wrapf(err, "schema: validate %s/%s", version, typeName)
	}
	return &ValidationError{
		Version:    version,
		Type:       typeName,
		Violations: flatten(verr),
	}
}

// Versions lists the STAC versions that have at least one schema.
func (r *Registry) Versions() ([]string, error) {
	entries, err := fs.ReadDir(r.fsys, ".")
	if err != nil {
		return nil, errors.Wrap(err, "schema: list versions")
	}
	var versions []string
	for _, e := range entries {
		if e.IsDir() {
			versions = append(versions, e.Name())
		}
	}
	sort.Strings(versions)
	return versions, nil
}

// flatten collects the leaf causes of a validation error.
func flatten(verr *jsonschema.ValidationError) []Violation {
	if len(verr.Causes) == 0 {
		return []Violation{{
			InstanceLocation: verr.InstanceLocation,
			KeywordLocation:  verr.KeywordLocation,
			Message:          verr.Message,
		}}
	}
	var out []Violation
	for _, cause := range verr.Causes {
		out = append(out, flatten(cause)...)
	}
	return out
}
