package stac

import (
	json "github.com/goccy/go-json"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/robert-malhotra/go-stac-browser/pkg/schema"
)

// Item is a STAC Item, a GeoJSON Feature describing one asset bundle.
type Item struct {
	Resource
}

// NewItem wraps doc as an Item. With WithValidation(true) the document is
// checked against the bundled item schema first.
func NewItem(doc Document, opts ...Option) (*Item, error) {
	return newItem(doc, newOptions(opts...))
}

func newItem(doc Document, opts options) (*Item, error) {
	r, err := newResource(schema.TypeItem, doc, opts)
	if err != nil {
		return nil, err
	}
	return &Item{Resource: r}, nil
}

func (*Item) itemsResult() {}

// Properties returns the "properties" object verbatim.
func (i *Item) Properties() (Document, error) {
	return documentField(i.kind, i.doc, "properties")
}

// Geometry returns the "geometry" value verbatim. A null geometry is
// returned as nil.
func (i *Item) Geometry() (any, error) {
	return lookup(i.kind, i.doc, "geometry")
}

// Geom decodes the "geometry" value. A null geometry yields nil.
func (i *Item) Geom() (geom.T, error) {
	raw, err := i.Geometry()
	if err != nil || raw == nil {
		return nil, err
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	var g geom.T
	if err := geojson.Unmarshal(data, &g); err != nil {
		return nil, err
	}
	return g, nil
}

// Bbox returns the "bbox" field.
func (i *Item) Bbox() ([]float64, error) {
	raw, err := field[[]any](i.kind, i.doc, "bbox", "array of numbers")
	if err != nil {
		return nil, err
	}
	out := make([]float64, 0, len(raw))
	for _, v := range raw {
		f, ok := v.(float64)
		if !ok {
			return nil, &FieldTypeError{Object: i.kind, Field: "bbox", Want: "array of numbers", Got: raw}
		}
		out = append(out, f)
	}
	return out, nil
}

// Collection returns the "collection" field, the ID of the parent
// collection.
func (i *Item) Collection() (string, error) {
	return stringField(i.kind, i.doc, "collection")
}

// Datetime returns the "datetime" property. A null datetime, used with
// start/end ranges, is returned as "".
func (i *Item) Datetime() (string, error) {
	props, err := i.Properties()
	if err != nil {
		return "", err
	}
	v, err := lookup("properties", props, "datetime")
	if err != nil || v == nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", &FieldTypeError{Object: "properties", Field: "datetime", Want: "string", Got: v}
	}
	return s, nil
}

// Assets returns the "assets" object verbatim.
func (i *Item) Assets() (Document, error) {
	return documentField(i.kind, i.doc, "assets")
}

// Asset returns a view of the asset stored under key.
func (i *Item) Asset(key string) (Asset, error) {
	assets, err := i.Assets()
	if err != nil {
		return Asset{}, err
	}
	doc, err := documentField("assets", assets, key)
	if err != nil {
		return Asset{}, err
	}
	return Asset{doc: doc}, nil
}
