package stac

// Document is a decoded JSON object. Views hold their Document by
// reference and treat it as read-only.
type Document map[string]any

// Object names used in field errors.
const (
	objProvider = "provider"
	objExtent   = "extent"
	objLink     = "link"
	objAsset    = "asset"
)

func lookup(obj string, doc Document, key string) (any, error) {
	v, ok := doc[key]
	if !ok {
		return nil, &MissingFieldError{Object: obj, Field: key}
	}
	return v, nil
}

func field[T any](obj string, doc Document, key, want string) (T, error) {
	var zero T
	v, err := lookup(obj, doc, key)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, &FieldTypeError{Object: obj, Field: key, Want: want, Got: v}
	}
	return t, nil
}

func stringField(obj string, doc Document, key string) (string, error) {
	return field[string](obj, doc, key, "string")
}

func documentField(obj string, doc Document, key string) (Document, error) {
	m, err := field[map[string]any](obj, doc, key, "object")
	if err != nil {
		return nil, err
	}
	return Document(m), nil
}

func stringsField(obj string, doc Document, key string) ([]string, error) {
	raw, err := field[[]any](obj, doc, key, "array of strings")
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		s, ok := v.(string)
		if !ok {
			return nil, &FieldTypeError{Object: obj, Field: key, Want: "array of strings", Got: raw}
		}
		out = append(out, s)
	}
	return out, nil
}

// documentsField returns each element of an array of objects.
func documentsField(obj string, doc Document, key string) ([]Document, error) {
	raw, err := field[[]any](obj, doc, key, "array of objects")
	if err != nil {
		return nil, err
	}
	out := make([]Document, 0, len(raw))
	for _, v := range raw {
		m, ok := v.(map[string]any)
		if !ok {
			return nil, &FieldTypeError{Object: obj, Field: key, Want: "array of objects", Got: raw}
		}
		out = append(out, Document(m))
	}
	return out, nil
}
