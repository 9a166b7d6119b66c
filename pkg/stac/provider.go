package stac

// Provider is a view of one entry of a Collection's "providers" array.
// Every accessor fails with a *MissingFieldError when its key is absent.
type Provider struct {
	doc Document
}

// Name returns the "name" field.
func (p Provider) Name() (string, error) {
	return stringField(objProvider, p.doc, "name")
}

// Description returns the "description" field.
func (p Provider) Description() (string, error) {
	return stringField(objProvider, p.doc, "description")
}

// Roles returns the "roles" field in order.
func (p Provider) Roles() ([]string, error) {
	return stringsField(objProvider, p.doc, "roles")
}

// URL returns the "url" field.
func (p Provider) URL() (string, error) {
	return stringField(objProvider, p.doc, "url")
}

// Document returns the backing provider object.
func (p Provider) Document() Document { return p.doc }
