package stac

// Extent is a view of a Collection's "extent" object.
type Extent struct {
	doc Document
}

// Spatial returns the "spatial" object verbatim.
func (e Extent) Spatial() (Document, error) {
	return documentField(objExtent, e.doc, "spatial")
}

// Temporal returns the "temporal" object verbatim.
func (e Extent) Temporal() (Document, error) {
	return documentField(objExtent, e.doc, "temporal")
}

// Document returns the backing extent object.
func (e Extent) Document() Document { return e.doc }
