package stac

// Asset is a view of one entry of an Item's "assets" object.
type Asset struct {
	doc Document
}

// Href returns the "href" field.
func (a Asset) Href() (string, error) {
	return stringField(objAsset, a.doc, "href")
}

// Type returns the "type" field, a media type.
func (a Asset) Type() (string, error) {
	return stringField(objAsset, a.doc, "type")
}

// Title returns the "title" field.
func (a Asset) Title() (string, error) {
	return stringField(objAsset, a.doc, "title")
}

// Roles returns the "roles" field.
func (a Asset) Roles() ([]string, error) {
	return stringsField(objAsset, a.doc, "roles")
}

// Document returns the backing asset object.
func (a Asset) Document() Document { return a.doc }
