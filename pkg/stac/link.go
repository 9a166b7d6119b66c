package stac

// Link relation types followed by navigation.
const (
	RelSelf  = "self"
	RelRoot  = "root"
	RelChild = "child"
	RelItem  = "item"
	RelItems = "items"
	RelNext  = "next"
)

// Link is an entry of a document's links array.
type Link struct {
	Href  string
	Rel   string
	Type  string
	Title string

	// AdditionalFields holds the remaining members (e.g., "method", "body").
	AdditionalFields map[string]any
}

var knownLinkFields = map[string]bool{
	"href": true, "rel": true, "type": true, "title": true,
}

func newLink(doc Document) (Link, error) {
	rel, err := stringField(objLink, doc, "rel")
	if err != nil {
		return Link{}, err
	}
	href, err := stringField(objLink, doc, "href")
	if err != nil {
		return Link{}, err
	}

	link := Link{Href: href, Rel: rel}
	link.Type, _ = doc["type"].(string)
	link.Title, _ = doc["title"].(string)
	for key, val := range doc {
		if knownLinkFields[key] {
			continue
		}
		if link.AdditionalFields == nil {
			link.AdditionalFields = make(map[string]any)
		}
		link.AdditionalFields[key] = val
	}
	return link, nil
}

func parseLinks(obj string, doc Document) ([]Link, error) {
	entries, err := documentsField(obj, doc, "links")
	if err != nil {
		return nil, err
	}
	links := make([]Link, 0, len(entries))
	for _, entry := range entries {
		link, err := newLink(entry)
		if err != nil {
			return nil, err
		}
		links = append(links, link)
	}
	return links, nil
}

// firstLink returns the first entry of doc's "links" whose rel matches,
// or nil. Non-matching entries are only read for "rel", so a malformed
// unrelated link does not fail the lookup.
func firstLink(obj string, doc Document, rel string) (*Link, error) {
	raw, err := field[[]any](obj, doc, "links", "array of objects")
	if err != nil {
		return nil, err
	}
	for _, v := range raw {
		entry, ok := v.(map[string]any)
		if !ok {
			return nil, &FieldTypeError{Object: obj, Field: "links", Want: "array of objects", Got: raw}
		}
		if r, _ := entry["rel"].(string); r != rel {
			continue
		}
		link, err := newLink(Document(entry))
		if err != nil {
			return nil, err
		}
		return &link, nil
	}
	return nil, nil
}

// FindLink returns the first link with the given rel, or nil.
func FindLink(links []Link, rel string) *Link {
	for i := range links {
		if links[i].Rel == rel {
			return &links[i]
		}
	}
	return nil
}

// FilterLinks returns every link with the given rel, in document order.
func FilterLinks(links []Link, rel string) []Link {
	var result []Link
	for _, link := range links {
		if link.Rel == rel {
			result = append(result, link)
		}
	}
	return result
}
