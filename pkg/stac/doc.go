// Package stac provides read-only views over SpatioTemporal Asset Catalog
// (STAC) documents and the navigation operations that follow their links.
//
// A view (Catalog, Collection, Item, ItemCollection) wraps an already
// decoded JSON document without copying or restructuring it. Field
// accessors are projections: a missing key is reported as a
// *MissingFieldError at the moment it is read, never at construction.
//
// Navigation methods such as Collection.GetItems and Catalog.Children turn
// a link relation into a fetch through the configured Fetcher and wrap the
// result in a new view.
//
// Example usage:
//
//	col, err := stac.NewCollection(doc, stac.WithFetcher(client))
//	if err != nil {
//	    return err
//	}
//
//	res, err := col.GetItems(ctx, "", url.Values{"bbox": {"0,0,1,1"}})
//	if err != nil {
//	    return err
//	}
//	if items, ok := res.(*stac.ItemCollection); ok {
//	    n, err := items.Len()
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(n)
//	}
package stac
