// Package content provides the copy and the feature catalog rendered by the
// Findar landing page.
//
// The default content is a YAML document embedded in the binary. A site
// operator can point the server at an override file with the same schema;
// the override replaces the embedded document entirely.
//
// # Feature Catalog
//
// Features.Items is the carousel catalog. It must be non-empty, and its order
// is the display order. Each entry names an icon and a theme token; both are
// symbolic and resolved to SVG paths and CSS classes by the view layer, so
// Validate only accepts names from KnownIcons and KnownThemes.
//
// # Usage Example
//
//	c, err := content.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, f := range c.Features.Items {
//	    fmt.Println(f.Title)
//	}
package content
