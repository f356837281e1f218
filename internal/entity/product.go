package entity

// Product is owned by the e-commerce store. It is fetched read-only per
// request and never persisted or cached by this service.
type Product struct {
	ID               int
	Name             string
	SKU              string
	Price            string
	Type             string // simple, variable, variation
	Description      string
	ShortDescription string
	Permalink        string
	DateCreated      string
	Categories       []Category
	Brands           []Category
	Attributes       []Attribute
	Meta             []MetaEntry
	Images           []Image
	Variations       []int
}

type Category struct {
	ID     int
	Name   string
	Slug   string
	Parent int
}

// MetaEntry is one named meta attribute (dimensions, composition,
// certifications, care instructions, ...). Values arrive as free text.
type MetaEntry struct {
	Key   string
	Value string
}

type Attribute struct {
	Name    string
	Slug    string
	Options []string
}

type Image struct {
	Src string
}

// IsVariable reports whether the product is a parent ("variable") product
// that must be resolved to a purchasable variation.
func (p *Product) IsVariable() bool {
	return p.Type == "variable" && len(p.Variations) > 0
}

// MetaValue returns the raw value of the named meta attribute, or "" when
// the key is absent.
func (p *Product) MetaValue(key string) string {
	for _, m := range p.Meta {
		if m.Key == key {
			return m.Value
		}
	}
	return ""
}

// AttributeOptions joins the options of the named attribute (matched by
// name or slug) with commas, or returns "" when absent.
func (p *Product) AttributeOptions(name string) string {
	for _, a := range p.Attributes {
		if a.Name == name || a.Slug == name {
			out := ""
			for i, opt := range a.Options {
				if i > 0 {
					out += ", "
				}
				out += opt
			}
			return out
		}
	}
	return ""
}

// PrimaryImageURL is the first listed image, or "" when the product has none.
func (p *Product) PrimaryImageURL() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0].Src
}
