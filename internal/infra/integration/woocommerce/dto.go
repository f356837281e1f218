package woocommerce

import (
	"encoding/json"
	"strconv"

	"github.com/bigtree-group/marketing-webhooks/internal/entity"
)

type productDTO struct {
	ID               int            `json:"id"`
	Name             string         `json:"name"`
	SKU              string         `json:"sku"`
	Price            string         `json:"price"`
	Type             string         `json:"type"`
	Description      string         `json:"description"`
	ShortDescription string         `json:"short_description"`
	Permalink        string         `json:"permalink"`
	DateCreated      string         `json:"date_created"`
	Categories       []categoryDTO  `json:"categories"`
	Brands           []categoryDTO  `json:"brands"`
	Attributes       []attributeDTO `json:"attributes"`
	MetaData         []metaDTO      `json:"meta_data"`
	Images           []imageDTO     `json:"images"`
	Variations       []int          `json:"variations"`
}

type categoryDTO struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Parent int    `json:"parent"`
}

type attributeDTO struct {
	Name    string   `json:"name"`
	Slug    string   `json:"slug"`
	Options []string `json:"options"`
}

type metaDTO struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

type imageDTO struct {
	Src string `json:"src"`
}

func (d productDTO) toEntity() *entity.Product {
	product := &entity.Product{
		ID:               d.ID,
		Name:             d.Name,
		SKU:              d.SKU,
		Price:            d.Price,
		Type:             d.Type,
		Description:      d.Description,
		ShortDescription: d.ShortDescription,
		Permalink:        d.Permalink,
		DateCreated:      d.DateCreated,
		Variations:       d.Variations,
	}

	for _, c := range d.Categories {
		product.Categories = append(product.Categories, c.toEntity())
	}
	for _, b := range d.Brands {
		product.Brands = append(product.Brands, b.toEntity())
	}
	for _, a := range d.Attributes {
		product.Attributes = append(product.Attributes, entity.Attribute{
			Name:    a.Name,
			Slug:    a.Slug,
			Options: a.Options,
		})
	}
	for _, m := range d.MetaData {
		product.Meta = append(product.Meta, entity.MetaEntry{
			Key:   m.Key,
			Value: m.stringValue(),
		})
	}
	for _, img := range d.Images {
		product.Images = append(product.Images, entity.Image{Src: img.Src})
	}

	return product
}

func (d categoryDTO) toEntity() entity.Category {
	return entity.Category{
		ID:     d.ID,
		Name:   d.Name,
		Slug:   d.Slug,
		Parent: d.Parent,
	}
}

// stringValue coerces a meta value to text. The store serializes most meta
// as strings, but numbers show up too; anything structured is dropped.
func (m metaDTO) stringValue() string {
	if len(m.Value) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(m.Value, &s); err == nil {
		return s
	}

	var n float64
	if err := json.Unmarshal(m.Value, &n); err == nil {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}

	return ""
}
