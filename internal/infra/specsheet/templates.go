package specsheet

import (
	"strings"

	"github.com/bigtree-group/marketing-webhooks/internal/entity"
)

// FallbackTemplate is used when the root category maps to nothing.
const FallbackTemplate = "specsheet_all.html"

const seatingTemplate = "specsheet_furniture_seating.html"

// One template per product line, keyed by the root category's name.
var categoryTemplates = map[string]string{
	"Furniture":     "specsheet_furniture.html",
	"Fabrics":       "specsheet_fabrics.html",
	"Wallcoverings": "specsheet_wallcoverings.html",
	"Rugs":          "specsheet_rugs.html",
	"Outdoor":       "specsheet_outdoor.html",
}

// Furniture splits into a seating layout when any subcategory name hits
// one of these keywords.
var seatingKeywords = []string{
	"sofa", "chair", "seating", "lounge", "stool", "bench", "ottoman",
}

// SelectTemplate maps a product's root category to a template file name.
func SelectTemplate(root *entity.Category, categories []entity.Category) string {
	if root == nil {
		return FallbackTemplate
	}

	if root.Name == "Furniture" && hasSeatingCategory(categories) {
		return seatingTemplate
	}

	if name, ok := categoryTemplates[root.Name]; ok {
		return name
	}
	return FallbackTemplate
}

func hasSeatingCategory(categories []entity.Category) bool {
	for _, cat := range categories {
		name := strings.ToLower(cat.Name)
		for _, keyword := range seatingKeywords {
			if strings.Contains(name, keyword) {
				return true
			}
		}
	}
	return false
}
