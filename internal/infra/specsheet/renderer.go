package specsheet

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/bigtree-group/marketing-webhooks/internal/entity"
	"github.com/bigtree-group/marketing-webhooks/internal/usecase"
)

// CategoryResolver walks a product's category hierarchy to its root.
type CategoryResolver interface {
	RootCategory(ctx context.Context, product *entity.Product) (*entity.Category, error)
}

// Renderer fills a per-category HTML template with flattened product data
// and shells out to LibreOffice to produce the PDF. Temp files are named
// by product ID so concurrent requests never collide on the same artifact.
type Renderer struct {
	TemplateDir string
	OutputDir   string
	Categories  CategoryResolver
	Images      *ImageFetcher
	SofficePath string
}

func NewRenderer(templateDir, outputDir string, categories CategoryResolver) *Renderer {
	return &Renderer{
		TemplateDir: templateDir,
		OutputDir:   outputDir,
		Categories:  categories,
		Images:      NewImageFetcher(),
		SofficePath: defaultSofficePath(),
	}
}

func (r *Renderer) Render(ctx context.Context, product *entity.Product) (string, error) {
	root, err := r.Categories.RootCategory(ctx, product)
	if err != nil {
		// Unknown root degrades to the generic template.
		log.Printf("⚠️ Root category resolution failed for product %d: %v", product.ID, err)
		root = nil
	}

	templateName := SelectTemplate(root, product.Categories)
	t, err := template.ParseFiles(filepath.Join(r.TemplateDir, templateName))
	if err != nil {
		return "", &usecase.TechnicalError{
			Code:    "TEMPLATE_LOAD_FAILED",
			Message: fmt.Sprintf("failed to load specsheet template %s: %v", templateName, err),
		}
	}

	data := r.buildPlaceholders(ctx, product, root)

	htmlPath := filepath.Join(r.OutputDir, fmt.Sprintf("%d_specsheet.html", product.ID))
	out, err := os.Create(htmlPath)
	if err != nil {
		return "", &usecase.TechnicalError{
			Code:    "TEMPLATE_RENDER_FAILED",
			Message: fmt.Sprintf("failed to create intermediate document: %v", err),
		}
	}

	if err := t.Execute(out, data); err != nil {
		out.Close()
		os.Remove(htmlPath)
		return "", &usecase.TechnicalError{
			Code:    "TEMPLATE_RENDER_FAILED",
			Message: fmt.Sprintf("failed to fill specsheet template: %v", err),
		}
	}
	out.Close()

	pdfPath, err := r.convertToPDF(ctx, htmlPath)

	// The intermediate document is removed whether or not conversion
	// succeeded; only the PDF leaves this function.
	if removeErr := os.Remove(htmlPath); removeErr != nil {
		log.Printf("⚠️ Failed to remove intermediate document %s: %v", htmlPath, removeErr)
	}

	if err != nil {
		return "", err
	}

	log.Printf("📄 Specsheet generated for product %d (%s) using %s", product.ID, product.Name, templateName)
	return pdfPath, nil
}

// buildPlaceholders flattens product fields and the fixed set of named
// meta attributes into the template context. Missing attributes default
// to the literal "N/A"; free-text fields get their markup stripped.
func (r *Renderer) buildPlaceholders(ctx context.Context, product *entity.Product, root *entity.Category) map[string]interface{} {
	meta := func(key string) string {
		return metaOrNA(product, key, false)
	}
	metaClean := func(key string) string {
		return metaOrNA(product, key, true)
	}

	category := "N/A"
	if len(product.Categories) > 0 {
		category = product.Categories[0].Name
	}

	rootName := "N/A"
	if root != nil {
		rootName = root.Name
	}

	brand := meta("brand")
	if len(product.Brands) > 0 {
		brand = product.Brands[0].Name
	}

	data := map[string]interface{}{
		"product_name":      orNA(product.Name),
		"product_sku":       orNA(product.SKU),
		"product_price":     orNA(product.Price),
		"product_desc":      orNA(StripMarkup(product.Description)),
		"short_description": orNA(StripMarkup(product.ShortDescription)),

		"category":      category,
		"root_category": rootName,
		"brand":         brand,

		// DETAIL section
		"type":        meta("type"),
		"width":       meta("width"),
		"length":      meta("length"),
		"size":        meta("size"),
		"thickness":   meta("thickness"),
		"weight":      meta("weight"),
		"composition": meta("composition"),
		"backing":     meta("backing"),
		"pattern":     meta("pattern"),
		"repeat":      meta("repeat"),
		"color":       meta("color"),
		"origin":      meta("origin"),

		// PRODUCT USAGE section
		"application": meta("application"),
		"environment": meta("environment"),
		"project":     metaClean("project"),

		// TECHNICAL DATA section
		"durability":       meta("durability"),
		"piling":           meta("piling"),
		"color_resistance": meta("color_resistance"),
		"color_fastness":   metaClean("color_fastness"),
		"seam_slippage":    meta("seam_slippage"),
		"shrinkage_wet":    meta("shrinkage_wet"),

		// Certifications & compliance
		"flame_retardant":       metaClean("flame_retardant"),
		"structural_compliance": meta("structural_compliance"),
		"thermal_resistance":    meta("thermal_resistance"),
		"weather_resistance":    meta("weather_resistance"),
		"antibacterial":         meta("antibacterial"),
		"other_certifications":  meta("other_certifications"),

		// MAINTENANCE & CARE and KEY FACTS sections
		"maintenance_care":       metaClean("maintenance_&_care"),
		"warranty":               meta("warranty"),
		"minimum_order_quantity": meta("minimum_order_quantity"),
		"lead_time":              meta("lead_time"),
		"price_tier":             meta("price_tier"),
		"note":                   meta("note"),

		"permalink":    product.Permalink,
		"date_created": orNA(product.DateCreated),
	}

	// Image failures never fail the render; the placeholder stays empty.
	data["image"] = (*InlineImage)(nil)
	if url := product.PrimaryImageURL(); url != "" {
		if img, err := r.Images.Fetch(ctx, url); err == nil {
			data["image"] = img
		} else {
			log.Printf("⚠️ Product %d image skipped: %v", product.ID, err)
		}
	}

	return data
}

func (r *Renderer) convertToPDF(ctx context.Context, htmlPath string) (string, error) {
	cmd := exec.CommandContext(ctx, r.SofficePath,
		"--headless",
		"--convert-to", "pdf",
		"--outdir", r.OutputDir,
		htmlPath,
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", &usecase.TechnicalError{
				Code:    "CONVERTER_NOT_FOUND",
				Message: "LibreOffice is not installed (macOS: brew install --cask libreoffice | Linux: apt-get install libreoffice)",
			}
		}
		return "", &usecase.TechnicalError{
			Code:    "PDF_CONVERT_FAILED",
			Message: fmt.Sprintf("document conversion failed: %v: %s", err, string(output)),
		}
	}

	pdfPath := strings.TrimSuffix(htmlPath, filepath.Ext(htmlPath)) + ".pdf"
	if _, err := os.Stat(pdfPath); err != nil {
		return "", &usecase.TechnicalError{
			Code:    "PDF_CONVERT_FAILED",
			Message: fmt.Sprintf("converter reported success but %s is missing", pdfPath),
		}
	}

	return pdfPath, nil
}

func metaOrNA(product *entity.Product, key string, cleanHTML bool) string {
	value := product.MetaValue(key)
	if value == "" {
		return "N/A"
	}
	if cleanHTML {
		value = StripMarkup(value)
	}
	return value
}

func orNA(value string) string {
	if strings.TrimSpace(value) == "" {
		return "N/A"
	}
	return value
}

func defaultSofficePath() string {
	switch runtime.GOOS {
	case "darwin":
		return "/Applications/LibreOffice.app/Contents/MacOS/soffice"
	case "windows":
		return "soffice"
	default:
		return "libreoffice"
	}
}
