package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/bigtree-group/marketing-webhooks/internal/infra/integration/woocommerce"
)

// Manual smoke test for the store integration: fetches one product and
// prints what the specsheet renderer would see. Usage:
//
//	go run ./sample/test-woocommerce-integration 12345
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found, using system environment")
	}

	if os.Getenv("WC_STORE_URL") == "" || os.Getenv("WC_CONSUMER_KEY") == "" {
		log.Fatal("❌ WC_STORE_URL and WC_CONSUMER_KEY/WC_CONSUMER_SECRET must be set")
	}

	productID := 0
	if len(os.Args) > 1 {
		productID, _ = strconv.Atoi(os.Args[1])
	}
	if productID <= 0 {
		log.Fatal("❌ Pass a product ID: go run ./sample/test-woocommerce-integration 12345")
	}

	client := woocommerce.NewClient(
		os.Getenv("WC_STORE_URL"),
		os.Getenv("WC_CONSUMER_KEY"),
		os.Getenv("WC_CONSUMER_SECRET"),
	)

	ctx := context.Background()

	fmt.Printf("🔄 Fetching product %d...\n\n", productID)
	product, err := client.GetProduct(ctx, productID)
	if err != nil {
		log.Fatalf("Product lookup failed: %v", err)
	}

	fmt.Printf("   Name:       %s\n", product.Name)
	fmt.Printf("   SKU:        %s\n", product.SKU)
	fmt.Printf("   Type:       %s\n", product.Type)
	fmt.Printf("   Price:      %s\n", product.Price)
	fmt.Printf("   Image:      %s\n", product.PrimaryImageURL())
	fmt.Printf("   Categories:")
	for _, cat := range product.Categories {
		fmt.Printf(" %s(#%d→%d)", cat.Name, cat.ID, cat.Parent)
	}
	fmt.Println()

	root, err := client.RootCategory(ctx, product)
	if err != nil {
		log.Fatalf("Root category walk failed: %v", err)
	}
	if root != nil {
		fmt.Printf("   Root:       %s\n", root.Name)
	} else {
		fmt.Println("   Root:       (none, generic template)")
	}

	fmt.Printf("\n   Meta attributes (%d):\n", len(product.Meta))
	for _, m := range product.Meta {
		fmt.Printf("     %-24s %s\n", m.Key, m.Value)
	}

	fmt.Println("\n✅ Product resolved")
}
