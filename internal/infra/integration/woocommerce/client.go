package woocommerce

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/bigtree-group/marketing-webhooks/internal/entity"
	"github.com/bigtree-group/marketing-webhooks/internal/usecase"
)

// Client talks to the store's REST API (wc/v3) with key/secret basic auth.
// Any non-200 or transport failure folds into "product not found" — the
// API gives callers no way to tell the two apart.
type Client struct {
	baseURL        string
	consumerKey    string
	consumerSecret string
	http           *http.Client
}

func NewClient(storeURL, consumerKey, consumerSecret string) *Client {
	return &Client{
		baseURL:        strings.TrimRight(storeURL, "/") + "/wp-json/wc/v3",
		consumerKey:    consumerKey,
		consumerSecret: consumerSecret,
		http:           &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) GetProduct(ctx context.Context, id int) (*entity.Product, error) {
	var dto productDTO
	if err := c.getJSON(ctx, fmt.Sprintf("/products/%d", id), &dto); err != nil {
		log.Printf("⚠️ WooCommerce: product %d lookup failed: %v", id, err)
		return nil, usecase.ErrProductNotFound
	}

	product := dto.toEntity()
	if product.IsVariable() {
		return c.resolveDefaultVariation(ctx, product)
	}
	return product, nil
}

// resolveDefaultVariation picks the first listed variation as the
// purchasable default for a parent ("variable") product. Variations carry
// sparse data, so missing fields inherit from the parent.
func (c *Client) resolveDefaultVariation(ctx context.Context, parent *entity.Product) (*entity.Product, error) {
	var dto productDTO
	path := fmt.Sprintf("/products/%d/variations/%d", parent.ID, parent.Variations[0])
	if err := c.getJSON(ctx, path, &dto); err != nil {
		log.Printf("⚠️ WooCommerce: variation %d of product %d lookup failed: %v", parent.Variations[0], parent.ID, err)
		return nil, usecase.ErrProductNotFound
	}

	variation := dto.toEntity()
	if variation.Name == "" {
		variation.Name = parent.Name
	}
	if variation.SKU == "" {
		variation.SKU = parent.SKU
	}
	if len(variation.Categories) == 0 {
		variation.Categories = parent.Categories
	}
	if len(variation.Images) == 0 {
		variation.Images = parent.Images
	}
	if len(variation.Meta) == 0 {
		variation.Meta = parent.Meta
	}
	if variation.Description == "" {
		variation.Description = parent.Description
	}
	return variation, nil
}

// LookupAll fans out one goroutine per cart item and waits for all of
// them. One missing product fails the whole batch; no partial result.
func (c *Client) LookupAll(ctx context.Context, ids []int) ([]*entity.Product, error) {
	products := make([]*entity.Product, len(ids))
	errs := make(chan error, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i, id int) {
			defer wg.Done()
			product, err := c.GetProduct(ctx, id)
			if err != nil {
				errs <- err
				return
			}
			products[i] = product
		}(i, id)
	}
	wg.Wait()
	close(errs)

	if err := <-errs; err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) GetCategory(ctx context.Context, id int) (*entity.Category, error) {
	var dto categoryDTO
	if err := c.getJSON(ctx, fmt.Sprintf("/products/categories/%d", id), &dto); err != nil {
		return nil, fmt.Errorf("category %d lookup failed: %w", id, err)
	}
	cat := dto.toEntity()
	return &cat, nil
}

// RootCategory walks the parent chain of the product's first category
// until it reaches a node with parent = 0. Embedded category entries are
// consulted before falling back to the category API.
func (c *Client) RootCategory(ctx context.Context, product *entity.Product) (*entity.Category, error) {
	if len(product.Categories) == 0 {
		return nil, nil
	}

	current := product.Categories[0]
	for depth := 0; current.Parent != 0 && depth < 10; depth++ {
		embedded := false
		for _, cat := range product.Categories {
			if cat.ID == current.Parent {
				current = cat
				embedded = true
				break
			}
		}
		if embedded {
			continue
		}

		parent, err := c.GetCategory(ctx, current.Parent)
		if err != nil {
			return nil, err
		}
		current = *parent
	}

	return &current, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.consumerKey, c.consumerSecret)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("store request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("store rejected request (status %d): %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
