package service

import (
	"fmt"
	"strconv"

	"dressly/internal/domain/entity"
	"dressly/pkg/logger"
)

// placeholderImagePattern builds a product-page image URL for entries that
// arrive as a bare article code with no payload of their own.
const placeholderImagePattern = "https://image.hm.com/assets/hm/productpage/%s.jpg"

// NormalizeResult is the outcome of normalizing one catalog response:
// the canonical products in source order plus a count of entries that were
// dropped (missing code, or a failure isolated to that entry).
type NormalizeResult struct {
	Products []entity.CanonicalProduct
	Skipped  int
}

// entryResult is the per-entry outcome. Exactly one of Product/SkipReason
// is meaningful: a skipped entry never contributes a partial product.
type entryResult struct {
	Product    *entity.CanonicalProduct
	SkipReason string
}

func ok(p entity.CanonicalProduct) entryResult { return entryResult{Product: &p} }
func skip(reason string) entryResult           { return entryResult{SkipReason: reason} }

// NormalizeCatalogResponse maps one raw product-list response from the H&M
// API into canonical products. The upstream shape is not stable, so every
// field access checks and branches; malformed entries are skipped and
// counted, never abort the batch, and the function never returns an error.
func NormalizeCatalogResponse(raw map[string]interface{}) NormalizeResult {
	rawList := extractRawList(raw)

	result := NormalizeResult{Products: []entity.CanonicalProduct{}}
	for _, item := range rawList {
		res := normalizeEntry(item)
		if res.Product == nil {
			result.Skipped++
			logger.Debug("Skipping catalog entry: %s", res.SkipReason)
			continue
		}
		result.Products = append(result.Products, *res.Product)
	}

	return result
}

// extractRawList locates the entry list inside the response. The primary
// shape nests it under plpList.productList; productList and results at the
// root are fallbacks. Once a plpList key exists, the root-level fallbacks
// are not consulted even if plpList carries no productList — this mirrors
// the upstream shape assumption and must not be "fixed" into a merged chain.
func extractRawList(raw map[string]interface{}) []interface{} {
	if plpRaw, found := raw["plpList"]; found {
		if plp, isMap := plpRaw.(map[string]interface{}); isMap {
			if list, isList := plp["productList"].([]interface{}); isList {
				return list
			}
		}
		return nil
	}

	if list, isList := raw["productList"].([]interface{}); isList {
		return list
	}

	if list, isList := raw["results"].([]interface{}); isList {
		return list
	}

	return nil
}

// normalizeEntry converts one raw entry. A deferred recover isolates any
// panic to the entry at hand so one malformed element cannot take down the
// rest of the batch.
func normalizeEntry(item interface{}) (res entryResult) {
	defer func() {
		if r := recover(); r != nil {
			res = skip(fmt.Sprintf("entry panicked: %v", r))
		}
	}()

	// Some responses list bare article codes instead of objects.
	if code, isString := item.(string); isString {
		return ok(entity.CanonicalProduct{
			Code: code,
			Name: "Product " + code,
			Price: entity.ProductPrice{
				FormattedValue: "See H&M",
				CurrencyIso:    "USD",
			},
			Images: []entity.ProductImage{
				{URL: fmt.Sprintf(placeholderImagePattern, code)},
			},
		})
	}

	obj, isMap := item.(map[string]interface{})
	if !isMap {
		return skip(fmt.Sprintf("unsupported entry type %T", item))
	}

	code := firstNonEmptyString(obj, "articleCode", "productCode", "code", "id")
	if code == "" {
		return skip("entry has no product code")
	}

	name := firstNonEmptyString(obj, "productName", "name", "articleName")

	return ok(entity.CanonicalProduct{
		Code:   code,
		Name:   name,
		Price:  resolvePrice(obj),
		Images: resolveImages(obj),
		Raw:    obj,
	})
}

// resolvePrice tries the known price layouts in order: a prices array,
// a price object, an articlePrice object, then scalar price fields.
func resolvePrice(obj map[string]interface{}) entity.ProductPrice {
	if prices, isList := obj["prices"].([]interface{}); isList && len(prices) > 0 {
		if first, isMap := prices[0].(map[string]interface{}); isMap {
			return entity.ProductPrice{
				FormattedValue: stringField(first, "formattedPrice"),
				CurrencyIso:    "USD",
			}
		}
		return entity.ProductPrice{CurrencyIso: "USD"}
	}

	if price, isMap := obj["price"].(map[string]interface{}); isMap {
		formatted := stringField(price, "formattedValue")
		if formatted == "" {
			formatted = stringField(price, "formatted")
		}
		currency := stringField(price, "currency")
		if currency == "" {
			currency = stringField(price, "currencyIso")
		}
		return entity.ProductPrice{FormattedValue: formatted, CurrencyIso: currency}
	}

	if articlePrice, isMap := obj["articlePrice"].(map[string]interface{}); isMap {
		return entity.ProductPrice{
			FormattedValue: stringField(articlePrice, "formatted"),
			CurrencyIso:    stringField(articlePrice, "currency"),
		}
	}

	formatted := coerceString(obj["price"])
	if formatted == "" {
		formatted = stringField(obj, "formattedPrice")
	}
	return entity.ProductPrice{FormattedValue: formatted}
}

// resolveImages collects image URLs from the known layouts, de-duplicated
// by URL. The productImage field and the images array combine; the scalar
// and plpImage fallbacks are only used when both yielded nothing, and the
// result always has at least one entry.
func resolveImages(obj map[string]interface{}) []entity.ProductImage {
	var images []entity.ProductImage

	if url := stringField(obj, "productImage"); url != "" {
		images = append(images, entity.ProductImage{URL: url})
	}

	if list, isList := obj["images"].([]interface{}); isList {
		for _, imgRaw := range list {
			img, isMap := imgRaw.(map[string]interface{})
			if !isMap {
				continue
			}
			url := firstNonEmptyString(img, "url", "imageUrl", "src")
			if url == "" || containsURL(images, url) {
				continue
			}
			images = append(images, entity.ProductImage{URL: url})
		}
	}

	if len(images) == 0 {
		if url := coerceString(obj["image"]); url != "" {
			images = append(images, entity.ProductImage{URL: url})
		} else if url := coerceString(obj["mainImage"]); url != "" {
			images = append(images, entity.ProductImage{URL: url})
		} else if plpImage, isMap := obj["plpImage"].(map[string]interface{}); isMap {
			if url := firstNonEmptyString(plpImage, "url", "src"); url != "" {
				images = append(images, entity.ProductImage{URL: url})
			}
		}
	}

	if len(images) == 0 {
		images = append(images, entity.ProductImage{URL: ""})
	}

	return images
}

func containsURL(images []entity.ProductImage, url string) bool {
	for _, img := range images {
		if img.URL == url {
			return true
		}
	}
	return false
}

// firstNonEmptyString returns the first of the named fields that coerces
// to a non-empty string. Order matters: first match wins.
func firstNonEmptyString(obj map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if value := coerceString(obj[key]); value != "" {
			return value
		}
	}
	return ""
}

func stringField(obj map[string]interface{}, key string) string {
	return coerceString(obj[key])
}

// coerceString narrows a JSON value to a string. Numeric codes appear in
// some responses, so numbers are rendered rather than rejected; integral
// floats lose the trailing ".0" a naive format would keep.
func coerceString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		if v {
			return "true"
		}
		return ""
	}
	return ""
}
