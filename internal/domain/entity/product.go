package entity

// ProductPrice holds the display price of a product. Both fields may be
// empty when the upstream payload carries no resolvable price.
type ProductPrice struct {
	FormattedValue string `json:"formattedValue" firestore:"formattedValue"`
	CurrencyIso    string `json:"currencyIso" firestore:"currencyIso"`
}

type ProductImage struct {
	URL string `json:"url" firestore:"url"`
}

// CanonicalProduct is the normalized product shape shared by quiz results
// and the wishlist. Code is always non-empty and Images always has at
// least one entry, even if that entry's URL is empty.
type CanonicalProduct struct {
	Code   string                 `json:"code" firestore:"code"`
	Name   string                 `json:"name" firestore:"name"`
	Price  ProductPrice           `json:"price" firestore:"price"`
	Images []ProductImage         `json:"images" firestore:"images"`
	Raw    map[string]interface{} `json:"raw,omitempty" firestore:"raw,omitempty"`
}
