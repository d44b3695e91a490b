package entity

import (
	"time"
)

// WishlistItem is one stored wishlist record. ProductName, ProductPrice and
// ProductImage are denormalized from the payload for quick display; the full
// canonical product is kept in ProductPayload. Records written before the
// full payload was stored have a nil ProductPayload.
type WishlistItem struct {
	ID             string            `json:"id" firestore:"id"`
	UserID         string            `json:"user_id" firestore:"userId"`
	ProductCode    string            `json:"product_code" firestore:"productCode"`
	ProductName    string            `json:"product_name" firestore:"productName"`
	ProductPrice   string            `json:"product_price" firestore:"productPrice"`
	ProductImage   string            `json:"product_image" firestore:"productImage"`
	ProductPayload *CanonicalProduct `json:"product_payload,omitempty" firestore:"productPayload,omitempty"`
	CreatedAt      time.Time         `json:"created_at" firestore:"createdAt"`
}

// Product returns the canonical product for this record, reconstructing a
// minimal one from the denormalized fields when no payload was stored.
func (w *WishlistItem) Product() *CanonicalProduct {
	if w.ProductPayload != nil {
		return w.ProductPayload
	}
	return &CanonicalProduct{
		Code:   w.ProductCode,
		Name:   w.ProductName,
		Price:  ProductPrice{FormattedValue: w.ProductPrice},
		Images: []ProductImage{{URL: w.ProductImage}},
	}
}
