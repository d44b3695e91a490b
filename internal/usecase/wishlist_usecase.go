package usecase

import (
	"context"
	"time"

	"dressly/internal/domain/entity"
	"dressly/internal/domain/repository"
)

type WishlistUseCase struct {
	wishlistRepo repository.WishlistRepository
}

func NewWishlistUseCase(wishlistRepo repository.WishlistRepository) *WishlistUseCase {
	return &WishlistUseCase{wishlistRepo: wishlistRepo}
}

// AddWishlistInput is the loosely-shaped product the client sends. Price
// and image keys vary across the catalog responses the frontend has seen,
// so both are accepted as mappings and reconciled here.
type AddWishlistInput struct {
	Code   string
	Name   string
	Price  map[string]interface{}
	Images []map[string]interface{}
}

// Add stores the product in the user's wishlist. Adding a product that is
// already there is a no-op, reported through the returned message rather
// than an error.
func (u *WishlistUseCase) Add(ctx context.Context, userID string, input AddWishlistInput) (string, error) {
	exists, err := u.wishlistRepo.Exists(ctx, userID, input.Code)
	if err != nil {
		return "", err
	}
	if exists {
		return "Item already in wishlist", nil
	}

	product := input.toCanonicalProduct()

	item := &entity.WishlistItem{
		UserID:         userID,
		ProductCode:    product.Code,
		ProductName:    product.Name,
		ProductPrice:   product.Price.FormattedValue,
		ProductImage:   product.Images[0].URL,
		ProductPayload: product,
		CreatedAt:      time.Now(),
	}

	if err := u.wishlistRepo.Add(ctx, item); err != nil {
		return "", err
	}

	return "Item added to wishlist", nil
}

func (u *WishlistUseCase) List(ctx context.Context, userID string) ([]entity.CanonicalProduct, error) {
	items, err := u.wishlistRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	products := make([]entity.CanonicalProduct, 0, len(items))
	for _, item := range items {
		products = append(products, *item.Product())
	}

	return products, nil
}

func (u *WishlistUseCase) Remove(ctx context.Context, userID, productCode string) error {
	return u.wishlistRepo.Remove(ctx, userID, productCode)
}

// toCanonicalProduct reconciles the loose input into the canonical shape.
// Price keys are tried as formattedPrice, formattedValue, formatted;
// image keys as url, imageUrl, src.
func (in AddWishlistInput) toCanonicalProduct() *entity.CanonicalProduct {
	price := entity.ProductPrice{
		FormattedValue: firstLooseString(in.Price, "formattedPrice", "formattedValue", "formatted"),
		CurrencyIso:    firstLooseString(in.Price, "currencyIso", "currency"),
	}

	images := make([]entity.ProductImage, 0, len(in.Images))
	for _, img := range in.Images {
		if url := firstLooseString(img, "url", "imageUrl", "src"); url != "" {
			images = append(images, entity.ProductImage{URL: url})
		}
	}
	if len(images) == 0 {
		images = append(images, entity.ProductImage{URL: ""})
	}

	return &entity.CanonicalProduct{
		Code:   in.Code,
		Name:   in.Name,
		Price:  price,
		Images: images,
	}
}

func firstLooseString(m map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if value, ok := m[key].(string); ok && value != "" {
			return value
		}
	}
	return ""
}
