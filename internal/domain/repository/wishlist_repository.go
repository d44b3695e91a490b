package repository

import (
	"context"

	"dressly/internal/domain/entity"
)

type WishlistRepository interface {
	// Add stores a wishlist record. Returns a CONFLICT AppError if the
	// user already has a record for the same product code.
	Add(ctx context.Context, item *entity.WishlistItem) error

	// Exists reports whether the user already wishlisted the product.
	Exists(ctx context.Context, userID, productCode string) (bool, error)

	// ListByUser returns all wishlist records for the user.
	ListByUser(ctx context.Context, userID string) ([]entity.WishlistItem, error)

	// Remove deletes the record; NOT_FOUND AppError if no record matched.
	Remove(ctx context.Context, userID, productCode string) error
}
