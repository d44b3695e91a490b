package repository

import (
	"context"
	"fmt"

	"dressly/internal/domain/entity"
	"dressly/internal/domain/repository"
	"dressly/pkg/errors"
	"dressly/pkg/logger"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type firestoreWishlistRepository struct {
	client *firestore.Client
}

func NewFirestoreWishlistRepository(client *firestore.Client) repository.WishlistRepository {
	return &firestoreWishlistRepository{client: client}
}

// Document ids are userID_productCode, which makes the (user, code) pair
// the storage key. Uniqueness still relies on the Exists check the usecase
// runs before Add; two concurrent adds for the same pair can both pass that
// check. Known limitation, not guarded by a transaction.
func wishlistDocID(userID, productCode string) string {
	return fmt.Sprintf("%s_%s", userID, productCode)
}

func (r *firestoreWishlistRepository) Add(ctx context.Context, item *entity.WishlistItem) error {
	item.ID = wishlistDocID(item.UserID, item.ProductCode)

	_, err := r.client.Collection("wishlists").Doc(item.ID).Set(ctx, item)
	if err != nil {
		return errors.Internal("Failed to add to wishlist", err)
	}

	logger.Info("Added product %s to wishlist for user %s", item.ProductCode, item.UserID)
	return nil
}

func (r *firestoreWishlistRepository) Exists(ctx context.Context, userID, productCode string) (bool, error) {
	doc, err := r.client.Collection("wishlists").Doc(wishlistDocID(userID, productCode)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, errors.Internal("Failed to check wishlist", err)
	}

	return doc.Exists(), nil
}

func (r *firestoreWishlistRepository) ListByUser(ctx context.Context, userID string) ([]entity.WishlistItem, error) {
	docs, err := r.client.Collection("wishlists").
		Where("userId", "==", userID).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to get wishlist", err)
	}

	items := make([]entity.WishlistItem, 0, len(docs))
	for _, doc := range docs {
		var item entity.WishlistItem
		if err := doc.DataTo(&item); err != nil {
			logger.Warn("Error parsing wishlist item %s: %v", doc.Ref.ID, err)
			continue
		}
		items = append(items, item)
	}

	return items, nil
}

func (r *firestoreWishlistRepository) Remove(ctx context.Context, userID, productCode string) error {
	docRef := r.client.Collection("wishlists").Doc(wishlistDocID(userID, productCode))

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Item", err)
		}
		return errors.Internal("Failed to check wishlist", err)
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return errors.Internal("Failed to remove from wishlist", err)
	}

	logger.Info("Removed product %s from wishlist for user %s", productCode, userID)
	return nil
}
