package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"homestore-backend-go/internal/models"
)

const itemsCollection = "items"

// firestoreItemRepository implements the ItemRepository interface using Firestore.
type firestoreItemRepository struct {
	client *firestore.Client
}

// NewFirestoreItemRepository creates a new instance of firestoreItemRepository.
func NewFirestoreItemRepository(client *firestore.Client) ItemRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for ItemRepository.")
	}
	return &firestoreItemRepository{client: client}
}

// Create adds a new item document with an auto-generated ID. The document is
// read back after the write so the returned item carries the committed
// server timestamp in LastUpdated.
func (r *firestoreItemRepository) Create(ctx context.Context, item *models.Item) (*models.Item, error) {
	docRef := r.client.Collection(itemsCollection).NewDoc()
	item.ID = docRef.ID

	if _, err := docRef.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}
	return r.GetByID(ctx, docRef.ID)
}

// GetByID retrieves an item document from Firestore by its ID.
func (r *firestoreItemRepository) GetByID(ctx context.Context, itemID string) (*models.Item, error) {
	if itemID == "" {
		return nil, errors.New("itemID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(itemsCollection).Doc(itemID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("item with ID '%s' not found: %w", itemID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get item with ID '%s': %w", itemID, err)
	}

	var item models.Item
	if err := docSnap.DataTo(&item); err != nil {
		return nil, fmt.Errorf("failed to decode item data for ID '%s': %w", itemID, err)
	}
	item.ID = docSnap.Ref.ID

	return &item, nil
}

// ListByHousehold returns every item whose householdId matches, unordered.
// Private items are not filtered here; the store's access rules are the
// authoritative visibility gate for listings.
func (r *firestoreItemRepository) ListByHousehold(ctx context.Context, householdID string) ([]*models.Item, error) {
	if householdID == "" {
		return nil, errors.New("householdID cannot be empty for ListByHousehold operation")
	}
	iter := r.client.Collection(itemsCollection).Where("householdId", "==", householdID).Documents(ctx)
	defer iter.Stop()

	items := make([]*models.Item, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate items for household '%s': %w", householdID, err)
		}

		var item models.Item
		if err := doc.DataTo(&item); err != nil {
			log.Printf("Error decoding item data (ID: %s) for household '%s': %v. Skipping.", doc.Ref.ID, householdID, err)
			continue
		}
		item.ID = doc.Ref.ID
		items = append(items, &item)
	}

	return items, nil
}

// UpdateFields applies the given field values to the item document and
// refreshes lastUpdated with a server timestamp. The updated document is
// read back and returned.
func (r *firestoreItemRepository) UpdateFields(ctx context.Context, itemID string, fields map[string]interface{}) (*models.Item, error) {
	if itemID == "" {
		return nil, errors.New("itemID cannot be empty for UpdateFields operation")
	}

	updates := make([]firestore.Update, 0, len(fields)+1)
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}
	updates = append(updates, firestore.Update{Path: "lastUpdated", Value: firestore.ServerTimestamp})

	docRef := r.client.Collection(itemsCollection).Doc(itemID)
	if _, err := docRef.Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("item with ID '%s' not found for update: %w", itemID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update item with ID '%s': %w", itemID, err)
	}

	return r.GetByID(ctx, itemID)
}

// Delete removes an item document from Firestore.
func (r *firestoreItemRepository) Delete(ctx context.Context, itemID string) error {
	if itemID == "" {
		return errors.New("itemID cannot be empty for Delete operation")
	}
	_, err := r.client.Collection(itemsCollection).Doc(itemID).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete item with ID '%s': %w", itemID, err)
	}
	return nil
}

// CreateBatch writes all items in one atomic WriteBatch. Either every item
// is committed or none is.
func (r *firestoreItemRepository) CreateBatch(ctx context.Context, items []*models.Item) (int, error) {
	if len(items) == 0 {
		return 0, errors.New("items cannot be empty for CreateBatch operation")
	}

	batch := r.client.Batch()
	for _, item := range items {
		docRef := r.client.Collection(itemsCollection).NewDoc()
		item.ID = docRef.ID
		batch.Create(docRef, item)
	}

	if _, err := batch.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit item batch of %d: %w", len(items), err)
	}
	return len(items), nil
}
