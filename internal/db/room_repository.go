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

const roomsSubcollection = "rooms"

// firestoreRoomRepository implements the RoomRepository interface using
// Firestore. Rooms are stored in the `rooms` subcollection of their
// household document.
type firestoreRoomRepository struct {
	client *firestore.Client
}

// NewFirestoreRoomRepository creates a new instance of firestoreRoomRepository.
func NewFirestoreRoomRepository(client *firestore.Client) RoomRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for RoomRepository.")
	}
	return &firestoreRoomRepository{client: client}
}

func (r *firestoreRoomRepository) roomsRef(householdID string) *firestore.CollectionRef {
	return r.client.Collection(householdsCollection).Doc(householdID).Collection(roomsSubcollection)
}

// Create adds a new room document with an auto-generated ID and sets
// room.ID before returning.
func (r *firestoreRoomRepository) Create(ctx context.Context, householdID string, room *models.Room) (string, error) {
	if householdID == "" {
		return "", errors.New("householdID cannot be empty for Create operation")
	}
	docRef := r.roomsRef(householdID).NewDoc()
	room.ID = docRef.ID

	if _, err := docRef.Create(ctx, room); err != nil {
		return "", fmt.Errorf("failed to create room in household '%s': %w", householdID, err)
	}
	return docRef.ID, nil
}

// GetByID retrieves a room document by its ID within the given household.
func (r *firestoreRoomRepository) GetByID(ctx context.Context, householdID, roomID string) (*models.Room, error) {
	if householdID == "" || roomID == "" {
		return nil, errors.New("householdID and roomID cannot be empty for GetByID operation")
	}
	docSnap, err := r.roomsRef(householdID).Doc(roomID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("room with ID '%s' not found in household '%s': %w", roomID, householdID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get room with ID '%s': %w", roomID, err)
	}

	var room models.Room
	if err := docSnap.DataTo(&room); err != nil {
		return nil, fmt.Errorf("failed to decode room data for ID '%s': %w", roomID, err)
	}
	room.ID = docSnap.Ref.ID

	return &room, nil
}

// ListByHousehold returns all rooms of the household, unordered.
func (r *firestoreRoomRepository) ListByHousehold(ctx context.Context, householdID string) ([]*models.Room, error) {
	if householdID == "" {
		return nil, errors.New("householdID cannot be empty for ListByHousehold operation")
	}
	iter := r.roomsRef(householdID).Documents(ctx)
	defer iter.Stop()

	rooms := make([]*models.Room, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate rooms for household '%s': %w", householdID, err)
		}

		var room models.Room
		if err := doc.DataTo(&room); err != nil {
			log.Printf("Error decoding room data (ID: %s) in household '%s': %v. Skipping.", doc.Ref.ID, householdID, err)
			continue
		}
		room.ID = doc.Ref.ID
		rooms = append(rooms, &room)
	}

	return rooms, nil
}

// Update applies the given field values to the room document and returns the
// stored state.
func (r *firestoreRoomRepository) Update(ctx context.Context, householdID, roomID string, fields map[string]interface{}) (*models.Room, error) {
	if householdID == "" || roomID == "" {
		return nil, errors.New("householdID and roomID cannot be empty for Update operation")
	}
	updates := make([]firestore.Update, 0, len(fields))
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}

	docRef := r.roomsRef(householdID).Doc(roomID)
	if _, err := docRef.Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("room with ID '%s' not found in household '%s': %w", roomID, householdID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update room with ID '%s': %w", roomID, err)
	}

	return r.GetByID(ctx, householdID, roomID)
}

// DeleteWithItems removes the room document and every item of the household
// located in it within one Firestore transaction, so the cascade is never
// partially visible. Returns the number of items removed.
func (r *firestoreRoomRepository) DeleteWithItems(ctx context.Context, householdID, roomID string) (int, error) {
	if householdID == "" || roomID == "" {
		return 0, errors.New("householdID and roomID cannot be empty for DeleteWithItems operation")
	}

	roomRef := r.roomsRef(householdID).Doc(roomID)
	itemsQuery := r.client.Collection(itemsCollection).
		Where("householdId", "==", householdID).
		Where("location.roomId", "==", roomID)

	deleted := 0
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		deleted = 0

		// Reads first: transaction rules require all reads before writes.
		if _, err := tx.Get(roomRef); err != nil {
			return err
		}
		itemDocs, err := tx.Documents(itemsQuery).GetAll()
		if err != nil {
			return err
		}

		for _, doc := range itemDocs {
			if err := tx.Delete(doc.Ref); err != nil {
				return err
			}
			deleted++
		}
		return tx.Delete(roomRef)
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return 0, fmt.Errorf("room with ID '%s' not found in household '%s': %w", roomID, householdID, ErrNotFound)
		}
		return 0, fmt.Errorf("failed to delete room '%s' with its items: %w", roomID, err)
	}

	return deleted, nil
}
