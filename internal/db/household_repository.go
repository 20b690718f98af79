package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"homestore-backend-go/internal/models"
)

const householdsCollection = "households"

// firestoreHouseholdRepository implements the HouseholdRepository interface
// using Firestore.
type firestoreHouseholdRepository struct {
	client *firestore.Client
}

// NewFirestoreHouseholdRepository creates a new instance of firestoreHouseholdRepository.
func NewFirestoreHouseholdRepository(client *firestore.Client) HouseholdRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for HouseholdRepository.")
	}
	return &firestoreHouseholdRepository{client: client}
}

// CreateWithOwner creates the household document and stamps the owner's
// profile with the new household ID in a single Firestore transaction.
// Neither write is observable without the other.
func (r *firestoreHouseholdRepository) CreateWithOwner(ctx context.Context, household *models.Household) (string, error) {
	if household.OwnerUserID == "" {
		return "", errors.New("household owner ID cannot be empty for CreateWithOwner operation")
	}

	householdRef := r.client.Collection(householdsCollection).NewDoc()
	ownerRef := r.client.Collection(usersCollection).Doc(household.OwnerUserID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if err := tx.Create(householdRef, household); err != nil {
			return err
		}
		return tx.Update(ownerRef, []firestore.Update{
			{Path: "householdId", Value: householdRef.ID},
		})
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			// The owner profile document was missing.
			return "", fmt.Errorf("owner profile '%s' not found: %w", household.OwnerUserID, ErrNotFound)
		}
		return "", fmt.Errorf("failed to create household for owner '%s': %w", household.OwnerUserID, err)
	}

	household.ID = householdRef.ID
	return householdRef.ID, nil
}

// GetByID retrieves a household document from Firestore by its ID.
func (r *firestoreHouseholdRepository) GetByID(ctx context.Context, householdID string) (*models.Household, error) {
	if householdID == "" {
		return nil, errors.New("householdID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(householdsCollection).Doc(householdID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("household with ID '%s' not found: %w", householdID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get household with ID '%s': %w", householdID, err)
	}

	var household models.Household
	if err := docSnap.DataTo(&household); err != nil {
		return nil, fmt.Errorf("failed to decode household data for ID '%s': %w", householdID, err)
	}
	household.ID = docSnap.Ref.ID

	return &household, nil
}
