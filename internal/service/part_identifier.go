package service

import (
	"context"
	"errors"
	"fmt"

	"fleet-parts-backend/internal/database/models"
	apperrors "fleet-parts-backend/internal/errors"
	"fleet-parts-backend/internal/logger"
	"fleet-parts-backend/internal/matching"
	"fleet-parts-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// searchResultLimit caps part identifier search responses
const searchResultLimit = 50

// PartIdentifierService provides part identifier business logic
type PartIdentifierService struct {
	identifierRepo repository.PartIdentifierRepositoryInterface
	itemRepo       repository.InventoryItemRepositoryInterface
	validator      *validator.Validate
	log            *logger.Logger
}

// Ensure PartIdentifierService implements PartIdentifierServiceInterface
var _ PartIdentifierServiceInterface = (*PartIdentifierService)(nil)

// NewPartIdentifierService creates a new PartIdentifierService
func NewPartIdentifierService(
	identifierRepo repository.PartIdentifierRepositoryInterface,
	itemRepo repository.InventoryItemRepositoryInterface,
	validator *validator.Validate,
) *PartIdentifierService {
	return &PartIdentifierService{
		identifierRepo: identifierRepo,
		itemRepo:       itemRepo,
		validator:      validator,
		log:            logger.New().WithField("service", "part_identifier"),
	}
}

// CreatePartIdentifierRequest represents the payload for cataloging a part number
type CreatePartIdentifierRequest struct {
	IdentifierType  models.IdentifierType `json:"identifier_type" validate:"required"`
	RawValue        string                `json:"raw_value" validate:"required,max=100"`
	Manufacturer    string                `json:"manufacturer" validate:"max=100"`
	Notes           string                `json:"notes"`
	InventoryItemID *uuid.UUID            `json:"inventory_item_id,omitempty"`
}

// PartIdentifierResponse represents a part identifier in API responses
type PartIdentifierResponse struct {
	ID              uuid.UUID             `json:"id"`
	IdentifierType  models.IdentifierType `json:"identifier_type"`
	RawValue        string                `json:"raw_value"`
	NormValue       string                `json:"norm_value"`
	Manufacturer    string                `json:"manufacturer,omitempty"`
	Notes           string                `json:"notes,omitempty"`
	InventoryItemID *uuid.UUID            `json:"inventory_item_id,omitempty"`
}

// Create validates and stores a new part identifier
func (s *PartIdentifierService) Create(organizationID uuid.UUID, req *CreatePartIdentifierRequest) (*PartIdentifierResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if !req.IdentifierType.IsValid() {
		return nil, apperrors.NewValidationError("identifier_type", "unknown identifier type")
	}
	normValue := matching.Normalize(req.RawValue)
	if normValue == "" {
		return nil, apperrors.NewValidationError("raw_value", "identifier value is required")
	}

	if req.InventoryItemID != nil {
		item, err := s.itemRepo.GetByID(*req.InventoryItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrInventoryItemNotFound
			}
			return nil, fmt.Errorf("failed to get inventory item: %w", err)
		}
		if item.OrganizationID != organizationID {
			return nil, apperrors.ErrInventoryItemAccessDenied
		}
	}

	identifier := &models.PartIdentifier{
		OrganizationID:  organizationID,
		InventoryItemID: req.InventoryItemID,
		IdentifierType:  req.IdentifierType,
		RawValue:        req.RawValue,
		NormValue:       normValue,
		Manufacturer:    req.Manufacturer,
		Notes:           req.Notes,
	}
	if err := s.identifierRepo.Create(identifier); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrPartIdentifierExists
		}
		return nil, fmt.Errorf("failed to create part identifier: %w", err)
	}
	res := toIdentifierResponse(identifier)
	return &res, nil
}

// Search returns identifiers whose normalized value starts with the term.
// A blank term returns an empty list without querying; a cancellation of the
// caller's context returns an empty list silently.
func (s *PartIdentifierService) Search(ctx context.Context, organizationID uuid.UUID, term string) ([]PartIdentifierResponse, error) {
	normTerm := matching.Normalize(term)
	if normTerm == "" {
		return []PartIdentifierResponse{}, nil
	}
	if ctx.Err() != nil {
		return []PartIdentifierResponse{}, nil
	}

	identifiers, err := s.identifierRepo.Search(ctx, organizationID, normTerm, searchResultLimit)
	if err != nil {
		if wasCancelled(ctx, err) {
			return []PartIdentifierResponse{}, nil
		}
		s.log.WithField("term", term).Errorf("part identifier search failed: %v", err)
		return nil, fmt.Errorf("failed to search part identifiers: %w", err)
	}

	res := make([]PartIdentifierResponse, 0, len(identifiers))
	for i := range identifiers {
		res = append(res, toIdentifierResponse(&identifiers[i]))
	}
	return res, nil
}

func toIdentifierResponse(identifier *models.PartIdentifier) PartIdentifierResponse {
	return PartIdentifierResponse{
		ID:              identifier.ID,
		IdentifierType:  identifier.IdentifierType,
		RawValue:        identifier.RawValue,
		NormValue:       identifier.NormValue,
		Manufacturer:    identifier.Manufacturer,
		Notes:           identifier.Notes,
		InventoryItemID: identifier.InventoryItemID,
	}
}
