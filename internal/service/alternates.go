package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fleet-parts-backend/internal/database/models"
	apperrors "fleet-parts-backend/internal/errors"
	"fleet-parts-backend/internal/logger"
	"fleet-parts-backend/internal/matching"
	"fleet-parts-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AlternateService provides alternate group business logic: group lifecycle,
// membership and interchangeable-part lookups.
type AlternateService struct {
	groupRepo      repository.AlternateGroupRepositoryInterface
	identifierRepo repository.PartIdentifierRepositoryInterface
	itemRepo       repository.InventoryItemRepositoryInterface
	validator      *validator.Validate
	log            *logger.Logger
}

// Ensure AlternateService implements AlternateServiceInterface
var _ AlternateServiceInterface = (*AlternateService)(nil)

// NewAlternateService creates a new AlternateService
func NewAlternateService(
	groupRepo repository.AlternateGroupRepositoryInterface,
	identifierRepo repository.PartIdentifierRepositoryInterface,
	itemRepo repository.InventoryItemRepositoryInterface,
	validator *validator.Validate,
) *AlternateService {
	return &AlternateService{
		groupRepo:      groupRepo,
		identifierRepo: identifierRepo,
		itemRepo:       itemRepo,
		validator:      validator,
		log:            logger.New().WithField("service", "alternates"),
	}
}

// CreateGroupRequest represents the payload for creating an alternate group
type CreateGroupRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description"`
	Notes       string `json:"notes"`
	EvidenceURL string `json:"evidence_url" validate:"omitempty,url,max=500"`
}

// UpdateGroupRequest represents a partial field patch for an alternate group.
// Nil fields are left unchanged.
type UpdateGroupRequest struct {
	Name        *string             `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string             `json:"description,omitempty"`
	Notes       *string             `json:"notes,omitempty"`
	EvidenceURL *string             `json:"evidence_url,omitempty" validate:"omitempty,url,max=500"`
	Status      *models.GroupStatus `json:"status,omitempty"`
	VerifiedBy  string              `json:"verified_by,omitempty" validate:"max=100"`
}

// AddGroupMemberRequest represents the payload for adding a group member;
// exactly one of PartIdentifierID and InventoryItemID must be set.
type AddGroupMemberRequest struct {
	PartIdentifierID *uuid.UUID `json:"part_identifier_id,omitempty"`
	InventoryItemID  *uuid.UUID `json:"inventory_item_id,omitempty"`
	IsPrimary        bool       `json:"is_primary"`
	Notes            string     `json:"notes"`
}

// GroupMemberResponse is the flattened, denormalized view of a group member
type GroupMemberResponse struct {
	ID             uuid.UUID               `json:"id"`
	IsPrimary      bool                    `json:"is_primary"`
	Notes          string                  `json:"notes,omitempty"`
	PartIdentifier *PartIdentifierResponse `json:"part_identifier,omitempty"`
	InventoryItem  *CompatiblePartResponse `json:"inventory_item,omitempty"`
}

// AlternateGroupResponse represents an alternate group in API responses
type AlternateGroupResponse struct {
	ID          uuid.UUID             `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description,omitempty"`
	Status      models.GroupStatus    `json:"status"`
	Notes       string                `json:"notes,omitempty"`
	EvidenceURL string                `json:"evidence_url,omitempty"`
	VerifiedBy  string                `json:"verified_by,omitempty"`
	VerifiedAt  *time.Time            `json:"verified_at,omitempty"`
	Members     []GroupMemberResponse `json:"members,omitempty"`
}

// AlternateGroupListResponse represents a paginated list of alternate groups
type AlternateGroupListResponse struct {
	Groups   []AlternateGroupResponse `json:"groups"`
	Total    int64                    `json:"total"`
	Page     int                      `json:"page"`
	PageSize int                      `json:"page_size"`
}

// AlternateResult represents one interchangeable part found for a lookup,
// flattened with its group context
type AlternateResult struct {
	GroupID        uuid.UUID               `json:"group_id"`
	GroupName      string                  `json:"group_name"`
	GroupStatus    models.GroupStatus      `json:"group_status"`
	MemberID       uuid.UUID               `json:"member_id"`
	IsPrimary      bool                    `json:"is_primary"`
	Notes          string                  `json:"notes,omitempty"`
	PartIdentifier *PartIdentifierResponse `json:"part_identifier,omitempty"`
	InventoryItem  *CompatiblePartResponse `json:"inventory_item,omitempty"`
}

// CreateGroup creates a new alternate group in the unverified state
func (s *AlternateService) CreateGroup(organizationID uuid.UUID, req *CreateGroupRequest) (*AlternateGroupResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	group := &models.AlternateGroup{
		OrganizationID: organizationID,
		Name:           req.Name,
		Description:    req.Description,
		Status:         models.GroupStatusUnverified,
		Notes:          req.Notes,
		EvidenceURL:    req.EvidenceURL,
	}
	if err := s.groupRepo.Create(group); err != nil {
		return nil, fmt.Errorf("failed to create alternate group: %w", err)
	}
	res := toGroupResponse(group)
	return &res, nil
}

// UpdateGroup applies a partial patch. A status change to verified requires
// a verifier and stamps verified_by/verified_at, whatever the previous
// status; deprecated is terminal.
func (s *AlternateService) UpdateGroup(organizationID, groupID uuid.UUID, req *UpdateGroupRequest) (*AlternateGroupResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	group, err := s.ownedGroup(organizationID, groupID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.EvidenceURL != nil {
		updates["evidence_url"] = *req.EvidenceURL
	}
	if req.Status != nil && *req.Status != group.Status {
		if !req.Status.IsValid() {
			return nil, apperrors.NewValidationError("status", "unknown group status")
		}
		if group.Status == models.GroupStatusDeprecated {
			return nil, apperrors.NewValidationError("status", apperrors.ErrDeprecatedGroupIsTerminal.Error())
		}
		updates["status"] = *req.Status
		if *req.Status == models.GroupStatusVerified {
			if strings.TrimSpace(req.VerifiedBy) == "" {
				return nil, apperrors.NewValidationError("verified_by", "required when verifying a group")
			}
			updates["verified_by"] = req.VerifiedBy
			updates["verified_at"] = time.Now()
		}
	}

	if len(updates) > 0 {
		if err := s.groupRepo.Update(groupID, updates); err != nil {
			return nil, fmt.Errorf("failed to update alternate group: %w", err)
		}
	}
	return s.GetGroupByID(organizationID, groupID)
}

// DeleteGroup removes a group and, by cascade, its members
func (s *AlternateService) DeleteGroup(organizationID, groupID uuid.UUID) error {
	if _, err := s.ownedGroup(organizationID, groupID); err != nil {
		return err
	}
	if err := s.groupRepo.Delete(groupID); err != nil {
		return fmt.Errorf("failed to delete alternate group: %w", err)
	}
	return nil
}

// GetGroupByID returns a group with its members, primary-first. Nonexistent
// and cross-tenant ids are both reported as not found so existence does not
// leak across tenants.
func (s *AlternateService) GetGroupByID(organizationID, groupID uuid.UUID) (*AlternateGroupResponse, error) {
	group, err := s.groupRepo.GetWithMembers(groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAlternateGroupNotFound
		}
		return nil, fmt.Errorf("failed to get alternate group: %w", err)
	}
	if group.OrganizationID != organizationID {
		return nil, apperrors.ErrAlternateGroupNotFound
	}
	res := toGroupResponse(group)
	return &res, nil
}

// ListGroups returns the organization's groups with pagination
func (s *AlternateService) ListGroups(organizationID uuid.UUID, page, pageSize int) (*AlternateGroupListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 50
	}
	offset := (page - 1) * pageSize
	groups, total, err := s.groupRepo.GetByOrganizationID(organizationID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list alternate groups: %w", err)
	}
	res := make([]AlternateGroupResponse, 0, len(groups))
	for i := range groups {
		res = append(res, toGroupResponse(&groups[i]))
	}
	return &AlternateGroupListResponse{
		Groups:   res,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// AddIdentifierToGroup adds a part identifier to a group. A duplicate add is
// a no-op, not an error.
func (s *AlternateService) AddIdentifierToGroup(organizationID, groupID, identifierID uuid.UUID, isPrimary bool, notes string) (*AlternateGroupResponse, error) {
	if _, err := s.ownedGroup(organizationID, groupID); err != nil {
		return nil, err
	}
	identifier, err := s.identifierRepo.GetByID(identifierID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPartIdentifierNotFound
		}
		return nil, fmt.Errorf("failed to get part identifier: %w", err)
	}
	if identifier.OrganizationID != organizationID {
		return nil, apperrors.NewAccessDeniedError("part identifier")
	}

	member := &models.AlternateGroupMember{
		GroupID:          groupID,
		PartIdentifierID: &identifierID,
		IsPrimary:        isPrimary,
		Notes:            notes,
	}
	return s.addMember(organizationID, groupID, member)
}

// AddInventoryItemToGroup adds an inventory item to a group. A duplicate add
// is a no-op, not an error.
func (s *AlternateService) AddInventoryItemToGroup(organizationID, groupID, itemID uuid.UUID, isPrimary bool, notes string) (*AlternateGroupResponse, error) {
	if _, err := s.ownedGroup(organizationID, groupID); err != nil {
		return nil, err
	}
	item, err := s.itemRepo.GetByID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInventoryItemNotFound
		}
		return nil, fmt.Errorf("failed to get inventory item: %w", err)
	}
	if item.OrganizationID != organizationID {
		return nil, apperrors.ErrInventoryItemAccessDenied
	}

	member := &models.AlternateGroupMember{
		GroupID:         groupID,
		InventoryItemID: &itemID,
		IsPrimary:       isPrimary,
		Notes:           notes,
	}
	return s.addMember(organizationID, groupID, member)
}

func (s *AlternateService) addMember(organizationID, groupID uuid.UUID, member *models.AlternateGroupMember) (*AlternateGroupResponse, error) {
	if err := s.groupRepo.AddMember(member); err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("failed to add group member: %w", err)
		}
		// Duplicate membership: keep the existing row, report success.
	}
	return s.GetGroupByID(organizationID, groupID)
}

// RemoveGroupMember removes a member from a group
func (s *AlternateService) RemoveGroupMember(organizationID, groupID, memberID uuid.UUID) error {
	if _, err := s.ownedGroup(organizationID, groupID); err != nil {
		return err
	}
	member, err := s.groupRepo.GetMemberByID(memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrGroupMemberNotFound
		}
		return fmt.Errorf("failed to get group member: %w", err)
	}
	if member.GroupID != groupID {
		return apperrors.ErrGroupMemberNotFound
	}
	if err := s.groupRepo.RemoveMember(memberID); err != nil {
		return fmt.Errorf("failed to remove group member: %w", err)
	}
	return nil
}

// GetAlternatesForPartNumber looks up the interchangeable parts for a part
// number. A blank part number returns an empty list without querying; a
// cancellation of the caller's context returns an empty list silently, since
// a newer keystroke's query superseding this one is not a fault.
func (s *AlternateService) GetAlternatesForPartNumber(ctx context.Context, organizationID uuid.UUID, partNumber string) ([]AlternateResult, error) {
	normValue := matching.Normalize(partNumber)
	if normValue == "" {
		return []AlternateResult{}, nil
	}
	if ctx.Err() != nil {
		return []AlternateResult{}, nil
	}

	identifier, err := s.identifierRepo.GetByNormValue(ctx, organizationID, normValue)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []AlternateResult{}, nil
		}
		if wasCancelled(ctx, err) {
			return []AlternateResult{}, nil
		}
		s.log.WithField("part_number", partNumber).Errorf("alternate lookup failed: %v", err)
		return nil, fmt.Errorf("failed to look up part identifier: %w", err)
	}

	groups, err := s.groupRepo.GetGroupsByIdentifierIDs(ctx, []uuid.UUID{identifier.ID})
	if err != nil {
		if wasCancelled(ctx, err) {
			return []AlternateResult{}, nil
		}
		s.log.WithField("part_number", partNumber).Errorf("alternate lookup failed: %v", err)
		return nil, fmt.Errorf("failed to get alternate groups: %w", err)
	}

	results := make([]AlternateResult, 0)
	for i := range groups {
		for j := range groups[i].Members {
			member := &groups[i].Members[j]
			if member.PartIdentifierID != nil && *member.PartIdentifierID == identifier.ID {
				continue // the queried part itself is not its own alternate
			}
			results = append(results, toAlternateResult(&groups[i], member))
		}
	}
	return results, nil
}

// GetAlternatesForInventoryItem returns the interchangeable parts for an
// inventory item, through both its direct group memberships and those of its
// linked identifiers.
func (s *AlternateService) GetAlternatesForInventoryItem(organizationID, itemID uuid.UUID) ([]AlternateResult, error) {
	ctx := context.Background()

	item, err := s.itemRepo.GetByID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInventoryItemNotFound
		}
		return nil, fmt.Errorf("failed to get inventory item: %w", err)
	}
	if item.OrganizationID != organizationID {
		return nil, apperrors.ErrInventoryItemAccessDenied
	}

	identifiers, err := s.identifierRepo.GetByInventoryItemID(itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to get part identifiers: %w", err)
	}
	identifierIDs := make([]uuid.UUID, 0, len(identifiers))
	linkedIdentifiers := make(map[uuid.UUID]struct{}, len(identifiers))
	for i := range identifiers {
		identifierIDs = append(identifierIDs, identifiers[i].ID)
		linkedIdentifiers[identifiers[i].ID] = struct{}{}
	}

	itemGroups, err := s.groupRepo.GetGroupsByInventoryItemID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to get alternate groups: %w", err)
	}
	identifierGroups, err := s.groupRepo.GetGroupsByIdentifierIDs(ctx, identifierIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get alternate groups: %w", err)
	}

	seenGroups := make(map[uuid.UUID]struct{})
	results := make([]AlternateResult, 0)
	for _, groups := range [][]models.AlternateGroup{itemGroups, identifierGroups} {
		for i := range groups {
			if _, ok := seenGroups[groups[i].ID]; ok {
				continue
			}
			seenGroups[groups[i].ID] = struct{}{}
			for j := range groups[i].Members {
				member := &groups[i].Members[j]
				if member.InventoryItemID != nil && *member.InventoryItemID == itemID {
					continue
				}
				if member.PartIdentifierID != nil {
					if _, linked := linkedIdentifiers[*member.PartIdentifierID]; linked {
						continue // an identifier of the queried item is the same part
					}
				}
				results = append(results, toAlternateResult(&groups[i], member))
			}
		}
	}
	return results, nil
}

// ownedGroup fetches a group and enforces the tenant boundary; cross-tenant
// ids are indistinguishable from nonexistent ones.
func (s *AlternateService) ownedGroup(organizationID, groupID uuid.UUID) (*models.AlternateGroup, error) {
	group, err := s.groupRepo.GetByID(groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAlternateGroupNotFound
		}
		return nil, fmt.Errorf("failed to get alternate group: %w", err)
	}
	if group.OrganizationID != organizationID {
		return nil, apperrors.ErrAlternateGroupNotFound
	}
	return group, nil
}

func toGroupResponse(group *models.AlternateGroup) AlternateGroupResponse {
	members := make([]GroupMemberResponse, 0, len(group.Members))
	for i := range group.Members {
		members = append(members, toMemberResponse(&group.Members[i]))
	}
	return AlternateGroupResponse{
		ID:          group.ID,
		Name:        group.Name,
		Description: group.Description,
		Status:      group.Status,
		Notes:       group.Notes,
		EvidenceURL: group.EvidenceURL,
		VerifiedBy:  group.VerifiedBy,
		VerifiedAt:  group.VerifiedAt,
		Members:     members,
	}
}

func toMemberResponse(member *models.AlternateGroupMember) GroupMemberResponse {
	res := GroupMemberResponse{
		ID:        member.ID,
		IsPrimary: member.IsPrimary,
		Notes:     member.Notes,
	}
	if member.PartIdentifier != nil {
		identifier := toIdentifierResponse(member.PartIdentifier)
		res.PartIdentifier = &identifier
	}
	if member.InventoryItem != nil {
		res.InventoryItem = &CompatiblePartResponse{
			InventoryItemID: member.InventoryItem.ID,
			SKU:             member.InventoryItem.SKU,
			Name:            member.InventoryItem.Name,
			QuantityOnHand:  member.InventoryItem.QuantityOnHand,
		}
	}
	return res
}

func toAlternateResult(group *models.AlternateGroup, member *models.AlternateGroupMember) AlternateResult {
	m := toMemberResponse(member)
	return AlternateResult{
		GroupID:        group.ID,
		GroupName:      group.Name,
		GroupStatus:    group.Status,
		MemberID:       m.ID,
		IsPrimary:      m.IsPrimary,
		Notes:          m.Notes,
		PartIdentifier: m.PartIdentifier,
		InventoryItem:  m.InventoryItem,
	}
}
