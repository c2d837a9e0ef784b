package models

// MatchType defines how a compatibility rule's model pattern is matched
// against an equipment model. Manufacturer is always matched exact-normalized.
type MatchType string

const (
	MatchTypeAny      MatchType = "any"
	MatchTypeExact    MatchType = "exact"
	MatchTypePrefix   MatchType = "prefix"
	MatchTypeWildcard MatchType = "wildcard"
)

// IdentifierType defines the catalog source of a part identifier
type IdentifierType string

const (
	IdentifierTypeOEM            IdentifierType = "oem"
	IdentifierTypeAftermarket    IdentifierType = "aftermarket"
	IdentifierTypeManufacturerPN IdentifierType = "manufacturer_pn"
	IdentifierTypeUPC            IdentifierType = "upc"
	IdentifierTypeCrossReference IdentifierType = "cross_reference"
)

// GroupStatus defines the verification lifecycle of an alternate group
type GroupStatus string

const (
	GroupStatusUnverified GroupStatus = "unverified"
	GroupStatusVerified   GroupStatus = "verified"
	GroupStatusDeprecated GroupStatus = "deprecated"
)

// IsValid checks if the MatchType is valid
func (m MatchType) IsValid() bool {
	switch m {
	case MatchTypeAny, MatchTypeExact, MatchTypePrefix, MatchTypeWildcard:
		return true
	}
	return false
}

// IsValid checks if the IdentifierType is valid
func (i IdentifierType) IsValid() bool {
	switch i {
	case IdentifierTypeOEM, IdentifierTypeAftermarket, IdentifierTypeManufacturerPN,
		IdentifierTypeUPC, IdentifierTypeCrossReference:
		return true
	}
	return false
}

// IsValid checks if the GroupStatus is valid
func (g GroupStatus) IsValid() bool {
	switch g {
	case GroupStatusUnverified, GroupStatusVerified, GroupStatusDeprecated:
		return true
	}
	return false
}
