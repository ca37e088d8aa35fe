package domain

import "time"

// Family groups one or two guardian accounts and their children. Guardian
// contact fields are used only for out-of-band high-severity alerts; account
// identity itself lives in the external auth service.
type Family struct {
	FamilyID               string    `json:"id" dynamodbav:"family_id"`
	Name                   string    `json:"name" dynamodbav:"name"`
	GuardianPrimaryEmail   string    `json:"guardian_primary_email" dynamodbav:"guardian_primary_email"`
	GuardianPrimaryPhone   *string   `json:"guardian_primary_phone" dynamodbav:"guardian_primary_phone"`
	GuardianSecondaryEmail *string   `json:"guardian_secondary_email" dynamodbav:"guardian_secondary_email"`
	CreatedAt              time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt              time.Time `json:"updated" dynamodbav:"updated_at"`
}

// ChildProfile maps a child account to its family and display name.
type ChildProfile struct {
	ChildID     string    `json:"id" dynamodbav:"child_id"`
	FamilyID    string    `json:"family_id" dynamodbav:"family_id"`
	DisplayName string    `json:"display_name" dynamodbav:"display_name"`
	CreatedAt   time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt   time.Time `json:"updated" dynamodbav:"updated_at"`
}

// FamilyMembership is what the resolver hands the pipeline: just enough to
// scope an incident and address its guardians.
type FamilyMembership struct {
	FamilyID             string
	DisplayName          string
	GuardianPrimaryEmail string
	GuardianPrimaryPhone *string
}

type CreateFamilyRequest struct {
	Name                   string  `json:"name" validate:"required"`
	GuardianPrimaryEmail   string  `json:"guardian_primary_email" validate:"required,email"`
	GuardianPrimaryPhone   *string `json:"guardian_primary_phone"`
	GuardianSecondaryEmail *string `json:"guardian_secondary_email" validate:"omitempty,email"`
}

type AddChildRequest struct {
	DisplayName string `json:"display_name" validate:"required"`
}
