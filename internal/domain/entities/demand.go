package entities

import "github.com/golang-sql/civil"

// Demand is a staffing request raised against an Account.
//
// Storage model:
//   - Sno: store-assigned auto-increment, internal ordering key only
//   - ID: client-facing unique id (DEM-... or DEM-CLONE-...)
//   - AccountID: must resolve to an existing Account on every write
//
// Probability, Revised and AllocationPercentage are free-form.
type Demand struct {
	Sno                  int64       `json:"sno"`
	ID                   string      `json:"id"`
	AccountID            string      `json:"account_id"`
	Project              string      `json:"project"`
	Role                 string      `json:"role"`
	RoleCode             string      `json:"role_code"`
	Location             string      `json:"location"`
	Revised              *string     `json:"revised"`
	OriginalStartDate    *civil.Date `json:"original_start_date"`
	AllocationEndDate    *civil.Date `json:"allocation_end_date"`
	AllocationPercentage int         `json:"allocation_percentage"`
	Probability          int         `json:"probability"`
	Status               string      `json:"status"`
	ResourceMapped       *string     `json:"resource_mapped"`
	Comment              *string     `json:"comment"`
	StartMonth           string      `json:"start_month"`

	LastUpdatedBy string     `json:"last_updated_by"`
	UpdatedOn     civil.Date `json:"updated_on"`
	AddedBy       string     `json:"added_by"`
	AddedOn       civil.Date `json:"added_on"`
}

type DemandInput struct {
	AccountID            string
	Project              string
	Role                 string
	RoleCode             string
	Location             string
	Revised              *string
	OriginalStartDate    *string
	AllocationEndDate    *string
	AllocationPercentage int
	Probability          int
	Status               string
	ResourceMapped       *string
	Comment              *string
	StartMonth           string
}

// DemandPatch is a sparse update: nil fields are left untouched. The
// nullable fields are cleared by a present null, and a date also by "".
type DemandPatch struct {
	AccountID            *string
	Project              *string
	Role                 *string
	RoleCode             *string
	Location             *string
	Revised              Optional[string]
	OriginalStartDate    Optional[string]
	AllocationEndDate    Optional[string]
	AllocationPercentage *int
	Probability          *int
	Status               *string
	ResourceMapped       Optional[string]
	Comment              Optional[string]
	StartMonth           *string
}
