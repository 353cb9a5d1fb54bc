package entities

import "github.com/golang-sql/civil"

// Probabilities accepted for an Account opportunity.
const (
	Probability50  = 50
	Probability75  = 75
	Probability90  = 90
	Probability100 = 100
)

// AllowedAccountProbabilities lists the closed set of Account probabilities.
var AllowedAccountProbabilities = []int{Probability50, Probability75, Probability90, Probability100}

// IsAllowedAccountProbability reports whether p belongs to the closed set.
func IsAllowedAccountProbability(p int) bool {
	for _, allowed := range AllowedAccountProbabilities {
		if p == allowed {
			return true
		}
	}
	return false
}

// Account is a client opportunity that owns zero or more Demands.
//
// Storage model:
//   - PK: id (ACC-<timestamp>-<suffix>, immutable)
//   - Demands reference it through demands.account_id; an Account with
//     linked Demands is never deleted.
//
// Audit fields are stamped by the use case, never by the caller.
type Account struct {
	ID                string      `json:"id"`
	Client            string      `json:"client"`
	Project           string      `json:"project"`
	Vertical          string      `json:"vertical"`
	Geo               string      `json:"geo"`
	StartMonth        string      `json:"start_month"`
	RevisedStartDate  *civil.Date `json:"revised_start_date"`
	PlannedStartDate  *civil.Date `json:"planned_start_date"`
	PlannedEndDate    *civil.Date `json:"planned_end_date"`
	Probability       int         `json:"probability"`
	OpportunityStatus string      `json:"opportunity_status"`
	SowStatus         string      `json:"sow_status"`
	ProjectStatus     string      `json:"project_status"`
	ClientPartner     string      `json:"client_partner"`
	ProposalAnchor    string      `json:"proposal_anchor"`
	DeliveryPartner   string      `json:"delivery_partner"`
	Comment           *string     `json:"comment"`

	LastUpdatedBy string     `json:"last_updated_by"`
	UpdatedOn     civil.Date `json:"updated_on"`
	AddedBy       string     `json:"added_by"`
	AddedOn       civil.Date `json:"added_on"`
}

// AccountInput carries the caller-provided fields of a new Account.
// Dates are raw YYYY-MM-DD strings; nil or empty means "not set".
type AccountInput struct {
	Client            string
	Project           string
	Vertical          string
	Geo               string
	StartMonth        string
	RevisedStartDate  *string
	PlannedStartDate  *string
	PlannedEndDate    *string
	Probability       int
	OpportunityStatus string
	SowStatus         string
	ProjectStatus     string
	ClientPartner     string
	ProposalAnchor    string
	DeliveryPartner   string
	Comment           *string
}

// AccountPatch is a sparse update: nil fields are left untouched. The
// nullable fields are cleared by a present null, and a date also by "".
type AccountPatch struct {
	Client            *string
	Project           *string
	Vertical          *string
	Geo               *string
	StartMonth        *string
	RevisedStartDate  Optional[string]
	PlannedStartDate  Optional[string]
	PlannedEndDate    Optional[string]
	Probability       *int
	OpportunityStatus *string
	SowStatus         *string
	ProjectStatus     *string
	ClientPartner     *string
	ProposalAnchor    *string
	DeliveryPartner   *string
	Comment           Optional[string]
}
