package response

import (
	"resource_management/internal/domain/entities"

	"github.com/golang-sql/civil"
)

type AccountResponse struct {
	ID                string  `json:"id"`
	Client            string  `json:"client"`
	Project           string  `json:"project"`
	Vertical          string  `json:"vertical"`
	Geo               string  `json:"geo"`
	StartMonth        string  `json:"start_month"`
	RevisedStartDate  *string `json:"revised_start_date"`
	PlannedStartDate  *string `json:"planned_start_date"`
	PlannedEndDate    *string `json:"planned_end_date"`
	Probability       int     `json:"probability"`
	OpportunityStatus string  `json:"opportunity_status"`
	SowStatus         string  `json:"sow_status"`
	ProjectStatus     string  `json:"project_status"`
	ClientPartner     string  `json:"client_partner"`
	ProposalAnchor    string  `json:"proposal_anchor"`
	DeliveryPartner   string  `json:"delivery_partner"`
	Comment           *string `json:"comment"`
	LastUpdatedBy     string  `json:"last_updated_by"`
	UpdatedOn         string  `json:"updated_on"`
	AddedBy           string  `json:"added_by"`
	AddedOn           string  `json:"added_on"`
}

func FromAccount(a entities.Account) AccountResponse {
	return AccountResponse{
		ID:                a.ID,
		Client:            a.Client,
		Project:           a.Project,
		Vertical:          a.Vertical,
		Geo:               a.Geo,
		StartMonth:        a.StartMonth,
		RevisedStartDate:  optionalDate(a.RevisedStartDate),
		PlannedStartDate:  optionalDate(a.PlannedStartDate),
		PlannedEndDate:    optionalDate(a.PlannedEndDate),
		Probability:       a.Probability,
		OpportunityStatus: a.OpportunityStatus,
		SowStatus:         a.SowStatus,
		ProjectStatus:     a.ProjectStatus,
		ClientPartner:     a.ClientPartner,
		ProposalAnchor:    a.ProposalAnchor,
		DeliveryPartner:   a.DeliveryPartner,
		Comment:           a.Comment,
		LastUpdatedBy:     a.LastUpdatedBy,
		UpdatedOn:         a.UpdatedOn.String(),
		AddedBy:           a.AddedBy,
		AddedOn:           a.AddedOn.String(),
	}
}

// FromAccounts never returns nil so empty lists encode as [].
func FromAccounts(as []entities.Account) []AccountResponse {
	out := make([]AccountResponse, 0, len(as))
	for _, a := range as {
		out = append(out, FromAccount(a))
	}
	return out
}

func optionalDate(d *civil.Date) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}
