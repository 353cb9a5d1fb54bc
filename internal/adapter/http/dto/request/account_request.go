package request

import "resource_management/internal/domain/entities"

// AccountCreateRequest is the payload of POST /accounts. Dates are
// YYYY-MM-DD strings; omitted or empty means unset.
type AccountCreateRequest struct {
	Client            string  `json:"client" binding:"required"`
	Project           string  `json:"project" binding:"required"`
	Vertical          string  `json:"vertical" binding:"required"`
	Geo               string  `json:"geo" binding:"required"`
	StartMonth        string  `json:"start_month" binding:"required"`
	RevisedStartDate  *string `json:"revised_start_date"`
	PlannedStartDate  *string `json:"planned_start_date"`
	PlannedEndDate    *string `json:"planned_end_date"`
	Probability       int     `json:"probability" binding:"required"`
	OpportunityStatus string  `json:"opportunity_status"`
	SowStatus         string  `json:"sow_status"`
	ProjectStatus     string  `json:"project_status"`
	ClientPartner     string  `json:"client_partner" binding:"required"`
	ProposalAnchor    string  `json:"proposal_anchor" binding:"required"`
	DeliveryPartner   string  `json:"delivery_partner" binding:"required"`
	Comment           *string `json:"comment"`
}

func (r AccountCreateRequest) ToInput() entities.AccountInput {
	return entities.AccountInput{
		Client:            r.Client,
		Project:           r.Project,
		Vertical:          r.Vertical,
		Geo:               r.Geo,
		StartMonth:        r.StartMonth,
		RevisedStartDate:  r.RevisedStartDate,
		PlannedStartDate:  r.PlannedStartDate,
		PlannedEndDate:    r.PlannedEndDate,
		Probability:       r.Probability,
		OpportunityStatus: r.OpportunityStatus,
		SowStatus:         r.SowStatus,
		ProjectStatus:     r.ProjectStatus,
		ClientPartner:     r.ClientPartner,
		ProposalAnchor:    r.ProposalAnchor,
		DeliveryPartner:   r.DeliveryPartner,
		Comment:           r.Comment,
	}
}

// AccountUpdateRequest is the payload of PUT /accounts/:id. Omitted fields
// keep their stored value; a date or comment sent as null is cleared, and a
// date sent as "" too.
type AccountUpdateRequest struct {
	Client            *string                   `json:"client"`
	Project           *string                   `json:"project"`
	Vertical          *string                   `json:"vertical"`
	Geo               *string                   `json:"geo"`
	StartMonth        *string                   `json:"start_month"`
	RevisedStartDate  entities.Optional[string] `json:"revised_start_date" swaggertype:"string"`
	PlannedStartDate  entities.Optional[string] `json:"planned_start_date" swaggertype:"string"`
	PlannedEndDate    entities.Optional[string] `json:"planned_end_date" swaggertype:"string"`
	Probability       *int                      `json:"probability"`
	OpportunityStatus *string                   `json:"opportunity_status"`
	SowStatus         *string                   `json:"sow_status"`
	ProjectStatus     *string                   `json:"project_status"`
	ClientPartner     *string                   `json:"client_partner"`
	ProposalAnchor    *string                   `json:"proposal_anchor"`
	DeliveryPartner   *string                   `json:"delivery_partner"`
	Comment           entities.Optional[string] `json:"comment" swaggertype:"string"`
}

func (r AccountUpdateRequest) ToPatch() entities.AccountPatch {
	return entities.AccountPatch{
		Client:            r.Client,
		Project:           r.Project,
		Vertical:          r.Vertical,
		Geo:               r.Geo,
		StartMonth:        r.StartMonth,
		RevisedStartDate:  r.RevisedStartDate,
		PlannedStartDate:  r.PlannedStartDate,
		PlannedEndDate:    r.PlannedEndDate,
		Probability:       r.Probability,
		OpportunityStatus: r.OpportunityStatus,
		SowStatus:         r.SowStatus,
		ProjectStatus:     r.ProjectStatus,
		ClientPartner:     r.ClientPartner,
		ProposalAnchor:    r.ProposalAnchor,
		DeliveryPartner:   r.DeliveryPartner,
		Comment:           r.Comment,
	}
}
