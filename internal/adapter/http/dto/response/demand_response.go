package response

import "resource_management/internal/domain/entities"

type DemandResponse struct {
	Sno                  int64   `json:"sno"`
	ID                   string  `json:"id"`
	AccountID            string  `json:"account_id"`
	Project              string  `json:"project"`
	Role                 string  `json:"role"`
	RoleCode             string  `json:"role_code"`
	Location             string  `json:"location"`
	Revised              *string `json:"revised"`
	OriginalStartDate    *string `json:"original_start_date"`
	AllocationEndDate    *string `json:"allocation_end_date"`
	AllocationPercentage int     `json:"allocation_percentage"`
	Probability          int     `json:"probability"`
	Status               string  `json:"status"`
	ResourceMapped       *string `json:"resource_mapped"`
	Comment              *string `json:"comment"`
	StartMonth           string  `json:"start_month"`
	LastUpdatedBy        string  `json:"last_updated_by"`
	UpdatedOn            string  `json:"updated_on"`
	AddedBy              string  `json:"added_by"`
	AddedOn              string  `json:"added_on"`
}

func FromDemand(d entities.Demand) DemandResponse {
	return DemandResponse{
		Sno:                  d.Sno,
		ID:                   d.ID,
		AccountID:            d.AccountID,
		Project:              d.Project,
		Role:                 d.Role,
		RoleCode:             d.RoleCode,
		Location:             d.Location,
		Revised:              d.Revised,
		OriginalStartDate:    optionalDate(d.OriginalStartDate),
		AllocationEndDate:    optionalDate(d.AllocationEndDate),
		AllocationPercentage: d.AllocationPercentage,
		Probability:          d.Probability,
		Status:               d.Status,
		ResourceMapped:       d.ResourceMapped,
		Comment:              d.Comment,
		StartMonth:           d.StartMonth,
		LastUpdatedBy:        d.LastUpdatedBy,
		UpdatedOn:            d.UpdatedOn.String(),
		AddedBy:              d.AddedBy,
		AddedOn:              d.AddedOn.String(),
	}
}

func FromDemands(ds []entities.Demand) []DemandResponse {
	out := make([]DemandResponse, 0, len(ds))
	for _, d := range ds {
		out = append(out, FromDemand(d))
	}
	return out
}
