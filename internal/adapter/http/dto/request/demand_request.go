package request

import "resource_management/internal/domain/entities"

// DemandCreateRequest is the payload of POST /demands.
type DemandCreateRequest struct {
	AccountID            string  `json:"account_id" binding:"required"`
	Project              string  `json:"project" binding:"required"`
	Role                 string  `json:"role" binding:"required"`
	RoleCode             string  `json:"role_code" binding:"required"`
	Location             string  `json:"location" binding:"required"`
	Revised              *string `json:"revised"`
	OriginalStartDate    *string `json:"original_start_date"`
	AllocationEndDate    *string `json:"allocation_end_date"`
	AllocationPercentage *int    `json:"allocation_percentage" binding:"required"`
	Probability          *int    `json:"probability" binding:"required"`
	Status               string  `json:"status"`
	ResourceMapped       *string `json:"resource_mapped"`
	Comment              *string `json:"comment"`
	StartMonth           string  `json:"start_month" binding:"required"`
}

func (r DemandCreateRequest) ToInput() entities.DemandInput {
	return entities.DemandInput{
		AccountID:            r.AccountID,
		Project:              r.Project,
		Role:                 r.Role,
		RoleCode:             r.RoleCode,
		Location:             r.Location,
		Revised:              r.Revised,
		OriginalStartDate:    r.OriginalStartDate,
		AllocationEndDate:    r.AllocationEndDate,
		AllocationPercentage: intValue(r.AllocationPercentage),
		Probability:          intValue(r.Probability),
		Status:               r.Status,
		ResourceMapped:       r.ResourceMapped,
		Comment:              r.Comment,
		StartMonth:           r.StartMonth,
	}
}

// DemandUpdateRequest is the payload of PUT /demands/:id. Omitted fields
// keep their stored value; null clears revised, resource_mapped, comment
// and both dates.
type DemandUpdateRequest struct {
	AccountID            *string                   `json:"account_id"`
	Project              *string                   `json:"project"`
	Role                 *string                   `json:"role"`
	RoleCode             *string                   `json:"role_code"`
	Location             *string                   `json:"location"`
	Revised              entities.Optional[string] `json:"revised" swaggertype:"string"`
	OriginalStartDate    entities.Optional[string] `json:"original_start_date" swaggertype:"string"`
	AllocationEndDate    entities.Optional[string] `json:"allocation_end_date" swaggertype:"string"`
	AllocationPercentage *int                      `json:"allocation_percentage"`
	Probability          *int                      `json:"probability"`
	Status               *string                   `json:"status"`
	ResourceMapped       entities.Optional[string] `json:"resource_mapped" swaggertype:"string"`
	Comment              entities.Optional[string] `json:"comment" swaggertype:"string"`
	StartMonth           *string                   `json:"start_month"`
}

func (r DemandUpdateRequest) ToPatch() entities.DemandPatch {
	return entities.DemandPatch{
		AccountID:            r.AccountID,
		Project:              r.Project,
		Role:                 r.Role,
		RoleCode:             r.RoleCode,
		Location:             r.Location,
		Revised:              r.Revised,
		OriginalStartDate:    r.OriginalStartDate,
		AllocationEndDate:    r.AllocationEndDate,
		AllocationPercentage: r.AllocationPercentage,
		Probability:          r.Probability,
		Status:               r.Status,
		ResourceMapped:       r.ResourceMapped,
		Comment:              r.Comment,
		StartMonth:           r.StartMonth,
	}
}

// CloneQuery binds ?count=N on the clone route.
type CloneQuery struct {
	Count int `form:"count,default=1" binding:"min=1,max=10"`
}

// SearchQuery binds ?query=&entity= on the search route. Both keys must be
// present; an empty query matches everything.
type SearchQuery struct {
	Query  *string `form:"query" binding:"required"`
	Entity string  `form:"entity" binding:"required"`
}

func intValue(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
