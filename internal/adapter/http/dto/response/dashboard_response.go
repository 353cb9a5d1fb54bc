package response

import "resource_management/internal/domain/entities"

type DashboardStatsResponse struct {
	TotalAccounts    int            `json:"totalAccounts"`
	TotalDemands     int            `json:"totalDemands"`
	AccountsByStatus map[string]int `json:"accountsByStatus"`
	DemandsByStatus  map[string]int `json:"demandsByStatus"`
}

func FromDashboardStats(s entities.DashboardStats) DashboardStatsResponse {
	res := DashboardStatsResponse{
		TotalAccounts:    s.TotalAccounts,
		TotalDemands:     s.TotalDemands,
		AccountsByStatus: s.AccountsByStatus,
		DemandsByStatus:  s.DemandsByStatus,
	}
	if res.AccountsByStatus == nil {
		res.AccountsByStatus = map[string]int{}
	}
	if res.DemandsByStatus == nil {
		res.DemandsByStatus = map[string]int{}
	}
	return res
}

// FromSearchResult returns the matched rows of the searched entity as a
// plain list.
func FromSearchResult(r entities.SearchResult) any {
	if r.Entity == entities.SearchEntityDemands {
		return FromDemands(r.Demands)
	}
	return FromAccounts(r.Accounts)
}
