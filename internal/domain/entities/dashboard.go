package entities

// Search entity selectors.
const (
	SearchEntityAccounts = "accounts"
	SearchEntityDemands  = "demands"
)

// DashboardStats aggregates both tables. Status values with no rows are
// absent from the maps.
type DashboardStats struct {
	TotalAccounts    int
	TotalDemands     int
	AccountsByStatus map[string]int
	DemandsByStatus  map[string]int
}

// SearchResult holds the rows of whichever entity was searched.
type SearchResult struct {
	Entity   string
	Accounts []Account
	Demands  []Demand
}
