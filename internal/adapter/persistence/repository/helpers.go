package repository

import (
	"errors"
	"fmt"
	"sort"

	"resource_management/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/golang-sql/civil"
)

// maxTransactItems is the DynamoDB TransactWriteItems limit.
const maxTransactItems = 100

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

func dateToString(d *civil.Date) string {
	if d == nil {
		return ""
	}
	return d.String()
}

func stringToDate(s string) (*civil.Date, error) {
	if s == "" {
		return nil, nil
	}
	d, err := civil.ParseDate(s)
	if err != nil {
		return nil, fmt.Errorf("stored date %q: %w", s, err)
	}
	return &d, nil
}

func stringToAuditDate(s string) (civil.Date, error) {
	d, err := civil.ParseDate(s)
	if err != nil {
		return civil.Date{}, fmt.Errorf("stored audit date %q: %w", s, err)
	}
	return d, nil
}

// chunkDemands splits ds so that each chunk, plus one counter update per
// distinct account in it, fits in a single transaction of limit items.
func chunkDemands(ds []entities.Demand, limit int) [][]entities.Demand {
	var (
		chunks   [][]entities.Demand
		current  []entities.Demand
		accounts = map[string]struct{}{}
	)
	for _, d := range ds {
		extra := 1
		if _, seen := accounts[d.AccountID]; !seen {
			extra++
		}
		if len(current) > 0 && len(current)+len(accounts)+extra > limit {
			chunks = append(chunks, current)
			current = nil
			accounts = map[string]struct{}{}
		}
		current = append(current, d)
		accounts[d.AccountID] = struct{}{}
	}
	if len(current) > 0 {
		chunks = append(chunks, current)
	}
	return chunks
}

// countPerAccount keeps first-seen account order so transaction item
// indexes are deterministic.
func countPerAccount(ds []entities.Demand) ([]string, map[string]int) {
	var order []string
	counts := map[string]int{}
	for _, d := range ds {
		if _, ok := counts[d.AccountID]; !ok {
			order = append(order, d.AccountID)
		}
		counts[d.AccountID]++
	}
	return order, counts
}

// failedConditionIndex returns the position of the first transaction item
// whose condition failed.
func failedConditionIndex(err error) (int, bool) {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return 0, false
	}
	for i, reason := range tce.CancellationReasons {
		if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
			return i, true
		}
	}
	return 0, false
}

func sortDemandsBySno(ds []entities.Demand) {
	sort.Slice(ds, func(i, j int) bool { return ds[i].Sno < ds[j].Sno })
}

func sortAccounts(as []entities.Account) {
	sort.Slice(as, func(i, j int) bool {
		if as[i].AddedOn != as[j].AddedOn {
			return as[i].AddedOn.Before(as[j].AddedOn)
		}
		return as[i].ID < as[j].ID
	})
}
