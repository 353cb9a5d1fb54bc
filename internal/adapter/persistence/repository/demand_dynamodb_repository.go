package repository

import (
	"context"
	"fmt"
	"strconv"

	"resource_management/internal/domain/entities"
	"resource_management/internal/infrastructure/database"
	"resource_management/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultDemandsTableName  = "demands"
	defaultCountersTableName = "counters"

	demandSnoCounter = "demand_sno"
)

type demandItem struct {
	Sno                  int64   `dynamodbav:"sno"`
	ID                   string  `dynamodbav:"id"`
	AccountID            string  `dynamodbav:"account_id"`
	Project              string  `dynamodbav:"project"`
	Role                 string  `dynamodbav:"role"`
	RoleCode             string  `dynamodbav:"role_code"`
	Location             string  `dynamodbav:"location"`
	Revised              *string `dynamodbav:"revised,omitempty"`
	OriginalStartDate    string  `dynamodbav:"original_start_date,omitempty"`
	AllocationEndDate    string  `dynamodbav:"allocation_end_date,omitempty"`
	AllocationPercentage int     `dynamodbav:"allocation_percentage"`
	Probability          int     `dynamodbav:"probability"`
	Status               string  `dynamodbav:"status"`
	ResourceMapped       *string `dynamodbav:"resource_mapped,omitempty"`
	Comment              *string `dynamodbav:"comment,omitempty"`
	StartMonth           string  `dynamodbav:"start_month"`
	LastUpdatedBy        string  `dynamodbav:"last_updated_by"`
	UpdatedOn            string  `dynamodbav:"updated_on"`
	AddedBy              string  `dynamodbav:"added_by"`
	AddedOn              string  `dynamodbav:"added_on"`
}

// DemandDynamoRepository persists Demand entities in DynamoDB.
//
// Table requirements:
//   - demands: PK id (string), GSI account_id-index on account_id
//   - counters: PK name (string), holds the sno sequence
//
// Every write that adds, moves or removes a demand adjusts demand_count on
// the referenced account item in the same transaction; the account update
// is conditioned on the account existing.
type DemandDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	accountsTable string
	countersTable string
}

var _ interfaces.IDemandRepository = (*DemandDynamoRepository)(nil)

func NewDemandDynamoRepository(ddb *dynamodb.Client, tableName, accountsTable, countersTable string) *DemandDynamoRepository {
	if tableName == "" {
		tableName = defaultDemandsTableName
	}
	if accountsTable == "" {
		accountsTable = defaultAccountsTableName
	}
	if countersTable == "" {
		countersTable = defaultCountersTableName
	}
	return &DemandDynamoRepository{
		ddb:           ddb,
		tableName:     tableName,
		accountsTable: accountsTable,
		countersTable: countersTable,
	}
}

func (r *DemandDynamoRepository) List(ctx context.Context) ([]entities.Demand, error) {
	items, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan demands: %w", err)
	}
	return demandsFromItems(items)
}

func (r *DemandDynamoRepository) GetByID(ctx context.Context, id string) (entities.Demand, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Demand{}, fmt.Errorf("failed to get demand: %w", err)
	}
	if len(out.Item) == 0 {
		return entities.Demand{}, nil
	}

	var it demandItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Demand{}, err
	}
	return fromDemandItem(it)
}

func (r *DemandDynamoRepository) ListByAccountID(ctx context.Context, accountID string) ([]entities.Demand, error) {
	items, err := queryAll(ctx, r.ddb, r.byAccountQuery(accountID))
	if err != nil {
		return nil, fmt.Errorf("failed to query demands by account: %w", err)
	}
	return demandsFromItems(items)
}

func (r *DemandDynamoRepository) CountByAccountID(ctx context.Context, accountID string) (int, error) {
	in := r.byAccountQuery(accountID)
	in.Select = types.SelectCount

	total := 0
	p := dynamodb.NewQueryPaginator(r.ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to count demands by account: %w", err)
		}
		total += int(page.Count)
	}
	return total, nil
}

func (r *DemandDynamoRepository) Create(ctx context.Context, d entities.Demand) (entities.Demand, error) {
	created, err := r.CreateBatch(ctx, []entities.Demand{d})
	if err != nil {
		return entities.Demand{}, err
	}
	return created[0], nil
}

// CreateBatch reserves one sno per demand, then writes them in transactions
// of at most 100 items. A failure in a later transaction leaves the
// demands of earlier ones in place.
func (r *DemandDynamoRepository) CreateBatch(ctx context.Context, ds []entities.Demand) ([]entities.Demand, error) {
	if len(ds) == 0 {
		return []entities.Demand{}, nil
	}

	first, err := r.reserveSnos(ctx, len(ds))
	if err != nil {
		return nil, err
	}
	created := make([]entities.Demand, len(ds))
	for i, d := range ds {
		d.Sno = first + int64(i)
		created[i] = d
	}

	written := 0
	for _, chunk := range chunkDemands(created, maxTransactItems) {
		if err := r.writeChunk(ctx, chunk); err != nil {
			if written > 0 {
				return nil, fmt.Errorf("%d of %d demands already written: %w", written, len(ds), err)
			}
			return nil, err
		}
		written += len(chunk)
	}
	return created, nil
}

func (r *DemandDynamoRepository) writeChunk(ctx context.Context, chunk []entities.Demand) error {
	items := make([]types.TransactWriteItem, 0, len(chunk)+1)
	for _, d := range chunk {
		av, err := attributevalue.MarshalMap(toDemandItem(d))
		if err != nil {
			return err
		}
		items = append(items, types.TransactWriteItem{Put: &types.Put{
			TableName:                aws.String(r.tableName),
			Item:                     av,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		}})
	}
	order, counts := countPerAccount(chunk)
	for _, accountID := range order {
		items = append(items, r.adjustDemandCount(accountID, counts[accountID]))
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		if idx, ok := failedConditionIndex(err); ok && idx >= len(chunk) {
			return interfaces.ErrReferencedAccountMissing
		}
		return fmt.Errorf("failed to write demands: %w", err)
	}
	return nil
}

// Update replaces the stored demand. When account_id changes the counters
// of both accounts move in the same transaction.
func (r *DemandDynamoRepository) Update(ctx context.Context, d entities.Demand) (entities.Demand, error) {
	current, err := r.GetByID(ctx, d.ID)
	if err != nil {
		return entities.Demand{}, err
	}
	if current.ID == "" {
		return entities.Demand{}, nil
	}
	d.Sno = current.Sno

	av, err := attributevalue.MarshalMap(toDemandItem(d))
	if err != nil {
		return entities.Demand{}, err
	}
	items := []types.TransactWriteItem{{Put: &types.Put{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #acc = :acc"),
		ExpressionAttributeNames: map[string]string{
			"#id":  "id",
			"#acc": "account_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":acc": &types.AttributeValueMemberS{Value: current.AccountID},
		},
	}}}
	if d.AccountID != current.AccountID {
		items = append(items,
			r.adjustDemandCount(d.AccountID, 1),
			r.adjustDemandCount(current.AccountID, -1),
		)
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		idx, ok := failedConditionIndex(err)
		switch {
		case ok && idx == 1:
			return entities.Demand{}, interfaces.ErrReferencedAccountMissing
		case ok && idx == 0:
			// deleted or re-pointed concurrently
			again, getErr := r.GetByID(ctx, d.ID)
			if getErr != nil {
				return entities.Demand{}, getErr
			}
			if again.ID == "" {
				return entities.Demand{}, nil
			}
		}
		return entities.Demand{}, fmt.Errorf("failed to update demand: %w", err)
	}
	return d, nil
}

func (r *DemandDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if current.ID == "" {
		return false, nil
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: []types.TransactWriteItem{
		{Delete: &types.Delete{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			},
			ConditionExpression:      aws.String("#acc = :acc"),
			ExpressionAttributeNames: map[string]string{"#acc": "account_id"},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":acc": &types.AttributeValueMemberS{Value: current.AccountID},
			},
		}},
		r.adjustDemandCount(current.AccountID, -1),
	}})
	if err != nil {
		if idx, ok := failedConditionIndex(err); ok && idx == 0 {
			again, getErr := r.GetByID(ctx, id)
			if getErr != nil {
				return false, getErr
			}
			if again.ID == "" {
				return false, nil
			}
		}
		return false, fmt.Errorf("failed to delete demand: %w", err)
	}
	return true, nil
}

func (r *DemandDynamoRepository) Search(ctx context.Context, query string) ([]entities.Demand, error) {
	if query == "" {
		return r.List(ctx)
	}
	items, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		ConsistentRead:   aws.Bool(true),
		FilterExpression: aws.String("contains(#role, :q) OR contains(#project, :q) OR contains(#location, :q) OR contains(#status, :q)"),
		ExpressionAttributeNames: map[string]string{
			"#role":     "role",
			"#project":  "project",
			"#location": "location",
			"#status":   "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":q": &types.AttributeValueMemberS{Value: query},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search demands: %w", err)
	}
	return demandsFromItems(items)
}

func (r *DemandDynamoRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	return countByAttribute(ctx, r.ddb, r.tableName, "status")
}

func (r *DemandDynamoRepository) byAccountQuery(accountID string) *dynamodb.QueryInput {
	return &dynamodb.QueryInput{
		TableName:                aws.String(r.tableName),
		IndexName:                aws.String(database.DemandsByAccountIndex),
		KeyConditionExpression:   aws.String("#acc = :acc"),
		ExpressionAttributeNames: map[string]string{"#acc": "account_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":acc": &types.AttributeValueMemberS{Value: accountID},
		},
	}
}

// adjustDemandCount fails the surrounding transaction when the account
// does not exist.
func (r *DemandDynamoRepository) adjustDemandCount(accountID string, delta int) types.TransactWriteItem {
	return types.TransactWriteItem{Update: &types.Update{
		TableName: aws.String(r.accountsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: accountID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("ADD #dc :delta"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
			"#dc": demandCountAttr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":delta": &types.AttributeValueMemberN{Value: strconv.Itoa(delta)},
		},
	}}
}

// reserveSnos atomically advances the sequence by n and returns the first
// reserved value.
func (r *DemandDynamoRepository) reserveSnos(ctx context.Context, n int) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.countersTable),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: demandSnoCounter},
		},
		UpdateExpression:         aws.String("ADD #v :n"),
		ExpressionAttributeNames: map[string]string{"#v": "value"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":n": &types.AttributeValueMemberN{Value: strconv.Itoa(n)},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to reserve sno: %w", err)
	}

	var last int64
	if err := attributevalue.Unmarshal(out.Attributes["value"], &last); err != nil {
		return 0, fmt.Errorf("failed to read sno counter: %w", err)
	}
	return last - int64(n) + 1, nil
}

func demandsFromItems(items []map[string]types.AttributeValue) ([]entities.Demand, error) {
	var its []demandItem
	if err := attributevalue.UnmarshalListOfMaps(items, &its); err != nil {
		return nil, err
	}
	demands := make([]entities.Demand, 0, len(its))
	for _, it := range its {
		d, err := fromDemandItem(it)
		if err != nil {
			return nil, err
		}
		demands = append(demands, d)
	}
	sortDemandsBySno(demands)
	return demands, nil
}

func toDemandItem(d entities.Demand) demandItem {
	return demandItem{
		Sno:                  d.Sno,
		ID:                   d.ID,
		AccountID:            d.AccountID,
		Project:              d.Project,
		Role:                 d.Role,
		RoleCode:             d.RoleCode,
		Location:             d.Location,
		Revised:              d.Revised,
		OriginalStartDate:    dateToString(d.OriginalStartDate),
		AllocationEndDate:    dateToString(d.AllocationEndDate),
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

func fromDemandItem(it demandItem) (entities.Demand, error) {
	originalStart, err := stringToDate(it.OriginalStartDate)
	if err != nil {
		return entities.Demand{}, err
	}
	allocationEnd, err := stringToDate(it.AllocationEndDate)
	if err != nil {
		return entities.Demand{}, err
	}
	updatedOn, err := stringToAuditDate(it.UpdatedOn)
	if err != nil {
		return entities.Demand{}, err
	}
	addedOn, err := stringToAuditDate(it.AddedOn)
	if err != nil {
		return entities.Demand{}, err
	}
	return entities.Demand{
		Sno:                  it.Sno,
		ID:                   it.ID,
		AccountID:            it.AccountID,
		Project:              it.Project,
		Role:                 it.Role,
		RoleCode:             it.RoleCode,
		Location:             it.Location,
		Revised:              it.Revised,
		OriginalStartDate:    originalStart,
		AllocationEndDate:    allocationEnd,
		AllocationPercentage: it.AllocationPercentage,
		Probability:          it.Probability,
		Status:               it.Status,
		ResourceMapped:       it.ResourceMapped,
		Comment:              it.Comment,
		StartMonth:           it.StartMonth,
		LastUpdatedBy:        it.LastUpdatedBy,
		UpdatedOn:            updatedOn,
		AddedBy:              it.AddedBy,
		AddedOn:              addedOn,
	}, nil
}
