package repository

import (
	"context"
	"errors"
	"fmt"

	"resource_management/internal/domain/entities"
	"resource_management/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAccountsTableName = "accounts"

// demandCountAttr is maintained by the demand repository inside the same
// transactions that write demands, so an account delete can refuse
// atomically while references exist.
const demandCountAttr = "demand_count"

var accountOptionalAttrs = []string{"revised_start_date", "planned_start_date", "planned_end_date", "comment"}

type accountItem struct {
	ID                string  `dynamodbav:"id"`
	Client            string  `dynamodbav:"client"`
	Project           string  `dynamodbav:"project"`
	Vertical          string  `dynamodbav:"vertical"`
	Geo               string  `dynamodbav:"geo"`
	StartMonth        string  `dynamodbav:"start_month"`
	RevisedStartDate  string  `dynamodbav:"revised_start_date,omitempty"`
	PlannedStartDate  string  `dynamodbav:"planned_start_date,omitempty"`
	PlannedEndDate    string  `dynamodbav:"planned_end_date,omitempty"`
	Probability       int     `dynamodbav:"probability"`
	OpportunityStatus string  `dynamodbav:"opportunity_status"`
	SowStatus         string  `dynamodbav:"sow_status"`
	ProjectStatus     string  `dynamodbav:"project_status"`
	ClientPartner     string  `dynamodbav:"client_partner"`
	ProposalAnchor    string  `dynamodbav:"proposal_anchor"`
	DeliveryPartner   string  `dynamodbav:"delivery_partner"`
	Comment           *string `dynamodbav:"comment,omitempty"`
	LastUpdatedBy     string  `dynamodbav:"last_updated_by"`
	UpdatedOn         string  `dynamodbav:"updated_on"`
	AddedBy           string  `dynamodbav:"added_by"`
	AddedOn           string  `dynamodbav:"added_on"`
}

// AccountDynamoRepository persists Account entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Besides the entity fields each item carries demand_count, the number of
// Demands that reference it.
type AccountDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAccountRepository = (*AccountDynamoRepository)(nil)

func NewAccountDynamoRepository(ddb *dynamodb.Client, tableName string) *AccountDynamoRepository {
	if tableName == "" {
		tableName = defaultAccountsTableName
	}
	return &AccountDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *AccountDynamoRepository) List(ctx context.Context) ([]entities.Account, error) {
	items, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan accounts: %w", err)
	}
	return accountsFromItems(items)
}

func (r *AccountDynamoRepository) GetByID(ctx context.Context, id string) (entities.Account, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Account{}, fmt.Errorf("failed to get account: %w", err)
	}
	if len(out.Item) == 0 {
		return entities.Account{}, nil
	}

	var it accountItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Account{}, err
	}
	return fromAccountItem(it)
}

func (r *AccountDynamoRepository) Create(ctx context.Context, a entities.Account) (entities.Account, error) {
	av, err := attributevalue.MarshalMap(toAccountItem(a))
	if err != nil {
		return entities.Account{}, err
	}
	av[demandCountAttr] = &types.AttributeValueMemberN{Value: "0"}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Account{}, fmt.Errorf("failed to put account: %w", err)
	}
	return a, nil
}

// Update rewrites the entity attributes in place, keeping demand_count.
func (r *AccountDynamoRepository) Update(ctx context.Context, a entities.Account) (entities.Account, error) {
	av, err := attributevalue.MarshalMap(toAccountItem(a))
	if err != nil {
		return entities.Account{}, err
	}
	expr, names, values := replaceExpression(av, accountOptionalAttrs, "id")

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: a.ID},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Account{}, nil
		}
		return entities.Account{}, fmt.Errorf("failed to update account: %w", err)
	}

	var it accountItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Account{}, err
	}
	return fromAccountItem(it)
}

// Delete removes the account only while no Demand references it. A failed
// condition is told apart by re-reading the item.
func (r *AccountDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND (attribute_not_exists(#dc) OR #dc <= :zero)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
			"#dc": demandCountAttr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":zero": &types.AttributeValueMemberN{Value: "0"},
		},
	})
	if err == nil {
		return true, nil
	}

	var cfe *types.ConditionalCheckFailedException
	if !errors.As(err, &cfe) {
		return false, fmt.Errorf("failed to delete account: %w", err)
	}
	existing, getErr := r.GetByID(ctx, id)
	if getErr != nil {
		return false, getErr
	}
	if existing.ID == "" {
		return false, nil
	}
	return false, interfaces.ErrAccountStillReferenced
}

func (r *AccountDynamoRepository) Search(ctx context.Context, query string) ([]entities.Account, error) {
	if query == "" {
		return r.List(ctx)
	}
	items, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		ConsistentRead:   aws.Bool(true),
		FilterExpression: aws.String("contains(#client, :q) OR contains(#project, :q) OR contains(#vertical, :q) OR contains(#status, :q)"),
		ExpressionAttributeNames: map[string]string{
			"#client":   "client",
			"#project":  "project",
			"#vertical": "vertical",
			"#status":   "opportunity_status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":q": &types.AttributeValueMemberS{Value: query},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search accounts: %w", err)
	}
	return accountsFromItems(items)
}

func (r *AccountDynamoRepository) CountByOpportunityStatus(ctx context.Context) (map[string]int, error) {
	return countByAttribute(ctx, r.ddb, r.tableName, "opportunity_status")
}

func countByAttribute(ctx context.Context, ddb *dynamodb.Client, table, attr string) (map[string]int, error) {
	items, err := scanAll(ctx, ddb, &dynamodb.ScanInput{
		TableName:                aws.String(table),
		ConsistentRead:           aws.Bool(true),
		ProjectionExpression:     aws.String("#attr"),
		ExpressionAttributeNames: map[string]string{"#attr": attr},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", table, err)
	}

	counts := map[string]int{}
	for _, item := range items {
		var status string
		if v, ok := item[attr]; ok {
			if err := attributevalue.Unmarshal(v, &status); err != nil {
				return nil, err
			}
		}
		counts[status]++
	}
	return counts, nil
}

func accountsFromItems(items []map[string]types.AttributeValue) ([]entities.Account, error) {
	var its []accountItem
	if err := attributevalue.UnmarshalListOfMaps(items, &its); err != nil {
		return nil, err
	}
	accounts := make([]entities.Account, 0, len(its))
	for _, it := range its {
		a, err := fromAccountItem(it)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	sortAccounts(accounts)
	return accounts, nil
}

func toAccountItem(a entities.Account) accountItem {
	return accountItem{
		ID:                a.ID,
		Client:            a.Client,
		Project:           a.Project,
		Vertical:          a.Vertical,
		Geo:               a.Geo,
		StartMonth:        a.StartMonth,
		RevisedStartDate:  dateToString(a.RevisedStartDate),
		PlannedStartDate:  dateToString(a.PlannedStartDate),
		PlannedEndDate:    dateToString(a.PlannedEndDate),
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

func fromAccountItem(it accountItem) (entities.Account, error) {
	revisedStart, err := stringToDate(it.RevisedStartDate)
	if err != nil {
		return entities.Account{}, err
	}
	plannedStart, err := stringToDate(it.PlannedStartDate)
	if err != nil {
		return entities.Account{}, err
	}
	plannedEnd, err := stringToDate(it.PlannedEndDate)
	if err != nil {
		return entities.Account{}, err
	}
	updatedOn, err := stringToAuditDate(it.UpdatedOn)
	if err != nil {
		return entities.Account{}, err
	}
	addedOn, err := stringToAuditDate(it.AddedOn)
	if err != nil {
		return entities.Account{}, err
	}
	return entities.Account{
		ID:                it.ID,
		Client:            it.Client,
		Project:           it.Project,
		Vertical:          it.Vertical,
		Geo:               it.Geo,
		StartMonth:        it.StartMonth,
		RevisedStartDate:  revisedStart,
		PlannedStartDate:  plannedStart,
		PlannedEndDate:    plannedEnd,
		Probability:       it.Probability,
		OpportunityStatus: it.OpportunityStatus,
		SowStatus:         it.SowStatus,
		ProjectStatus:     it.ProjectStatus,
		ClientPartner:     it.ClientPartner,
		ProposalAnchor:    it.ProposalAnchor,
		DeliveryPartner:   it.DeliveryPartner,
		Comment:           it.Comment,
		LastUpdatedBy:     it.LastUpdatedBy,
		UpdatedOn:         updatedOn,
		AddedBy:           it.AddedBy,
		AddedOn:           addedOn,
	}, nil
}
