package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func scanAll(ctx context.Context, ddb *dynamodb.Client, in *dynamodb.ScanInput) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	p := dynamodb.NewScanPaginator(ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
	}
	return items, nil
}

func queryAll(ctx context.Context, ddb *dynamodb.Client, in *dynamodb.QueryInput) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	p := dynamodb.NewQueryPaginator(ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
	}
	return items, nil
}

// replaceExpression turns a marshalled item into an UpdateExpression that
// overwrites every attribute in av and removes each optional attribute
// missing from it. Attributes listed in skip are left alone.
func replaceExpression(av map[string]types.AttributeValue, optional []string, skip ...string) (string, map[string]string, map[string]types.AttributeValue) {
	skipped := map[string]bool{}
	for _, s := range skip {
		skipped[s] = true
	}

	keys := make([]string, 0, len(av))
	for k := range av {
		if !skipped[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	names := map[string]string{}
	values := map[string]types.AttributeValue{}
	sets := make([]string, 0, len(keys))
	for i, k := range keys {
		n, v := fmt.Sprintf("#a%d", i), fmt.Sprintf(":v%d", i)
		names[n] = k
		values[v] = av[k]
		sets = append(sets, n+" = "+v)
	}

	var removes []string
	for i, k := range optional {
		if _, present := av[k]; present || skipped[k] {
			continue
		}
		n := fmt.Sprintf("#r%d", i)
		names[n] = k
		removes = append(removes, n)
	}

	expr := "SET " + strings.Join(sets, ", ")
	if len(removes) > 0 {
		expr += " REMOVE " + strings.Join(removes, ", ")
	}
	return expr, names, values
}
