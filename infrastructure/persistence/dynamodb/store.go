package dynamodb

import (
	"context"
	"errors"

	"insights-backend/domain/records"
	apperrors "insights-backend/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// Store implements the RecordStore port on DynamoDB. One table per
// entity, primary key is the single "pk" attribute. Non-key filtering is
// a scan with a filter expression; there are no secondary indexes, so
// this is only acceptable at small working-set sizes.
type Store struct {
	client *dynamodb.Client
	logger *zap.Logger
}

// NewStore creates a DynamoDB-backed record store
func NewStore(client *dynamodb.Client, logger *zap.Logger) *Store {
	return &Store{client: client, logger: logger}
}

// CreateItem persists an item via PutItem
func (s *Store) CreateItem(ctx context.Context, table string, item records.Item) (records.Item, error) {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return nil, apperrors.NewStoreError("create", err)
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(table),
		Item:      av,
	}

	if _, err := s.client.PutItem(ctx, input); err != nil {
		s.logger.Error("Failed to put item",
			zap.String("table", table),
			zap.Error(err),
		)
		return nil, apperrors.NewStoreError("create", err)
	}

	s.logger.Debug("Item created",
		zap.String("table", table),
		zap.Any("pk", item[records.KeyAttr]),
	)

	return item, nil
}

// GetItem fetches an item by primary key, nil when absent
func (s *Store) GetItem(ctx context.Context, table string, id string) (records.Item, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			records.KeyAttr: &types.AttributeValueMemberS{Value: id},
		},
	}

	result, err := s.client.GetItem(ctx, input)
	if err != nil {
		return nil, apperrors.NewStoreError("get", err)
	}

	if result.Item == nil {
		return nil, nil
	}

	var item records.Item
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return nil, apperrors.NewStoreError("get", err)
	}

	return item, nil
}

// QueryItems scans the table, filtering with an exact-match conjunction
// expression when a filter is supplied. Limit is applied after filtering
// because DynamoDB's scan limit counts pre-filter items.
func (s *Store) QueryItems(ctx context.Context, table string, filter records.Filter, limit int) ([]records.Item, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(table),
	}

	if len(filter) > 0 {
		var cond expression.ConditionBuilder
		first := true
		for field, value := range filter {
			c := expression.Name(field).Equal(expression.Value(value))
			if first {
				cond = c
				first = false
			} else {
				cond = cond.And(c)
			}
		}
		expr, err := expression.NewBuilder().WithFilter(cond).Build()
		if err != nil {
			return nil, apperrors.NewStoreError("query", err)
		}
		input.FilterExpression = expr.Filter()
		input.ExpressionAttributeNames = expr.Names()
		input.ExpressionAttributeValues = expr.Values()
	}

	items := make([]records.Item, 0)
	for {
		result, err := s.client.Scan(ctx, input)
		if err != nil {
			s.logger.Error("Failed to scan table",
				zap.String("table", table),
				zap.Error(err),
			)
			return nil, apperrors.NewStoreError("query", err)
		}

		for _, raw := range result.Items {
			var item records.Item
			if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
				return nil, apperrors.NewStoreError("query", err)
			}
			items = append(items, item)
			if limit > 0 && len(items) >= limit {
				return items, nil
			}
		}

		if result.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = result.LastEvaluatedKey
	}

	return items, nil
}

// UpdateItem merges partial fields via a SET expression. Returns nil
// when no item with that key exists.
func (s *Store) UpdateItem(ctx context.Context, table string, id string, partial records.Item) (records.Item, error) {
	if len(partial) == 0 {
		return s.GetItem(ctx, table, id)
	}

	var update expression.UpdateBuilder
	for field, value := range partial {
		update = update.Set(expression.Name(field), expression.Value(value))
	}
	cond := expression.Name(records.KeyAttr).AttributeExists()

	expr, err := expression.NewBuilder().WithUpdate(update).WithCondition(cond).Build()
	if err != nil {
		return nil, apperrors.NewStoreError("update", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			records.KeyAttr: &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	}

	result, err := s.client.UpdateItem(ctx, input)
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			// No item with this key
			return nil, nil
		}
		s.logger.Error("Failed to update item",
			zap.String("table", table),
			zap.String("pk", id),
			zap.Error(err),
		)
		return nil, apperrors.NewStoreError("update", err)
	}

	var item records.Item
	if err := attributevalue.UnmarshalMap(result.Attributes, &item); err != nil {
		return nil, apperrors.NewStoreError("update", err)
	}

	return item, nil
}
