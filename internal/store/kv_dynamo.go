package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoAPI is the subset of the DynamoDB client used by DynamoKV
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// DynamoKV stores entries in a DynamoDB table keyed by "pk".
type DynamoKV struct {
	client    DynamoAPI
	tableName string
}

type dynamoItem struct {
	PK      string `dynamodbav:"pk"`
	Value   string `dynamodbav:"value"`
	Version int64  `dynamodbav:"version"`
}

func (i dynamoItem) entry() Entry {
	return Entry{Key: i.PK, Value: json.RawMessage(i.Value), Version: i.Version}
}

const (
	dynamoExprSet          = "SET #value = :value ADD #version :one"
	dynamoCondNotExists    = "attribute_not_exists(pk)"
	dynamoCondVersionEq    = "#version = :expected"
	dynamoCondExists       = "attribute_exists(pk)"
	dynamoFilterBeginsWith = "begins_with(pk, :prefix)"
)

func NewDynamoKV(client DynamoAPI, tableName string) *DynamoKV {
	return &DynamoKV{client: client, tableName: tableName}
}

func dynamoKey(key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{"pk": &types.AttributeValueMemberS{Value: key}}
}

func (d *DynamoKV) Get(ctx context.Context, key string) (Entry, error) {
	out, err := d.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(d.tableName),
		Key:            dynamoKey(key),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return Entry{}, fmt.Errorf("getting item %s: %w", key, err)
	}
	if len(out.Item) == 0 {
		return Entry{}, ErrNotFound
	}

	var item dynamoItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return Entry{}, fmt.Errorf("unmarshaling item %s: %w", key, err)
	}
	return item.entry(), nil
}

func (d *DynamoKV) Set(ctx context.Context, key string, value json.RawMessage) (int64, error) {
	out, err := d.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(d.tableName),
		Key:              dynamoKey(key),
		UpdateExpression: aws.String(dynamoExprSet),
		ExpressionAttributeNames: map[string]string{
			"#value":   "value",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":value": &types.AttributeValueMemberS{Value: string(value)},
			":one":   &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return 0, fmt.Errorf("updating item %s: %w", key, err)
	}

	var item dynamoItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &item); err != nil {
		return 0, fmt.Errorf("unmarshaling item %s: %w", key, err)
	}
	return item.Version, nil
}

func (d *DynamoKV) SetIfVersion(ctx context.Context, key string, value json.RawMessage, version int64) (int64, error) {
	av, err := attributevalue.MarshalMap(dynamoItem{PK: key, Value: string(value), Version: version + 1})
	if err != nil {
		return 0, fmt.Errorf("marshaling item %s: %w", key, err)
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(d.tableName),
		Item:      av,
	}
	if version == 0 {
		input.ConditionExpression = aws.String(dynamoCondNotExists)
	} else {
		input.ConditionExpression = aws.String(dynamoCondVersionEq)
		input.ExpressionAttributeNames = map[string]string{"#version": "version"}
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(version, 10)},
		}
	}

	if _, err := d.client.PutItem(ctx, input); err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return 0, ErrVersionConflict
		}
		return 0, fmt.Errorf("putting item %s: %w", key, err)
	}
	return version + 1, nil
}

func (d *DynamoKV) Delete(ctx context.Context, key string) error {
	_, err := d.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(d.tableName),
		Key:                 dynamoKey(key),
		ConditionExpression: aws.String(dynamoCondExists),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return ErrNotFound
		}
		return fmt.Errorf("deleting item %s: %w", key, err)
	}
	return nil
}

func (d *DynamoKV) GetByPrefix(ctx context.Context, prefix string) ([]Entry, error) {
	entries := make([]Entry, 0)
	var startKey map[string]types.AttributeValue

	for {
		out, err := d.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(d.tableName),
			FilterExpression: aws.String(dynamoFilterBeginsWith),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":prefix": &types.AttributeValueMemberS{Value: prefix},
			},
			ConsistentRead:    aws.Bool(true),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("scanning prefix %s: %w", prefix, err)
		}

		var items []dynamoItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, fmt.Errorf("unmarshaling prefix %s: %w", prefix, err)
		}
		for _, item := range items {
			entries = append(entries, item.entry())
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sortEntries(entries)
	return entries, nil
}
