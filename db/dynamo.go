package db

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/jsphweid/ukulala/model"
)

// Dynamo keeps preferences in a DynamoDB table whose hash key is "Tuning"
// and range key is "Kind".
type Dynamo struct {
	client dynamodbiface.DynamoDBAPI
	table  string
}

func NewDynamo(client dynamodbiface.DynamoDBAPI, table string) *Dynamo {
	return &Dynamo{client: client, table: table}
}

// OpenDynamo connects to DynamoDB at endpoint, e.g. a DynamoDB Local on
// http://localhost:8000. An empty endpoint uses the regular AWS one.
func OpenDynamo(endpoint, region, table string) (*Dynamo, error) {
	cfg := &aws.Config{Region: aws.String(region)}
	if endpoint != "" {
		cfg.Endpoint = aws.String(endpoint)
	}
	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create a new DynamoDB session: %w", err)
	}
	return NewDynamo(dynamodb.New(sess), table), nil
}

func itemKey(key model.PrefKey) map[string]*dynamodb.AttributeValue {
	return map[string]*dynamodb.AttributeValue{
		"Tuning": {S: aws.String(tuningPart(key))},
		"Kind":   {S: aws.String(string(key.Kind))},
	}
}

func (d *Dynamo) Load(ctx context.Context, key model.PrefKey) ([]byte, error) {
	out, err := d.client.GetItemWithContext(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(d.table),
		Key:       itemKey(key),
	})
	if err != nil {
		return nil, fmt.Errorf("error from DynamoDB loading %s/%s: %w", tuningPart(key), key.Kind, err)
	}
	v, ok := out.Item["Value"]
	if !ok || v.S == nil {
		return nil, fmt.Errorf("%s/%s: %w", tuningPart(key), key.Kind, ErrNotFound)
	}
	return []byte(*v.S), nil
}

func (d *Dynamo) Save(ctx context.Context, key model.PrefKey, value []byte) error {
	item := itemKey(key)
	item["Value"] = &dynamodb.AttributeValue{S: aws.String(string(value))}
	_, err := d.client.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(d.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("error from DynamoDB saving %s/%s: %w", tuningPart(key), key.Kind, err)
	}
	return nil
}

// CreateTable creates the preferences table if it does not exist yet.
func (d *Dynamo) CreateTable(ctx context.Context) error {
	_, err := d.client.DescribeTableWithContext(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(d.table),
	})
	if err == nil {
		return nil
	}
	_, err = d.client.CreateTableWithContext(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(d.table),
		AttributeDefinitions: []*dynamodb.AttributeDefinition{
			{AttributeName: aws.String("Tuning"), AttributeType: aws.String(dynamodb.ScalarAttributeTypeS)},
			{AttributeName: aws.String("Kind"), AttributeType: aws.String(dynamodb.ScalarAttributeTypeS)},
		},
		KeySchema: []*dynamodb.KeySchemaElement{
			{AttributeName: aws.String("Tuning"), KeyType: aws.String(dynamodb.KeyTypeHash)},
			{AttributeName: aws.String("Kind"), KeyType: aws.String(dynamodb.KeyTypeRange)},
		},
		BillingMode: aws.String(dynamodb.BillingModePayPerRequest),
	})
	if err != nil {
		return fmt.Errorf("error creating DynamoDB table %s: %w", d.table, err)
	}
	return nil
}

func (d *Dynamo) Close() error {
	return nil
}
