package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"

	"github.com/roceil/SL-Delivery-Line-Liff/internal/aws"
)

// ErrStatusMismatch indicates a conditional status update found a different
// current status than expected.
var ErrStatusMismatch = errors.New("status mismatch/conditional failed")

// Cache mirrors orders fetched from the Backstation into DynamoDB so the app
// can show the last known state when the Backstation is unreachable. The
// mirror is best-effort; the Backstation copy always wins.
type Cache struct {
	client    aws.DynamoDBAPI
	tableName string
	ttlWindow time.Duration
	nowFunc   func() time.Time
}

// NewCache returns a Cache bound to a table. ttlWindow controls the expires_at
// TTL attribute stamped on every mirrored item.
func NewCache(client aws.DynamoDBAPI, tableName string, ttlWindow time.Duration) *Cache {
	return &Cache{
		client:    client,
		tableName: tableName,
		ttlWindow: ttlWindow,
		nowFunc:   time.Now,
	}
}

// Put mirrors an order, overwriting any previous copy.
func (c *Cache) Put(ctx context.Context, order Order) error {
	now := c.nowFunc()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	order.UpdatedAt = now

	item, err := attributevalue.MarshalMap(order)
	if err != nil {
		return fmt.Errorf("marshal order item: %w", err)
	}
	if c.ttlWindow > 0 {
		expires := now.Add(c.ttlWindow).Unix()
		item["expires_at"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", expires)}
	}

	_, err = c.client.PutItem(ctx, &dyn.PutItemInput{
		TableName: &c.tableName,
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("put item: %w", err)
	}
	return nil
}

// Get fetches a mirrored order by id. Returns (nil, nil) if not found.
func (c *Cache) Get(ctx context.Context, orderID string) (*Order, error) {
	out, err := c.client.GetItem(ctx, &dyn.GetItemInput{
		TableName: &c.tableName,
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	var o Order
	if err := attributevalue.UnmarshalMap(out.Item, &o); err != nil {
		return nil, fmt.Errorf("unmarshal order: %w", err)
	}
	return &o, nil
}

// UpdateStatus conditionally updates the mirrored status from expected ->
// newStatus. Returns ErrStatusMismatch if the condition failed.
func (c *Cache) UpdateStatus(ctx context.Context, orderID, expectedStatus, newStatus string) error {
	now := c.nowFunc()
	input := &dyn.UpdateItemInput{
		TableName: &c.tableName,
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		UpdateExpression:         dynString("SET #s = :new, updated_at = :ua"),
		ExpressionAttributeNames: map[string]string{"#s": "status"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":new":      &types.AttributeValueMemberS{Value: newStatus},
			":ua":       &types.AttributeValueMemberS{Value: now.Format(time.RFC3339)},
			":expected": &types.AttributeValueMemberS{Value: expectedStatus},
		},
		ConditionExpression: dynString("#s = :expected"),
	}

	_, err := c.client.UpdateItem(ctx, input)
	if err != nil {
		var cond *types.ConditionalCheckFailedException
		if errors.As(err, &cond) {
			return ErrStatusMismatch
		}
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "ConditionalCheckFailedException" {
			return ErrStatusMismatch
		}
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

func dynString(s string) *string { return &s }
