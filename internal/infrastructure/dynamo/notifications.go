package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/family-safety-api/internal/domain"
)

// NotificationRepo provides typed DynamoDB operations for the guardian
// notifications table.
type NotificationRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewNotificationRepo(client *dynamodb.Client, tableName string) *NotificationRepo {
	return &NotificationRepo{client: client, tableName: tableName}
}

func (r *NotificationRepo) Put(ctx context.Context, n *domain.GuardianNotification) error {
	item, err := attributevalue.MarshalMap(n)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *NotificationRepo) Get(ctx context.Context, notificationID string) (*domain.GuardianNotification, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("notification_id", notificationID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("notification %s: %w", notificationID, domain.ErrNotFound)
	}
	var n domain.GuardianNotification
	if err := attributevalue.UnmarshalMap(out.Item, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

// GetByIncident queries the incident_id-index GSI. The dispatcher calls this
// before every insert to keep dispatch at-most-once per incident.
func (r *NotificationRepo) GetByIncident(ctx context.Context, incidentID string) (*domain.GuardianNotification, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("incident_id-index"),
		KeyConditionExpression: aws.String("incident_id = :iid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":iid": &types.AttributeValueMemberS{Value: incidentID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Items) == 0 {
		return nil, fmt.Errorf("notification for incident %s: %w", incidentID, domain.ErrNotFound)
	}
	var n domain.GuardianNotification
	if err := attributevalue.UnmarshalMap(out.Items[0], &n); err != nil {
		return nil, err
	}
	return &n, nil
}

// ListUnread queries the family_id-created_at-index GSI, newest first, and
// filters for notifications the given guardian role has not read. The other
// role's read state never affects the result.
func (r *NotificationRepo) ListUnread(ctx context.Context, familyID, role string) ([]domain.GuardianNotification, error) {
	flag, err := readFlagAttr(role)
	if err != nil {
		return nil, err
	}
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("family_id-created_at-index"),
		KeyConditionExpression: aws.String("family_id = :fid"),
		FilterExpression:       aws.String("#flag = :false"),
		ExpressionAttributeNames: map[string]string{
			"#flag": flag,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":fid":   &types.AttributeValueMemberS{Value: familyID},
			":false": &types.AttributeValueMemberBOOL{Value: false},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}
	var notifications []domain.GuardianNotification
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkRead sets only the given role's read flag.
func (r *NotificationRepo) MarkRead(ctx context.Context, notificationID, role string) error {
	flag, err := readFlagAttr(role)
	if err != nil {
		return err
	}
	ue, err := buildUpdateExpr(map[string]interface{}{flag: true})
	if err != nil {
		return err
	}
	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey("notification_id", notificationID),
		UpdateExpression:          aws.String(ue.Expr),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
	})
	return err
}

func readFlagAttr(role string) (string, error) {
	switch role {
	case domain.GuardianPrimary:
		return "read_by_primary", nil
	case domain.GuardianSecondary:
		return "read_by_secondary", nil
	default:
		return "", fmt.Errorf("unknown guardian role %q: %w", role, domain.ErrBadRequest)
	}
}
