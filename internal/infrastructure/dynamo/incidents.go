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

// IncidentRepo provides typed DynamoDB operations for the safety incidents
// table. Incidents are append-only: nothing here updates a row after creation
// except the guardian review flag.
type IncidentRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewIncidentRepo(client *dynamodb.Client, tableName string) *IncidentRepo {
	return &IncidentRepo{client: client, tableName: tableName}
}

func (r *IncidentRepo) Put(ctx context.Context, inc *domain.SafetyIncident) error {
	item, err := attributevalue.MarshalMap(inc)
	if err != nil {
		return fmt.Errorf("marshal incident: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *IncidentRepo) Get(ctx context.Context, incidentID string) (*domain.SafetyIncident, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("incident_id", incidentID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("incident %s: %w", incidentID, domain.ErrNotFound)
	}
	var inc domain.SafetyIncident
	if err := attributevalue.UnmarshalMap(out.Item, &inc); err != nil {
		return nil, err
	}
	return &inc, nil
}

// ListByFamily queries the family_id-created_at-index GSI, newest first.
// Concurrent escalation chains may persist incidents out of send order, so
// creation time is the only meaningful ordering for the review surface.
func (r *IncidentRepo) ListByFamily(ctx context.Context, familyID string) ([]domain.SafetyIncident, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("family_id-created_at-index"),
		KeyConditionExpression: aws.String("family_id = :fid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":fid": &types.AttributeValueMemberS{Value: familyID},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}
	var incidents []domain.SafetyIncident
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &incidents); err != nil {
		return nil, err
	}
	return incidents, nil
}

// MarkReviewed sets parent_reviewed. The pipeline never calls this; it backs
// the guardian review action only.
func (r *IncidentRepo) MarkReviewed(ctx context.Context, incidentID string) error {
	ue, err := buildUpdateExpr(map[string]interface{}{"parent_reviewed": true})
	if err != nil {
		return err
	}
	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey("incident_id", incidentID),
		UpdateExpression:          aws.String(ue.Expr),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
	})
	return err
}
