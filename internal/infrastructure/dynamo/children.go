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

// ChildRepo provides typed DynamoDB operations for the children table.
type ChildRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewChildRepo(client *dynamodb.Client, tableName string) *ChildRepo {
	return &ChildRepo{client: client, tableName: tableName}
}

func (r *ChildRepo) Put(ctx context.Context, c *domain.ChildProfile) error {
	item, err := attributevalue.MarshalMap(c)
	if err != nil {
		return fmt.Errorf("marshal child profile: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *ChildRepo) Get(ctx context.Context, childID string) (*domain.ChildProfile, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("child_id", childID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("child %s: %w", childID, domain.ErrNotFound)
	}
	var c domain.ChildProfile
	if err := attributevalue.UnmarshalMap(out.Item, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// ListByFamily queries the family_id-index GSI.
func (r *ChildRepo) ListByFamily(ctx context.Context, familyID string) ([]domain.ChildProfile, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("family_id-index"),
		KeyConditionExpression: aws.String("family_id = :fid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":fid": &types.AttributeValueMemberS{Value: familyID},
		},
	})
	if err != nil {
		return nil, err
	}
	var children []domain.ChildProfile
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &children); err != nil {
		return nil, err
	}
	return children, nil
}

// Resolver resolves a child ID to its family membership by joining the
// children and families tables. Implements the pipeline's FamilyResolver.
type Resolver struct {
	children *ChildRepo
	families *FamilyRepo
}

func NewResolver(children *ChildRepo, families *FamilyRepo) *Resolver {
	return &Resolver{children: children, families: families}
}

func (r *Resolver) Resolve(ctx context.Context, childID string) (*domain.FamilyMembership, error) {
	c, err := r.children.Get(ctx, childID)
	if err != nil {
		return nil, err
	}
	f, err := r.families.Get(ctx, c.FamilyID)
	if err != nil {
		return nil, err
	}
	return &domain.FamilyMembership{
		FamilyID:             f.FamilyID,
		DisplayName:          c.DisplayName,
		GuardianPrimaryEmail: f.GuardianPrimaryEmail,
		GuardianPrimaryPhone: f.GuardianPrimaryPhone,
	}, nil
}
