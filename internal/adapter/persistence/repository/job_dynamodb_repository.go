package repository

import (
	"context"
	"errors"
	"time"

	"mechbid/internal/domain/entities"
	"mechbid/internal/domain/money"
	"mechbid/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultJobsTableName = "jobs"

type bidItem struct {
	ID              string `dynamodbav:"id"`
	MechanicID      string `dynamodbav:"mechanic_id"`
	AmountCents     int64  `dynamodbav:"amount_cents"`
	Message         string `dynamodbav:"message,omitempty"`
	DurationMinutes int    `dynamodbav:"duration_minutes"`
	Status          string `dynamodbav:"status"`
	CreatedAt       string `dynamodbav:"created_at"`
}

type changeOrderItem struct {
	ID               string `dynamodbav:"id"`
	Title            string `dynamodbav:"title"`
	Description      string `dynamodbav:"description,omitempty"`
	Reason           string `dynamodbav:"reason,omitempty"`
	TotalAmountCents int64  `dynamodbav:"total_amount_cents"`
	Status           string `dynamodbav:"status"`
	MechanicName     string `dynamodbav:"mechanic_name,omitempty"`
	RejectionReason  string `dynamodbav:"rejection_reason,omitempty"`
	CreatedAt        string `dynamodbav:"created_at"`
	ExpiresAt        string `dynamodbav:"expires_at"`
}

type escrowItem struct {
	BidID             string `dynamodbav:"bid_id"`
	DepositCents      int64  `dynamodbav:"deposit_cents"`
	FinalBalanceCents int64  `dynamodbav:"final_balance_cents"`
	PaymentIntentID   string `dynamodbav:"payment_intent_id"`
	Status            string `dynamodbav:"status"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

type jobItem struct {
	ID                 string            `dynamodbav:"id"`
	CustomerID         string            `dynamodbav:"customer_id"`
	Category           string            `dynamodbav:"category"`
	Status             string            `dynamodbav:"status"`
	EstimatedCostCents int64             `dynamodbav:"estimated_cost_cents"`
	SelectedMechanicID string            `dynamodbav:"selected_mechanic_id,omitempty"`
	SelectedBidID      string            `dynamodbav:"selected_bid_id,omitempty"`
	CancellationReason string            `dynamodbav:"cancellation_reason,omitempty"`
	Bids               []bidItem         `dynamodbav:"bids,omitempty"`
	ChangeOrders       []changeOrderItem `dynamodbav:"change_orders,omitempty"`
	Escrow             *escrowItem       `dynamodbav:"escrow,omitempty"`
	CreatedAt          string            `dynamodbav:"created_at"`
	UpdatedAt          string            `dynamodbav:"updated_at"`
	Version            int64             `dynamodbav:"version"`
}

// JobDynamoRepository persists the Job aggregate in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The whole aggregate (bids, change orders, escrow) lives in one item, so a
// single conditional PutItem gives the all-or-nothing save the coordinator
// relies on. The version attribute is the optimistic write guard: Save only
// succeeds against the version it loaded, otherwise the caller observes a
// version conflict.

type JobDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IJobRepository = (*JobDynamoRepository)(nil)

func NewJobDynamoRepository(ddb *dynamodb.Client) *JobDynamoRepository {
	return &JobDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOBS_TABLE", defaultJobsTableName),
	}
}

func (r *JobDynamoRepository) Create(ctx context.Context, job entities.Job) (entities.Job, error) {
	av, err := attributevalue.MarshalMap(toJobItem(job))
	if err != nil {
		return entities.Job{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Job{}, err
	}
	return job, nil
}

func (r *JobDynamoRepository) GetByID(ctx context.Context, id string) (entities.Job, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Job{}, err
	}
	if len(out.Item) == 0 {
		return entities.Job{}, nil
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func (r *JobDynamoRepository) Save(ctx context.Context, job entities.Job) (entities.Job, error) {
	expected := job.Version
	job.Version = expected + 1

	av, err := attributevalue.MarshalMap(toJobItem(job))
	if err != nil {
		return entities.Job{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: int64ToString(expected)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Job{}, interfaces.ErrVersionConflict
		}
		return entities.Job{}, err
	}
	return job, nil
}

func toJobItem(j entities.Job) jobItem {
	it := jobItem{
		ID:                 j.ID,
		CustomerID:         j.CustomerID,
		Category:           j.Category,
		Status:             string(j.Status),
		EstimatedCostCents: j.EstimatedCost.Cents(),
		SelectedMechanicID: j.SelectedMechanicID,
		SelectedBidID:      j.SelectedBidID,
		CancellationReason: string(j.CancellationReason),
		CreatedAt:          formatTime(j.CreatedAt),
		UpdatedAt:          formatTime(j.UpdatedAt),
		Version:            j.Version,
	}
	for _, b := range j.Bids {
		it.Bids = append(it.Bids, bidItem{
			ID:              b.ID,
			MechanicID:      b.MechanicID,
			AmountCents:     b.Amount.Cents(),
			Message:         b.Message,
			DurationMinutes: b.EstimatedDurationMinutes,
			Status:          string(b.Status),
			CreatedAt:       formatTime(b.CreatedAt),
		})
	}
	for _, co := range j.ChangeOrders {
		it.ChangeOrders = append(it.ChangeOrders, changeOrderItem{
			ID:               co.ID,
			Title:            co.Title,
			Description:      co.Description,
			Reason:           co.Reason,
			TotalAmountCents: co.TotalAmount.Cents(),
			Status:           string(co.Status),
			MechanicName:     co.MechanicName,
			RejectionReason:  co.RejectionReason,
			CreatedAt:        formatTime(co.CreatedAt),
			ExpiresAt:        formatTime(co.ExpiresAt),
		})
	}
	if j.Escrow != nil {
		it.Escrow = &escrowItem{
			BidID:             j.Escrow.BidID,
			DepositCents:      j.Escrow.DepositAmount.Cents(),
			FinalBalanceCents: j.Escrow.FinalBalance.Cents(),
			PaymentIntentID:   j.Escrow.PaymentIntentID,
			Status:            string(j.Escrow.Status),
			CreatedAt:         formatTime(j.Escrow.CreatedAt),
			UpdatedAt:         formatTime(j.Escrow.UpdatedAt),
		}
	}
	return it
}

func fromJobItem(it jobItem) entities.Job {
	j := entities.Job{
		ID:                 it.ID,
		CustomerID:         it.CustomerID,
		Category:           it.Category,
		Status:             entities.JobStatus(it.Status),
		EstimatedCost:      money.FromCents(it.EstimatedCostCents),
		SelectedMechanicID: it.SelectedMechanicID,
		SelectedBidID:      it.SelectedBidID,
		CancellationReason: entities.CancellationReason(it.CancellationReason),
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
		Version:            it.Version,
	}
	for _, b := range it.Bids {
		j.Bids = append(j.Bids, entities.Bid{
			ID:                       b.ID,
			JobID:                    it.ID,
			MechanicID:               b.MechanicID,
			Amount:                   money.FromCents(b.AmountCents),
			Message:                  b.Message,
			EstimatedDurationMinutes: b.DurationMinutes,
			Status:                   entities.BidStatus(b.Status),
			CreatedAt:                parseTime(b.CreatedAt),
		})
	}
	for _, co := range it.ChangeOrders {
		j.ChangeOrders = append(j.ChangeOrders, entities.ChangeOrder{
			ID:              co.ID,
			JobID:           it.ID,
			Title:           co.Title,
			Description:     co.Description,
			Reason:          co.Reason,
			TotalAmount:     money.FromCents(co.TotalAmountCents),
			Status:          entities.ChangeOrderStatus(co.Status),
			MechanicName:    co.MechanicName,
			RejectionReason: co.RejectionReason,
			CreatedAt:       parseTime(co.CreatedAt),
			ExpiresAt:       parseTime(co.ExpiresAt),
		})
	}
	if it.Escrow != nil {
		j.Escrow = &entities.EscrowTransaction{
			JobID:           it.ID,
			BidID:           it.Escrow.BidID,
			DepositAmount:   money.FromCents(it.Escrow.DepositCents),
			FinalBalance:    money.FromCents(it.Escrow.FinalBalanceCents),
			PaymentIntentID: it.Escrow.PaymentIntentID,
			Status:          entities.EscrowStatus(it.Escrow.Status),
			CreatedAt:       parseTime(it.Escrow.CreatedAt),
			UpdatedAt:       parseTime(it.Escrow.UpdatedAt),
		}
	}
	return j
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}
