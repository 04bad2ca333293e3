package notifications

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"strings"

	"mechbid/internal/domain/entities"
	"mechbid/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	snstypes "github.com/aws/aws-sdk-go-v2/service/sns/types"
)

// SNSPublisher delivers domain events to an SNS topic consumed by the
// notification and messaging services. Delivery is best effort; the
// coordinator logs and moves on when a publish fails.
//
// When SNS_TOPIC_ARN is unset the publisher degrades to log-only, which keeps
// local stacks working without AWS wiring.

type SNSPublisher struct {
	client   *sns.Client
	topicARN string
}

var _ interfaces.IEventPublisher = (*SNSPublisher)(nil)

func NewSNSPublisher(client *sns.Client) *SNSPublisher {
	topicARN := strings.TrimSpace(os.Getenv("SNS_TOPIC_ARN"))
	if topicARN == "" {
		log.Printf("[notifications][sns] SNS_TOPIC_ARN not set; events will be logged only")
	}
	return &SNSPublisher{client: client, topicARN: topicARN}
}

func (p *SNSPublisher) Publish(ctx context.Context, event entities.DomainEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if p.topicARN == "" || p.client == nil {
		log.Printf("[notifications][sns] event type=%s job_id=%s payload=%s", event.Type, event.JobID, body)
		return nil
	}

	_, err = p.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(p.topicARN),
		Message:  aws.String(string(body)),
		MessageAttributes: map[string]snstypes.MessageAttributeValue{
			"event_type": {
				DataType:    aws.String("String"),
				StringValue: aws.String(event.Type),
			},
		},
	})
	if err != nil {
		return err
	}
	log.Printf("[notifications][sns] published type=%s job_id=%s", event.Type, event.JobID)
	return nil
}
