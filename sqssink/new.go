package sqssink

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// New creates an SQS sink that sends invocation outcome messages to
// the result queue named by the request.
func New(invUuid string, resQueueUrl string) *sqsResQueueSink {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion("eu-central-1"))
	if err != nil {
		panic(fmt.Sprintf("unable to load SDK config, %v", err))
	}

	return &sqsResQueueSink{
		sqsClient: sqs.NewFromConfig(cfg),
		queueUrl:  resQueueUrl,
		invUuid:   invUuid,
	}
}
