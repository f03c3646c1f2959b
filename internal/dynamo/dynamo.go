// Package dynamo persists assembled country records into DynamoDB. One item
// per country key, full replacement on every write.
package dynamo

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/rotisserie/eris"
)

// API is the subset of the DynamoDB client the writer needs.
type API interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// NewClient builds a DynamoDB client from the ambient AWS credential chain.
// endpoint, when non-empty, overrides the service endpoint (dynamodb-local).
func NewClient(ctx context.Context, region, endpoint string) (*dynamodb.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, eris.Wrap(err, "dynamo: load aws config")
	}
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}), nil
}

// UnavailableError reports a write the backend refused or never received
// (transport, auth, throttling surfaced as an SDK error). The writer does not
// retry; the invoking context decides.
type UnavailableError struct {
	Table   string
	Country string
	Err     error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("dynamo: put %q into %s: %v", e.Country, e.Table, e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// IsUnavailable reports whether any error in the chain is an UnavailableError.
func IsUnavailable(err error) bool {
	var ue *UnavailableError
	return errors.As(err, &ue)
}
