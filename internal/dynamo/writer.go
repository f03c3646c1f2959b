package dynamo

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"github.com/Aziroshin/scraper/internal/record"
)

// Writer upserts country records. Safe for concurrent use; the underlying SDK
// client pools connections.
type Writer struct {
	api   API
	table string
	now   func() time.Time
}

// NewWriter creates a Writer targeting the given table.
func NewWriter(api API, table string) *Writer {
	return &Writer{api: api, table: table, now: time.Now}
}

// Write serializes the record into the table's typed-attribute shape and
// replaces the item keyed by the record's country. A non-empty testSuffix is
// appended to the key so test invocations never touch production items. The
// write timestamp is stamped here, once, in both RFC3339 UTC and a
// local-time form.
func (w *Writer) Write(ctx context.Context, rec *record.CountryRecord, testSuffix string) error {
	key := rec.Country + testSuffix
	rec.WrittenAt = w.now()

	general := make([]types.AttributeValue, len(rec.General))
	for i, line := range rec.General {
		general[i] = &types.AttributeValueMemberS{Value: line}
	}

	reception := make([]types.AttributeValue, len(rec.Reception))
	for i, p := range rec.Reception {
		reception[i] = &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{
			"name":    &types.AttributeValueMemberS{Value: p.Name},
			"lat":     &types.AttributeValueMemberS{Value: p.Lat},
			"lon":     &types.AttributeValueMemberS{Value: p.Lon},
			"address": &types.AttributeValueMemberS{Value: p.Address},
			"qr":      &types.AttributeValueMemberS{Value: p.QR},
		}}
	}

	item := map[string]types.AttributeValue{
		"country":        &types.AttributeValueMemberS{Value: key},
		"general":        &types.AttributeValueMemberL{Value: general},
		"reception":      &types.AttributeValueMemberL{Value: reception},
		"source":         &types.AttributeValueMemberS{Value: rec.Source},
		"writtenAt":      &types.AttributeValueMemberS{Value: rec.WrittenAt.UTC().Format(time.RFC3339)},
		"writtenAtLocal": &types.AttributeValueMemberS{Value: rec.WrittenAt.Format(time.UnixDate)},
	}

	_, err := w.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(w.table),
		Item:      item,
	})
	if err != nil {
		return &UnavailableError{Table: w.table, Country: key, Err: err}
	}

	zap.L().Info("record written",
		zap.String("component", "dynamo.writer"),
		zap.String("country", key),
		zap.Int("general", len(rec.General)),
		zap.Int("reception", len(rec.Reception)),
	)
	return nil
}
