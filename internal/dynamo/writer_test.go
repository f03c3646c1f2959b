package dynamo

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aziroshin/scraper/internal/record"
)

// fakeAPI captures PutItem inputs.
type fakeAPI struct {
	inputs []*dynamodb.PutItemInput
	err    error
}

func (f *fakeAPI) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.inputs = append(f.inputs, in)
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.PutItemOutput{}, nil
}

func sampleRecord() *record.CountryRecord {
	return record.Assemble(
		"poland-pl",
		[]string{"A", "B"},
		[]record.ReceptionPoint{
			{Name: "Korczowa", Lat: "49.9535", Lon: "23.1033", Address: "Korczowa 91", QR: "QR-17"},
			{Name: "Medyka"},
		},
		"https://www.gov.pl/web/example",
	)
}

func stringAttr(t *testing.T, item map[string]types.AttributeValue, key string) string {
	t.Helper()
	attr, ok := item[key]
	require.True(t, ok, "missing attribute %q", key)
	s, ok := attr.(*types.AttributeValueMemberS)
	require.True(t, ok, "attribute %q is not S-typed", key)
	return s.Value
}

func TestWrite_ItemShape(t *testing.T) {
	api := &fakeAPI{}
	w := NewWriter(api, "TechForUkraine-CIG")
	fixed := time.Date(2022, 3, 14, 9, 26, 53, 0, time.UTC)
	w.now = func() time.Time { return fixed }

	err := w.Write(context.Background(), sampleRecord(), "")
	require.NoError(t, err)
	require.Len(t, api.inputs, 1)

	in := api.inputs[0]
	assert.Equal(t, "TechForUkraine-CIG", *in.TableName)

	item := in.Item
	assert.Equal(t, "poland-pl", stringAttr(t, item, "country"))
	assert.Equal(t, "https://www.gov.pl/web/example", stringAttr(t, item, "source"))
	assert.Equal(t, "2022-03-14T09:26:53Z", stringAttr(t, item, "writtenAt"))
	assert.Equal(t, fixed.Format(time.UnixDate), stringAttr(t, item, "writtenAtLocal"))
	assert.Len(t, item, 6)

	general, ok := item["general"].(*types.AttributeValueMemberL)
	require.True(t, ok)
	require.Len(t, general.Value, 2)
	assert.Equal(t, "A", general.Value[0].(*types.AttributeValueMemberS).Value)
	assert.Equal(t, "B", general.Value[1].(*types.AttributeValueMemberS).Value)
}

func TestWrite_ReceptionCarriesExactlyFiveStringKeys(t *testing.T) {
	api := &fakeAPI{}
	w := NewWriter(api, "t")

	require.NoError(t, w.Write(context.Background(), sampleRecord(), ""))

	reception, ok := api.inputs[0].Item["reception"].(*types.AttributeValueMemberL)
	require.True(t, ok)
	require.Len(t, reception.Value, 2)

	for _, el := range reception.Value {
		m, ok := el.(*types.AttributeValueMemberM)
		require.True(t, ok, "reception element is not M-typed")
		require.Len(t, m.Value, 5)
		for _, key := range []string{"name", "lat", "lon", "address", "qr"} {
			attr, ok := m.Value[key]
			require.True(t, ok, "missing reception key %q", key)
			_, ok = attr.(*types.AttributeValueMemberS)
			assert.True(t, ok, "reception key %q is not S-typed", key)
		}
	}

	// Fields the source left empty are present as empty strings, not absent.
	medyka := reception.Value[1].(*types.AttributeValueMemberM).Value
	assert.Equal(t, "", medyka["lat"].(*types.AttributeValueMemberS).Value)
	assert.Equal(t, "", medyka["address"].(*types.AttributeValueMemberS).Value)
	assert.Equal(t, "", medyka["qr"].(*types.AttributeValueMemberS).Value)
}

func TestWrite_TestSuffixIsolatesKey(t *testing.T) {
	api := &fakeAPI{}
	w := NewWriter(api, "t")

	require.NoError(t, w.Write(context.Background(), sampleRecord(), "-t1"))
	require.NoError(t, w.Write(context.Background(), sampleRecord(), ""))

	assert.Equal(t, "poland-pl-t1", stringAttr(t, api.inputs[0].Item, "country"))
	assert.Equal(t, "poland-pl", stringAttr(t, api.inputs[1].Item, "country"))
}

func TestWrite_EmptyRecord(t *testing.T) {
	api := &fakeAPI{}
	w := NewWriter(api, "t")

	rec := record.Assemble("slovakia-sk", nil, nil, "")
	require.NoError(t, w.Write(context.Background(), rec, ""))

	item := api.inputs[0].Item
	general := item["general"].(*types.AttributeValueMemberL)
	reception := item["reception"].(*types.AttributeValueMemberL)
	assert.Empty(t, general.Value)
	assert.Empty(t, reception.Value)
	assert.Equal(t, "", stringAttr(t, item, "source"))
}

func TestWrite_BackendFailure(t *testing.T) {
	api := &fakeAPI{err: eris.New("connection refused")}
	w := NewWriter(api, "t")

	err := w.Write(context.Background(), sampleRecord(), "")
	require.Error(t, err)
	assert.True(t, IsUnavailable(err))
	assert.Contains(t, err.Error(), "poland-pl")
}
