package scraper

import (
	"context"
	"sync"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aziroshin/scraper/internal/record"
)

// mockStore records writes; optionally fails for chosen countries.
type mockStore struct {
	mu      sync.Mutex
	writes  []writtenRecord
	failFor map[string]bool
}

type writtenRecord struct {
	rec    *record.CountryRecord
	suffix string
}

func (s *mockStore) Write(_ context.Context, rec *record.CountryRecord, testSuffix string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failFor[rec.Country] {
		return eris.Errorf("store down for %s", rec.Country)
	}
	s.writes = append(s.writes, writtenRecord{rec: rec, suffix: testSuffix})
	return nil
}

func (s *mockStore) countries() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.writes))
	for i, w := range s.writes {
		out[i] = w.rec.Country
	}
	return out
}

func TestEngine_Run_WritesEverySelectedCountry(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&mockScraper{name: "hungary-hu"})
	reg.Register(&mockScraper{name: "moldova-ro"})
	store := &mockStore{}

	engine := NewEngine(testFetcher(), store, reg, 2)
	summary, err := engine.Run(context.Background(), RunOpts{})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Written)
	assert.Equal(t, 0, summary.Failed)
	assert.ElementsMatch(t, []string{"hungary-hu", "moldova-ro"}, store.countries())
}

func TestEngine_Run_OneFailureDoesNotStopOthers(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&mockScraper{name: "hungary-hu", err: parseErrorf("hungary-hu", "layout changed")})
	reg.Register(&mockScraper{name: "moldova-ro"})
	reg.Register(&mockScraper{name: "slovakia-sk"})
	store := &mockStore{}

	engine := NewEngine(testFetcher(), store, reg, 1)
	summary, err := engine.Run(context.Background(), RunOpts{})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Written)
	assert.Equal(t, 1, summary.Failed)
	// Nothing gets written for the failed country.
	assert.NotContains(t, store.countries(), "hungary-hu")
}

func TestEngine_Run_StoreFailureCountsAsFailed(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&mockScraper{name: "poland-pl"})
	store := &mockStore{failFor: map[string]bool{"poland-pl": true}}

	engine := NewEngine(testFetcher(), store, reg, 1)
	summary, err := engine.Run(context.Background(), RunOpts{})
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Written)
	assert.Equal(t, 1, summary.Failed)
}

func TestEngine_Run_TestSuffixReachesStore(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&mockScraper{name: "poland-pl"})
	store := &mockStore{}

	engine := NewEngine(testFetcher(), store, reg, 1)
	_, err := engine.Run(context.Background(), RunOpts{TestSuffix: "-t1"})
	require.NoError(t, err)

	require.Len(t, store.writes, 1)
	assert.Equal(t, "-t1", store.writes[0].suffix)
}

func TestEngine_Run_SourceSelection(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&mockScraper{name: "a"})
	reg.Register(&mockScraper{name: "b"})
	store := &mockStore{}

	engine := NewEngine(testFetcher(), store, reg, 1)
	summary, err := engine.Run(context.Background(), RunOpts{Sources: []string{"b"}})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Written)
	assert.Equal(t, []string{"b"}, store.countries())
}

func TestEngine_Run_UnknownSource(t *testing.T) {
	engine := NewEngine(testFetcher(), &mockStore{}, NewRegistry(), 1)
	_, err := engine.Run(context.Background(), RunOpts{Sources: []string{"nope"}})
	require.Error(t, err)
}
