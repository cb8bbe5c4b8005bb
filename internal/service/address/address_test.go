package address

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const dataset = `[
	{"province": "กรุงเทพมหานคร", "amphoe": "เขตพระนคร", "district": "แขวงพระบรมมหาราชวัง", "zipcode": 10200},
	{"province": "กรุงเทพมหานคร", "amphoe": "เขตพระนคร", "district": "แขวงวังบูรพาภิรมย์", "zipcode": 10200},
	{"province": "กรุงเทพมหานคร", "amphoe": "เขตดุสิต", "district": "แขวงดุสิต", "zipcode": "10300"},
	{"province": "ชลบุรี", "amphoe": "เมืองชลบุรี", "district": "ตำบลบางปลาสร้อย", "zipcode": 20000}
]`

func newTestService(t *testing.T, urls []string) *Service {
	t.Helper()
	return NewService(urls, http.DefaultClient, zap.NewNop())
}

func TestLookupsFromSingleFetch(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(dataset))
	}))
	defer srv.Close()

	s := newTestService(t, []string{srv.URL})
	ctx := context.Background()

	provinces, err := s.Provinces(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"กรุงเทพมหานคร", "ชลบุรี"}, provinces)

	districts, err := s.Districts(ctx, "กรุงเทพมหานคร")
	require.NoError(t, err)
	assert.Equal(t, []string{"เขตดุสิต", "เขตพระนคร"}, districts)

	subdistricts, err := s.Subdistricts(ctx, "กรุงเทพมหานคร", "เขตพระนคร")
	require.NoError(t, err)
	assert.Len(t, subdistricts, 2)

	zip, err := s.ZipCode(ctx, "กรุงเทพมหานคร", "เขตดุสิต", "แขวงดุสิต")
	require.NoError(t, err)
	assert.Equal(t, "10300", zip)

	places, err := s.LookupZip(ctx, "10200")
	require.NoError(t, err)
	assert.Len(t, places, 2)
	assert.Equal(t, "เขตพระนคร", places[0].District)

	// Every lookup above was served from the one cached fetch.
	assert.Equal(t, int32(1), hits.Load())
}

func TestSourceFallback(t *testing.T) {
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer bad.Close()

	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(dataset))
	}))
	defer good.Close()

	s := newTestService(t, []string{bad.URL, good.URL})

	provinces, err := s.Provinces(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, provinces)
}

func TestAllSourcesFailing(t *testing.T) {
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not": "a list"}`))
	}))
	defer bad.Close()

	s := newTestService(t, []string{bad.URL})

	_, err := s.Provinces(context.Background())
	assert.Error(t, err)
}

func TestEmptyCriteria(t *testing.T) {
	// Empty inputs answer without touching the network.
	s := newTestService(t, nil)
	ctx := context.Background()

	districts, err := s.Districts(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, districts)

	zip, err := s.ZipCode(ctx, "", "", "")
	require.NoError(t, err)
	assert.Equal(t, "", zip)

	places, err := s.LookupZip(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, places)
}

func TestConcurrentReaders(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(dataset))
	}))
	defer srv.Close()

	s := newTestService(t, []string{srv.URL})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Provinces(context.Background())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), hits.Load())
}
