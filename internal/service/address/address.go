// internal/service/address/address.go
package address

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// Resolver answers read-only lookups over the Thai address hierarchy
// (province → district → subdistrict → zip). Implementations may cache; the
// interface isolates callers from any future refresh policy.
type Resolver interface {
	Provinces(ctx context.Context) ([]string, error)
	Districts(ctx context.Context, province string) ([]string, error)
	Subdistricts(ctx context.Context, province, district string) ([]string, error)
	ZipCode(ctx context.Context, province, district, subdistrict string) (string, error)
	LookupZip(ctx context.Context, zip string) ([]Place, error)
}

// Place is one resolved address triple.
type Place struct {
	Province    string `json:"province"`
	District    string `json:"district"`
	Subdistrict string `json:"subdistrict"`
}

// record mirrors one entry of the upstream dataset. The upstream zipcode is
// sometimes a number and sometimes a string, hence flexString.
type record struct {
	Province    string     `json:"province"`
	District    string     `json:"amphoe"`
	Subdistrict string     `json:"district"`
	Zip         flexString `json:"zipcode"`
}

type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

// Service loads the full dataset lazily from the first source URL that
// answers, then serves every lookup from the in-process copy for the rest of
// the process lifetime. The cache is never invalidated; staleness is an
// accepted tradeoff for this slowly changing data.
type Service struct {
	urls   []string
	client *http.Client
	logger *zap.Logger

	mu      sync.RWMutex
	records []record
	loaded  bool
}

func NewService(urls []string, client *http.Client, logger *zap.Logger) *Service {
	if client == nil {
		client = http.DefaultClient
	}
	return &Service{urls: urls, client: client, logger: logger}
}

func (s *Service) Provinces(ctx context.Context) ([]string, error) {
	records, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	seen := map[string]struct{}{}
	provinces := []string{}
	for _, r := range records {
		if _, ok := seen[r.Province]; ok {
			continue
		}
		seen[r.Province] = struct{}{}
		provinces = append(provinces, r.Province)
	}
	sort.Strings(provinces)
	return provinces, nil
}

func (s *Service) Districts(ctx context.Context, province string) ([]string, error) {
	if province == "" {
		return []string{}, nil
	}
	records, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	seen := map[string]struct{}{}
	districts := []string{}
	for _, r := range records {
		if r.Province != province {
			continue
		}
		if _, ok := seen[r.District]; ok {
			continue
		}
		seen[r.District] = struct{}{}
		districts = append(districts, r.District)
	}
	sort.Strings(districts)
	return districts, nil
}

func (s *Service) Subdistricts(ctx context.Context, province, district string) ([]string, error) {
	if province == "" || district == "" {
		return []string{}, nil
	}
	records, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	seen := map[string]struct{}{}
	subdistricts := []string{}
	for _, r := range records {
		if r.Province != province || r.District != district {
			continue
		}
		if _, ok := seen[r.Subdistrict]; ok {
			continue
		}
		seen[r.Subdistrict] = struct{}{}
		subdistricts = append(subdistricts, r.Subdistrict)
	}
	sort.Strings(subdistricts)
	return subdistricts, nil
}

func (s *Service) ZipCode(ctx context.Context, province, district, subdistrict string) (string, error) {
	if province == "" || district == "" || subdistrict == "" {
		return "", nil
	}
	records, err := s.load(ctx)
	if err != nil {
		return "", err
	}

	for _, r := range records {
		if r.Province == province && r.District == district && r.Subdistrict == subdistrict {
			return string(r.Zip), nil
		}
	}
	return "", nil
}

func (s *Service) LookupZip(ctx context.Context, zip string) ([]Place, error) {
	if zip == "" {
		return []Place{}, nil
	}
	records, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	places := []Place{}
	for _, r := range records {
		if string(r.Zip) == zip {
			places = append(places, Place{
				Province:    r.Province,
				District:    r.District,
				Subdistrict: r.Subdistrict,
			})
		}
	}
	return places, nil
}

// load returns the cached dataset, fetching it on first use. Concurrent
// readers share the read lock; the write lock is only taken for the one
// population pass.
func (s *Service) load(ctx context.Context) ([]record, error) {
	s.mu.RLock()
	if s.loaded {
		records := s.records
		s.mu.RUnlock()
		return records, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return s.records, nil
	}

	records, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	s.records = records
	s.loaded = true
	s.logger.Info("address dataset loaded", zap.Int("records", len(records)))
	return s.records, nil
}

// fetch walks the source URLs in order and returns the first usable dataset.
func (s *Service) fetch(ctx context.Context) ([]record, error) {
	var lastErr error
	for _, url := range s.urls {
		records, err := s.fetchOne(ctx, url)
		if err != nil {
			s.logger.Warn("address source failed",
				zap.String("url", url),
				zap.Error(err),
			)
			lastErr = err
			continue
		}
		return records, nil
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no address source configured")
	}
	return nil, fmt.Errorf("all address sources failed: %w", lastErr)
}

func (s *Service) fetchOne(ctx context.Context, url string) ([]record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var records []record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty dataset")
	}
	if records[0].Province == "" || records[0].District == "" {
		return nil, fmt.Errorf("dataset structure mismatch")
	}
	return records, nil
}
