package services

import (
	"strings"
	"sync"

	"farmpro/errors"
	"farmpro/models"
	"farmpro/services/logger"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"gorm.io/gorm"
)

// SuggestService offers fuzzy completion of earning sources and expense
// categories from the caller's own ledger history. Indexes are built lazily
// per farmer and rebuilt nightly by the cron job.
type SuggestService struct {
	DB  *gorm.DB
	Log logger.Logger

	mu         sync.RWMutex
	sources    map[string]*suggestIndex
	categories map[string]*suggestIndex
}

func NewSuggestService(db *gorm.DB) *SuggestService {
	return &SuggestService{
		DB:         db,
		Log:        logger.NewDefaultLogger(logger.InfoLevel),
		sources:    make(map[string]*suggestIndex),
		categories: make(map[string]*suggestIndex),
	}
}

// normalizeTerm folds case and transliterates to ASCII so Devanagari and
// accented labels still match loosely typed queries.
func normalizeTerm(s string) string {
	return strings.ToLower(strings.TrimSpace(unidecode.Unidecode(s)))
}

type suggestIndex struct {
	cm        *closestmatch.ClosestMatch
	originals map[string]string
}

func buildIndex(values []string) *suggestIndex {
	originals := make(map[string]string, len(values))
	keys := make([]string, 0, len(values))
	for _, v := range values {
		k := normalizeTerm(v)
		if k == "" {
			continue
		}
		if _, ok := originals[k]; !ok {
			originals[k] = v
			keys = append(keys, k)
		}
	}
	return &suggestIndex{
		cm:        closestmatch.New(keys, []int{2, 3, 4}),
		originals: originals,
	}
}

func (idx *suggestIndex) lookup(q string, n int) []string {
	out := make([]string, 0, n)
	for _, k := range idx.cm.ClosestN(normalizeTerm(q), n) {
		if k == "" {
			continue
		}
		if orig, ok := idx.originals[k]; ok {
			out = append(out, orig)
		}
	}
	return out
}

func (s *SuggestService) sourceIndex(farmerID string) (*suggestIndex, error) {
	s.mu.RLock()
	idx, ok := s.sources[farmerID]
	s.mu.RUnlock()
	if ok {
		return idx, nil
	}

	var values []string
	if err := s.DB.Model(&models.Earning{}).
		Where("farmer_id = ?", farmerID).
		Distinct().
		Pluck("source", &values).Error; err != nil {
		return nil, errors.Internal("Failed to load earning sources", err)
	}

	idx = buildIndex(values)
	s.mu.Lock()
	s.sources[farmerID] = idx
	s.mu.Unlock()
	return idx, nil
}

func (s *SuggestService) categoryIndex(farmerID string) (*suggestIndex, error) {
	s.mu.RLock()
	idx, ok := s.categories[farmerID]
	s.mu.RUnlock()
	if ok {
		return idx, nil
	}

	var values []string
	if err := s.DB.Model(&models.Expense{}).
		Where("farmer_id = ?", farmerID).
		Distinct().
		Pluck("category", &values).Error; err != nil {
		return nil, errors.Internal("Failed to load expense categories", err)
	}

	idx = buildIndex(values)
	s.mu.Lock()
	s.categories[farmerID] = idx
	s.mu.Unlock()
	return idx, nil
}

// SuggestSources returns up to n earning sources closest to q.
func (s *SuggestService) SuggestSources(farmerID, q string, n int) ([]string, error) {
	idx, err := s.sourceIndex(farmerID)
	if err != nil {
		return nil, err
	}
	return idx.lookup(q, n), nil
}

// SuggestCategories returns up to n expense categories closest to q.
func (s *SuggestService) SuggestCategories(farmerID, q string, n int) ([]string, error) {
	idx, err := s.categoryIndex(farmerID)
	if err != nil {
		return nil, err
	}
	return idx.lookup(q, n), nil
}

// Rebuild refreshes every cached index from the ledger tables. Run nightly.
func (s *SuggestService) Rebuild() error {
	type row struct {
		FarmerID string
		Value    string
	}

	var earningRows []row
	if err := s.DB.Model(&models.Earning{}).
		Select("farmer_id, source AS value").
		Distinct().
		Scan(&earningRows).Error; err != nil {
		return errors.Internal("Failed to load earning sources", err)
	}

	var expenseRows []row
	if err := s.DB.Model(&models.Expense{}).
		Select("farmer_id, category AS value").
		Distinct().
		Scan(&expenseRows).Error; err != nil {
		return errors.Internal("Failed to load expense categories", err)
	}

	group := func(rows []row) map[string]*suggestIndex {
		byFarmer := make(map[string][]string)
		for _, r := range rows {
			byFarmer[r.FarmerID] = append(byFarmer[r.FarmerID], r.Value)
		}
		indexes := make(map[string]*suggestIndex, len(byFarmer))
		for farmerID, values := range byFarmer {
			indexes[farmerID] = buildIndex(values)
		}
		return indexes
	}

	sources := group(earningRows)
	categories := group(expenseRows)

	s.mu.Lock()
	s.sources = sources
	s.categories = categories
	s.mu.Unlock()

	s.Log.Info("Rebuilt suggestion indexes for %d farmers (sources) and %d farmers (categories)",
		len(sources), len(categories))
	return nil
}
