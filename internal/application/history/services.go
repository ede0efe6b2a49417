package history

import (
	"context"
	"fmt"

	"github.com/bryanwahyu/cad-detect/internal/domain/records"
)

// Service answers history searches.
type Service struct {
	Repo records.HistoryRepository
}

// SearchResult is one page of matches plus the counts behind
// "Showing N of M results".
type SearchResult struct {
	records.Page
	Query   string `json:"query"`
	Matched int    `json:"matched"`
	All     int    `json:"all"`
}

func (r SearchResult) Summary() string {
	return fmt.Sprintf("Showing %d of %d results", r.Matched, r.All)
}

// Search filters the full history by q and returns the requested page.
func (s *Service) Search(ctx context.Context, q string, page, pageSize int) (SearchResult, error) {
	all, err := s.Repo.List(ctx)
	if err != nil {
		return SearchResult{}, fmt.Errorf("list history: %w", err)
	}
	matched := records.FilterHistory(all, q)
	return SearchResult{
		Page:    records.Paginate(matched, page, pageSize),
		Query:   q,
		Matched: len(matched),
		All:     len(all),
	}, nil
}

func (s *Service) Get(ctx context.Context, id string) (*records.HistoryRecord, error) {
	return s.Repo.Get(ctx, id)
}
