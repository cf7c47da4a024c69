package mock

import (
	"context"

	"github.com/fwojciec/newspulse"
)

var (
	_ newspulse.SearchService = (*SearchService)(nil)
	_ newspulse.LinkHarvester = (*LinkHarvester)(nil)
)

// SearchService is a mock implementation of newspulse.SearchService.
type SearchService struct {
	SearchFn func(ctx context.Context, topic, site string) ([]string, error)
}

func (s *SearchService) Search(ctx context.Context, topic, site string) ([]string, error) {
	return s.SearchFn(ctx, topic, site)
}

// LinkHarvester is a mock implementation of newspulse.LinkHarvester.
type LinkHarvester struct {
	HarvestFn func(html, prefix string) ([]string, error)
}

func (h *LinkHarvester) Harvest(html, prefix string) ([]string, error) {
	return h.HarvestFn(html, prefix)
}
