package newspulse

import (
	"context"
	"strings"
)

// DefaultTargetSites returns the sites searched when none are configured.
func DefaultTargetSites() []string {
	return []string{"mckinsey.com", "deloitte.com", "bain.com"}
}

// SearchConfig describes one search-discovery run.
type SearchConfig struct {
	Topic       string
	TargetSites []string
}

// Validate returns an error if the config cannot drive a search.
func (c *SearchConfig) Validate() error {
	if strings.TrimSpace(c.Topic) == "" {
		return Errorf(EINVALID, "search topic required")
	}
	if len(c.TargetSites) == 0 {
		return Errorf(EINVALID, "at least one target site required")
	}
	for _, s := range c.TargetSites {
		if strings.TrimSpace(s) == "" {
			return Errorf(EINVALID, "target site must not be blank")
		}
	}
	return nil
}

// SearchService discovers article URLs through a search engine.
type SearchService interface {
	// Search returns validated result URLs on site matching topic.
	Search(ctx context.Context, topic, site string) ([]string, error)
}
