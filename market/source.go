package market

import (
	"context"
	"fmt"

	"github.com/lixenwraith/token-bubbles/core"
)

// Source resolves a list name into entities
type Source struct {
	Lists  *Lists
	Client *Client
}

// NewSource pairs a list reader with a client
func NewSource(lists *Lists, client *Client) *Source {
	return &Source{Lists: lists, Client: client}
}

// Load reads list name and fetches its tokens for tf
// force bypasses the pair cache
func (s *Source) Load(ctx context.Context, name string, tf core.Timeframe, force bool) ([]core.Entity, error) {
	refs, err := s.Lists.Load(name)
	if err != nil {
		return nil, err
	}
	if force {
		s.Client.Invalidate(refs)
	}
	entities, err := s.Client.FetchList(ctx, refs, tf)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", name, err)
	}
	return entities, nil
}
