package source

import (
	"context"
	"errors"
	"log"

	"yujuris-api/internal/domain/entity"
	"yujuris-api/internal/domain/repository"
)

// Chain answers from the first source that succeeds, so a live index can sit
// in front of a local catalog of the same documents.
type Chain struct {
	name  string
	links []repository.LegalSource
}

func NewChain(name string, links ...repository.LegalSource) *Chain {
	return &Chain{name: name, links: links}
}

func (c *Chain) Name() string { return c.name }

func (c *Chain) Lookup(ctx context.Context, q entity.Query) ([]entity.Snippet, error) {
	var errs []error
	for _, link := range c.links {
		snippets, err := link.Lookup(ctx, q)
		if err == nil {
			return snippets, nil
		}
		log.Printf("[YUJURIS-SOURCE] %s: %s failed, trying next: %v", c.name, link.Name(), err)
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return nil, nil
	}
	return nil, errors.Join(errs...)
}
