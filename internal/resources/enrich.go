// Package resources fills in missing metadata on roadmap learning resources
// by fetching their pages. Enrichment is best effort: a resource whose page
// cannot be reached keeps whatever title it had.
package resources

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/mtruong/skillswap/internal/fetch"
	"github.com/mtruong/skillswap/internal/types"
)

// defaultConcurrency bounds parallel page fetches per roadmap.
const defaultConcurrency = 4

// Fetcher retrieves a URL. Matches fetch.URL; injectable for tests.
type Fetcher func(ctx context.Context, url string, opts *fetch.Options) (*fetch.Result, error)

// Enricher fills empty resource titles from page metadata.
type Enricher struct {
	fetcher     Fetcher
	opts        *fetch.Options
	concurrency int
}

// Option customizes an Enricher.
type Option func(*Enricher)

// WithFetcher overrides the page fetcher.
func WithFetcher(f Fetcher) Option {
	return func(e *Enricher) { e.fetcher = f }
}

// WithConcurrency bounds the number of parallel fetches.
func WithConcurrency(n int) Option {
	return func(e *Enricher) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

// NewEnricher creates an Enricher with default fetching behavior.
func NewEnricher(opts ...Option) *Enricher {
	e := &Enricher{
		fetcher:     fetch.URL,
		opts:        fetch.DefaultOptions(),
		concurrency: defaultConcurrency,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EnrichRoadmap fetches the page behind every resource that has a URL but no
// title and fills the title in place. Fetch failures are logged and skipped;
// the roadmap is always returned usable.
func (e *Enricher) EnrichRoadmap(ctx context.Context, rm *types.Roadmap) {
	if rm == nil {
		return
	}

	type target struct {
		step, res int
	}
	var targets []target
	for i := range rm.Steps {
		for j := range rm.Steps[i].Resources {
			r := &rm.Steps[i].Resources[j]
			if r.URL != "" && r.Title == "" {
				targets = append(targets, target{step: i, res: j})
			}
		}
	}
	if len(targets) == 0 {
		return
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	for _, tg := range targets {
		res := &rm.Steps[tg.step].Resources[tg.res]
		g.Go(func() error {
			title, err := e.titleFor(ctx, res.URL)
			if err != nil {
				log.Printf("resource enrichment skipped for %s: %v", res.URL, err)
				return nil
			}
			if title != "" {
				res.Title = title
			}
			return nil
		})
	}

	// Workers never return errors; Wait only joins them.
	_ = g.Wait()
}

func (e *Enricher) titleFor(ctx context.Context, url string) (string, error) {
	result, err := e.fetcher(ctx, url, e.opts)
	if err != nil {
		return "", err
	}
	return fetch.ExtractTitle(result.HTML)
}
