package main

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Batch looks up the prices of a list of phones
type Batch struct {
	scraper         PriceScraper
	workers         int
	continueOnError bool
}

// NewBatch creates a Batch
// With one worker, lookups run one after the other in input order.
// Unless continueOnError is set, the first failure stops the batch.
func NewBatch(scraper PriceScraper, workers int, continueOnError bool) *Batch {
	if workers < 1 {
		workers = 1
	}
	return &Batch{
		scraper:         scraper,
		workers:         workers,
		continueOnError: continueOnError,
	}
}

// Run returns phones in input order
// Phones that failed are left out when errors are tolerated
func (b *Batch) Run(ctx context.Context, infos []PhoneInfo) ([]*Phone, error) {
	phones := make([]*Phone, len(infos))
	failures := make([]error, len(infos))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)

	for i, info := range infos {
		if gctx.Err() != nil {
			break
		}
		i, info := i, info
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			phone, err := b.scraper.LookupPrice(gctx, info)
			if err != nil {
				err = fmt.Errorf("cannot look up price for '%s': %w", info.ModelName, err)
				if !b.continueOnError {
					return err
				}
				log.Warnf("%s", err)
				failures[i] = err
				return nil
			}
			phones[i] = phone
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var results []*Phone
	failed := 0
	for i, phone := range phones {
		if failures[i] != nil {
			failed++
			continue
		}
		results = append(results, phone)
	}
	if failed > 0 {
		log.Warnf("%d phones looked up, %d failed", len(results), failed)
	} else {
		log.Infof("%d phones looked up", len(results))
	}
	return results, nil
}
