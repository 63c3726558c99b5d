package pipeline

import (
	"context"
	"sync"

	"taxdoc/internal/domain"
)

// ProcessBatch processes inputs concurrently with at most concurrency
// workers. Results mirror the input order; processing order carries no
// meaning. A canceled context stops dispatching further documents but lets
// in-flight ones finish.
func (p *Processor) ProcessBatch(ctx context.Context, inputs []Input, concurrency int) ([]*domain.ProcessedDocument, error) {
	if concurrency < 1 {
		concurrency = 1
	}

	docs := make([]*domain.ProcessedDocument, len(inputs))
	errs := make([]error, len(inputs))

	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for i := range inputs {
		if ctx.Err() != nil {
			errs[i] = ctx.Err()
			continue
		}

		sem <- struct{}{} // acquire
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }() // release
			docs[i], errs[i] = p.Process(inputs[i])
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return docs, err
		}
	}
	return docs, nil
}
