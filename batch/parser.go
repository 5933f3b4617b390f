package batch

import (
	"context"
	"fmt"
	"slices"

	"github.com/fwojciec/papertree"
	"golang.org/x/sync/errgroup"
)

// Parser turns publisher exports into documents and writes them out.
type Parser struct {
	Reader   papertree.SourceReader
	Decoder  papertree.Decoder
	Registry papertree.ExtractorRegistry
	Builder  papertree.Builder

	// Publisher forces one extractor for every input. Unknown means detect
	// per input.
	Publisher papertree.Publisher

	// Output receives every outcome, in input order. Optional.
	Output papertree.OutputStore

	// Documents, when set, also records parsed documents in a catalog
	// under CollectionID.
	Documents    papertree.DocumentWriter
	CollectionID string

	Concurrency int
}

// Result holds the totals of a parse run.
type Result struct {
	Parsed   int
	Failed   int
	Warnings int
	Tables   int
	Bytes    int
}

// Parse processes sources concurrently and returns one outcome per source,
// in input order. Outcomes are handed to Output and Documents after all
// workers finish. Per-input failures are reported in outcomes; the returned
// error is non-nil only if ctx is canceled or a store fails.
func (p *Parser) Parse(ctx context.Context, sources []papertree.Source, progress ProgressFunc) ([]Outcome, *Result, error) {
	total := len(sources)
	progress.emit(ProgressEvent{Type: ProgressStarted, Total: total})

	outcomes := make([]Outcome, total)
	type indexed struct {
		pos int
		out Outcome
	}
	resultCh := make(chan indexed, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency(p.Concurrency))

	go func() {
		for i, src := range sources {
			g.Go(func() error {
				resultCh <- indexed{pos: i, out: p.parseOne(gctx, src)}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	completed := 0
	for r := range resultCh {
		completed++
		outcomes[r.pos] = r.out
		if r.out.Err != nil {
			progress.emit(ProgressEvent{
				Type:      ProgressFailed,
				Completed: completed,
				Total:     total,
				Source:    r.out.Source,
				Error:     r.out.Err,
			})
			continue
		}
		progress.emit(ProgressEvent{
			Type:      ProgressCompleted,
			Completed: completed,
			Total:     total,
			Source:    r.out.Source,
			Warnings:  len(r.out.Document.Warnings),
		})
	}

	if err := ctx.Err(); err != nil {
		return outcomes, nil, err
	}

	result, err := p.store(ctx, outcomes)
	if err != nil {
		return outcomes, nil, err
	}

	progress.emit(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	return outcomes, result, nil
}

func (p *Parser) store(ctx context.Context, outcomes []Outcome) (*Result, error) {
	var result Result
	for i, o := range outcomes {
		if o.Err != nil {
			result.Failed++
			if p.Output != nil {
				if err := p.Output.SaveFailure(ctx, o.Source, o.Err); err != nil {
					return nil, fmt.Errorf("save failure %s: %w", o.Source.File, err)
				}
			}
			continue
		}

		doc := o.Document
		doc.Position = i
		if p.Output != nil {
			if err := p.Output.Save(ctx, doc); err != nil {
				return nil, fmt.Errorf("save %s: %w", doc.File, err)
			}
		}
		if p.Documents != nil {
			doc.CollectionID = p.CollectionID
			if err := p.Documents.CreateDocument(ctx, doc); err != nil {
				return nil, fmt.Errorf("catalog %s: %w", doc.File, err)
			}
		}

		result.Parsed++
		result.Warnings += len(doc.Warnings)
		result.Tables += len(doc.Tables)
		result.Bytes += len(papertree.FormatText(doc))
	}
	return &result, nil
}

// parseOne reads, decodes and extracts a single source.
func (p *Parser) parseOne(ctx context.Context, src papertree.Source) Outcome {
	out := Outcome{Source: src}
	if err := ctx.Err(); err != nil {
		out.Err = err
		return out
	}

	raw, err := p.Reader.ReadSource(ctx, src)
	if err != nil {
		out.Err = err
		return out
	}
	text, err := p.Decoder.Decode(raw)
	if err != nil {
		out.Err = err
		return out
	}

	extractor := p.extractorFor(text, src)
	if extractor == nil {
		out.Err = papertree.Errorf(papertree.EUNSUPPORTED, "no extractor for %s", src.File)
		return out
	}

	ext, err := extractor.Extract(ctx, text)
	if err != nil {
		out.Err = fmt.Errorf("%s: %w", extractor.Name(), err)
		return out
	}

	doc := papertree.NewDocument(ext, src, p.Builder)
	doc.Publisher = publisherOf(extractor, src)
	out.Document = doc
	return out
}

func (p *Parser) extractorFor(text string, src papertree.Source) papertree.Extractor {
	if p.Publisher != papertree.PublisherUnknown {
		return p.Registry.Get(p.Publisher)
	}
	return p.Registry.GetForSource(text, src)
}

// publisherOf names the publisher by the extractor that handled the input,
// or by DOI prefix for the generic extractor.
func publisherOf(extractor papertree.Extractor, src papertree.Source) papertree.Publisher {
	pub := papertree.Publisher(extractor.Name())
	if slices.Contains(papertree.Publishers(), pub) {
		return pub
	}
	return papertree.PublisherFromDOI(src.DOI)
}
