package batch

import (
	"context"
	"time"

	"github.com/fwojciec/papertree"
	"golang.org/x/sync/errgroup"
)

// Tagger sends article texts to a language model and stores the answers.
type Tagger struct {
	// Readers maps a lower-case file extension (".docx", ".txt") to the
	// reader for it. Sources with other extensions are skipped.
	Readers map[string]papertree.TextReader

	Tagger papertree.Tagger
	Output papertree.TextStore

	// Limiter throttles requests per Model. Optional.
	Limiter papertree.Limiter
	Model   string

	// TokenCounter, when set, counts the tokens sent for the summary.
	TokenCounter papertree.TokenCounter

	// Logger receives retry notices. Optional.
	Logger LogFunc

	Concurrency int
	RetryDelays []time.Duration
}

// TagResult holds the totals of a tagging run.
type TagResult struct {
	Tagged  int
	Failed  int
	Skipped int
	Tokens  int
}

type tagOutcome struct {
	src     papertree.Source
	answer  string
	tokens  int
	skipped bool
	err     error
}

// Tag processes sources concurrently and writes one answer per tagged source
// to Output as <name>.txt. Per-input failures are counted and reported
// through progress; the returned error is non-nil only if ctx is canceled or
// the store fails.
func (t *Tagger) Tag(ctx context.Context, sources []papertree.Source, progress ProgressFunc) (*TagResult, error) {
	total := len(sources)
	progress.emit(ProgressEvent{Type: ProgressStarted, Total: total})

	resultCh := make(chan tagOutcome, total)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency(t.Concurrency))

	go func() {
		for _, src := range sources {
			g.Go(func() error {
				resultCh <- t.tagOne(gctx, src)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	var result TagResult
	var storeErr error
	completed := 0
	for r := range resultCh {
		completed++
		event := ProgressEvent{Completed: completed, Total: total, Source: r.src}
		switch {
		case r.skipped:
			result.Skipped++
			event.Type = ProgressSkipped
		case r.err != nil:
			result.Failed++
			event.Type = ProgressFailed
			event.Error = r.err
		default:
			if storeErr == nil {
				storeErr = t.Output.SaveText(ctx, r.src.Name(), r.answer)
			}
			result.Tagged++
			result.Tokens += r.tokens
			event.Type = ProgressCompleted
		}
		progress.emit(event)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if storeErr != nil {
		return nil, storeErr
	}

	progress.emit(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	return &result, nil
}

func (t *Tagger) tagOne(ctx context.Context, src papertree.Source) tagOutcome {
	out := tagOutcome{src: src}

	reader, ok := t.Readers[src.Ext()]
	if !ok {
		out.skipped = true
		return out
	}

	text, err := reader.ReadText(ctx, src)
	if err != nil {
		out.err = err
		return out
	}

	if t.TokenCounter != nil {
		if n, err := t.TokenCounter.CountTokens(ctx, text); err == nil {
			out.tokens = n
		}
	}

	delays := t.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	tag := func(ctx context.Context, text string) (string, error) {
		if t.Limiter != nil {
			if err := t.Limiter.Wait(ctx, t.Model); err != nil {
				return "", err
			}
		}
		return t.Tagger.Tag(ctx, text)
	}
	out.answer, out.err = TagWithRetry(ctx, src.File, text, tag, t.Logger, delays)
	return out
}
