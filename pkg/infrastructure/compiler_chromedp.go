package infrastructure

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
)

var ErrCompile = errors.New("latex compilation failed")

// ChromedpCompiler compiles LaTeX inside a headless browser. EngineURL must
// serve a page defining window.compileLaTeX(source), which resolves to
// {pdf: <base64>} or {error: <log>}.
type ChromedpCompiler struct {
	EngineURL  string
	ChromePath string
	Timeout    time.Duration
}

func NewChromedpCompiler(engineURL, chromePath string, timeout time.Duration) *ChromedpCompiler {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &ChromedpCompiler{EngineURL: engineURL, ChromePath: chromePath, Timeout: timeout}
}

type engineResult struct {
	PDF   string `json:"pdf"`
	Error string `json:"error"`
}

func (c *ChromedpCompiler) Compile(ctx context.Context, markup string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if c.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(c.ChromePath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	runCtx, cancelRun := context.WithTimeout(cctx, c.Timeout)
	defer cancelRun()

	source, err := json.Marshal(markup)
	if err != nil {
		return nil, err
	}
	var res engineResult
	err = chromedp.Run(runCtx,
		chromedp.Navigate(c.EngineURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Evaluate(fmt.Sprintf("window.compileLaTeX(%s)", source), &res,
			func(p *runtime.EvaluateParams) *runtime.EvaluateParams {
				return p.WithAwaitPromise(true)
			}),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompile, err)
	}
	if res.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrCompile, res.Error)
	}
	pdf, err := base64.StdEncoding.DecodeString(res.PDF)
	if err != nil {
		return nil, fmt.Errorf("%w: decode pdf: %v", ErrCompile, err)
	}
	return pdf, nil
}
