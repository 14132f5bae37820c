package pdfsplit

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ErrMalformedDocument is returned by Open when the source cannot be read as a PDF.
var ErrMalformedDocument = errors.New("malformed pdf document")

var disableConfigDir sync.Once

// Page is one page of the source isolated into its own document.
type Page struct {
	Number int    // 1-based
	Data   []byte // standalone single-page PDF; nil when Err is set
	Text   string // native text layer, empty when the page has none
	Err    error  // set when the page could not be isolated
}

// Splitter opens multi-page PDFs and hands out their pages one at a time.
type Splitter struct {
	logger *slog.Logger
}

// NewSplitter builds a Splitter. pdfcpu's on-disk config directory is disabled.
func NewSplitter(logger *slog.Logger) *Splitter {
	if logger == nil {
		logger = slog.Default()
	}
	disableConfigDir.Do(api.DisableConfigDir)
	return &Splitter{logger: logger}
}

// Open reads src fully and validates it. A source that is not a readable PDF
// fails here, before any page is produced.
func (s *Splitter) Open(ctx context.Context, src io.Reader) (*Pages, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedDocument)
	}

	conf := newConfiguration()
	pctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), conf)
	if err != nil {
		s.logger.Warn("pdfsplit.open.invalid", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	text, err := openTextReader(data)
	if err != nil {
		s.logger.Warn("pdfsplit.open.text_layer", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	s.logger.Debug("pdfsplit.open.ok", "pages", pctx.PageCount, "bytes", len(data))
	return &Pages{
		ctx:    ctx,
		logger: s.logger,
		doc:    pctx,
		text:   text,
		total:  pctx.PageCount,
	}, nil
}

// Pages walks the pages of one opened document. It is single use: once Next
// returns false the document is released and cannot be walked again.
type Pages struct {
	ctx    context.Context
	logger *slog.Logger
	doc    *model.Context // validated source, read once in Open
	text   *pdf.Reader

	total int
	next  int
	cur   Page
	err   error
}

// Total is the number of pages in the source document.
func (p *Pages) Total() int {
	return p.total
}

// Next advances to the following page. It returns false when the document is
// exhausted or the context is done; check Err afterwards.
func (p *Pages) Next() bool {
	if p.err != nil || p.next >= p.total {
		p.release()
		return false
	}
	if err := p.ctx.Err(); err != nil {
		p.err = err
		p.release()
		return false
	}
	p.next++
	p.cur = p.load(p.next)
	return true
}

// Page returns the page loaded by the last successful Next.
func (p *Pages) Page() Page {
	return p.cur
}

// Err returns the error that stopped iteration early, if any.
func (p *Pages) Err() error {
	return p.err
}

func (p *Pages) release() {
	p.doc = nil
	p.text = nil
}

func (p *Pages) load(n int) Page {
	page := Page{Number: n}

	data, err := extractPage(p.doc, n)
	if err != nil {
		p.logger.Warn("pdfsplit.page.extract_failed", "page", n, "error", err)
		page.Err = fmt.Errorf("isolate page %d: %w", n, err)
	} else {
		page.Data = data
	}

	text, err := pageText(p.text, n)
	if err != nil {
		p.logger.Warn("pdfsplit.page.text_failed", "page", n, "error", err)
	}
	page.Text = text
	return page
}

// extractPage copies page n of doc into a standalone document. pdfcpu can
// panic on broken page trees, which only this page should pay for.
func extractPage(doc *model.Context, n int) (data []byte, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			data, err = nil, fmt.Errorf("panic extracting page: %v", rec)
		}
	}()
	r, err := api.ExtractPage(doc, n)
	if err != nil {
		return nil, err
	}
	return io.ReadAll(r)
}

func newConfiguration() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}
