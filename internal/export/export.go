package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Exporter turns rendered HTML into a PDF document.
type Exporter interface {
	Export(ctx context.Context, html []byte) ([]byte, error)
}

// ErrNoExporter is returned when PDF export is not configured.
var ErrNoExporter = errors.New("pdf export not configured")

// Disabled is the Exporter used when no converter is configured.
type Disabled struct{}

func (Disabled) Export(ctx context.Context, html []byte) ([]byte, error) {
	_ = ctx
	_ = html
	return nil, ErrNoExporter
}

// PDFClient converts HTML via an external headless-browser service. The
// service accepts text/html on POST and answers with application/pdf.
type PDFClient struct {
	url        string
	httpClient *http.Client
}

func NewPDFClient(url string) (*PDFClient, error) {
	if strings.TrimSpace(url) == "" {
		return nil, fmt.Errorf("PDF_CONVERTER_URL is required")
	}
	return &PDFClient{
		url:        url,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}, nil
}

func (c *PDFClient) Export(ctx context.Context, html []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(html))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "text/html; charset=utf-8")
	req.Header.Set("Accept", "application/pdf")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pdf converter request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("pdf converter status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/pdf") {
		return nil, fmt.Errorf("pdf converter returned %q, want application/pdf", ct)
	}

	pdf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if len(pdf) == 0 {
		return nil, fmt.Errorf("pdf converter returned empty document")
	}
	return pdf, nil
}

var _ Exporter = (*PDFClient)(nil)
var _ Exporter = (Disabled{})
