// Package latex delegates LaTeX to PDF compilation to a remote service.
package latex

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

const (
	DefaultEndpoint = "https://latexonline.cc/compile"
	sourceName      = "resume.tex"
	maxErrorBody    = 8 << 10
)

// ErrEmptySource is returned when there is nothing to compile.
var ErrEmptySource = errors.New("latex source is empty")

// CompileError reports a failed compile. Detail is the service's own text.
type CompileError struct {
	Status int
	Detail string
}

func (e *CompileError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("latex compile failed (status %d)", e.Status)
	}
	return fmt.Sprintf("latex compile failed (status %d): %s", e.Status, e.Detail)
}

// Compiler turns LaTeX source into a PDF.
type Compiler interface {
	Compile(ctx context.Context, source string) ([]byte, error)
}

// Client posts resume.tex as multipart form data and expects a PDF back.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient returns a Client for endpoint. An empty endpoint falls back to
// DefaultEndpoint and a nil httpClient to one with a two-minute timeout.
func NewClient(endpoint string, httpClient *http.Client) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 2 * time.Minute}
	}
	return &Client{endpoint: endpoint, http: httpClient}
}

// EndpointFromEnv reads OUTREACH_LATEX_ENDPOINT.
func EndpointFromEnv() string {
	if v := strings.TrimSpace(os.Getenv("OUTREACH_LATEX_ENDPOINT")); v != "" {
		return v
	}
	return DefaultEndpoint
}

func (c *Client) Compile(ctx context.Context, source string) ([]byte, error) {
	if strings.TrimSpace(source) == "" {
		return nil, ErrEmptySource
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("filecontents[]", sourceName)
	if err != nil {
		return nil, fmt.Errorf("building form: %w", err)
	}
	if _, err := io.WriteString(fw, source); err != nil {
		return nil, fmt.Errorf("building form: %w", err)
	}
	if err := mw.WriteField("filename[]", sourceName); err != nil {
		return nil, fmt.Errorf("building form: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("building form: %w", err)
	}

	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("parsing latex endpoint: %w", err)
	}
	q := u.Query()
	q.Set("target", sourceName)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), &body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("contacting latex service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &CompileError{Status: resp.StatusCode, Detail: strings.TrimSpace(string(detail))}
	}

	pdf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading compiled pdf: %w", err)
	}
	if !isPDF(resp.Header.Get("Content-Type"), pdf) {
		return nil, &CompileError{
			Status: resp.StatusCode,
			Detail: "Compilation did not produce a valid PDF. Check your LaTeX syntax.",
		}
	}
	return pdf, nil
}

func isPDF(contentType string, body []byte) bool {
	if strings.Contains(strings.ToLower(contentType), "pdf") {
		return true
	}
	return bytes.HasPrefix(body, []byte("%PDF-"))
}

// EstimatePages guesses the page count of a resume without compiling it.
// Blank source is 0 pages, anything else at least 1.
func EstimatePages(source string) int {
	if strings.TrimSpace(source) == "" {
		return 0
	}
	sections := strings.Count(source, `\section`)
	subsections := strings.Count(source, `\subsection`)
	items := strings.Count(source, `\item`)
	lines := 0
	for _, line := range strings.Split(source, "\n") {
		if strings.TrimSpace(line) != "" {
			lines++
		}
	}
	est := float64(sections)*0.15 + float64(subsections)*0.08 + float64(items)*0.03 + float64(lines)*0.001
	return max(1, int(math.Ceil(est)))
}
