package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/fwojciec/seogenie"
	seohttp "github.com/fwojciec/seogenie/http"
	"github.com/fwojciec/seogenie/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReport() *seogenie.Report {
	return &seogenie.Report{
		Site: &seogenie.Analysis{
			ID:  "a1",
			URL: "example.com",
			Page: &seogenie.PageContent{
				URL:             "https://example.com",
				Title:           "Acme Widgets",
				MetaDescription: "Finest widgets online.",
				Headings: map[string][]string{
					"h1": {"Welcome"}, "h2": {}, "h3": {}, "h4": {},
				},
				BodyText: "widgets widgets everywhere",
			},
			Score: 40,
			Keywords: []seogenie.Keyword{
				{Term: "widgets", Count: 3},
			},
			Advice:  "Polish that title, master!",
			CloudID: "deadbeefdeadbeef",
			Cloud:   []byte("png-bytes"),
		},
		Competitor: &seogenie.Analysis{
			ID:  "a2",
			URL: "competitor.com",
			Page: &seogenie.PageContent{
				URL:   "https://competitor.com",
				Title: "Rival Widgets",
				Headings: map[string][]string{
					"h1": {}, "h2": {}, "h3": {}, "h4": {},
				},
			},
			Score:          25,
			Advice:         seogenie.FallbackAdvice,
			AdviceFallback: true,
		},
		Comparison: &seogenie.Comparison{Diff: 15},
	}
}

func newTestServer(t *testing.T, runner seogenie.Runner) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(seohttp.NewServer(runner).Handler())
	t.Cleanup(server.Close)
	return server
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	return resp, string(body)
}

func TestServer_Index(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, &mock.Runner{})

	resp, body := get(t, server.URL+"/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "SEO Genie")
	assert.Contains(t, body, `value="example.com"`)
	assert.Contains(t, body, `value="competitor.com"`)
}

func TestServer_Analyze(t *testing.T) {
	t.Parallel()

	t.Run("renders both analyses and the comparison", func(t *testing.T) {
		t.Parallel()

		runner := &mock.Runner{
			RunFn: func(ctx context.Context, siteURL, competitorURL string) (*seogenie.Report, error) {
				assert.Equal(t, "example.com", siteURL)
				assert.Equal(t, "competitor.com", competitorURL)
				return testReport(), nil
			},
		}
		server := newTestServer(t, runner)

		resp, err := http.PostForm(server.URL+"/analyze", url.Values{
			"site":       {"example.com"},
			"competitor": {"competitor.com"},
		})
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		html := string(body)
		assert.Contains(t, html, "Acme Widgets")
		assert.Contains(t, html, "Finest widgets online.")
		assert.Contains(t, html, "Welcome")
		assert.Contains(t, html, "40 / 60")
		assert.Contains(t, html, "widgets")
		assert.Contains(t, html, "Polish that title, master!")
		assert.Contains(t, html, "/wordcloud/deadbeefdeadbeef.png")
		assert.Contains(t, html, "Your site leads by 15 points!")
	})

	t.Run("serves the stored word cloud image", func(t *testing.T) {
		t.Parallel()

		runner := &mock.Runner{
			RunFn: func(ctx context.Context, siteURL, competitorURL string) (*seogenie.Report, error) {
				return testReport(), nil
			},
		}
		server := newTestServer(t, runner)

		_, err := http.PostForm(server.URL+"/analyze", url.Values{"site": {"example.com"}})
		require.NoError(t, err)

		resp, body := get(t, server.URL+"/wordcloud/deadbeefdeadbeef.png")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
		assert.Equal(t, "png-bytes", body)
	})

	t.Run("renders run warnings", func(t *testing.T) {
		t.Parallel()

		runner := &mock.Runner{
			RunFn: func(ctx context.Context, siteURL, competitorURL string) (*seogenie.Report, error) {
				return &seogenie.Report{
					Warnings: []string{"Could not analyze example.com: HTTP 404 for https://example.com"},
				}, nil
			},
		}
		server := newTestServer(t, runner)

		resp, err := http.PostForm(server.URL+"/analyze", url.Values{"site": {"example.com"}})
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, string(body), "Could not analyze example.com")
	})

	t.Run("missing site URL is a bad request", func(t *testing.T) {
		t.Parallel()

		runner := &mock.Runner{
			RunFn: func(ctx context.Context, siteURL, competitorURL string) (*seogenie.Report, error) {
				return nil, seogenie.Errorf(seogenie.EINVALID, "site URL required")
			},
		}
		server := newTestServer(t, runner)

		resp, err := http.PostForm(server.URL+"/analyze", url.Values{})
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestServer_CloudNotFound(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, &mock.Runner{})

	resp, _ := get(t, server.URL+"/wordcloud/nope.png")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_Health(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, &mock.Runner{})

	resp, body := get(t, server.URL+"/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body)
}

func TestServer_Metrics(t *testing.T) {
	t.Parallel()

	runner := &mock.Runner{
		RunFn: func(ctx context.Context, siteURL, competitorURL string) (*seogenie.Report, error) {
			return testReport(), nil
		},
	}
	server := newTestServer(t, runner)

	_, err := http.PostForm(server.URL+"/analyze", url.Values{"site": {"example.com"}})
	require.NoError(t, err)

	resp, body := get(t, server.URL+"/metrics")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "seogenie_analyses_total 2")
	assert.Contains(t, body, "seogenie_advice_fallbacks_total 1")
	assert.True(t, strings.Contains(body, "seogenie_analysis_duration_seconds"))
}
