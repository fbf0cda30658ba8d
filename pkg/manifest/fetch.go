package manifest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/matzehuels/folio/pkg/errors"
	"github.com/matzehuels/folio/pkg/httputil"
)

// fetchTimeout bounds a single manifest request.
const fetchTimeout = 30 * time.Second

// Fetch retrieves a JSON manifest from an HTTP(S) URL.
//
// Transient failures (connection errors, 5xx responses) are retried with
// exponential backoff; 4xx responses fail immediately. The response body is
// decoded and validated with [ReadJSON].
func Fetch(ctx context.Context, url string) (*Manifest, error) {
	return FetchClient(ctx, http.DefaultClient, url)
}

// FetchClient is like [Fetch] but uses the given HTTP client.
func FetchClient(ctx context.Context, client *http.Client, url string) (*Manifest, error) {
	if err := errors.ValidateURL(url); err != nil {
		return nil, err
	}

	var m *Manifest
	err := httputil.RetryWithBackoff(ctx, func() error {
		reqCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
		defer cancel()

		req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		req.Header.Set("Accept", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return httputil.Retryable(err)
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusNotFound:
			return errors.New(errors.ErrCodeManifestNotFound, "manifest not found: %s", url)
		case resp.StatusCode >= 500:
			return httputil.Retryable(fmt.Errorf("server error: %s", resp.Status))
		case resp.StatusCode != http.StatusOK:
			return errors.New(errors.ErrCodeNetwork, "unexpected status %s for %s", resp.Status, url)
		}

		m, err = ReadJSON(resp.Body)
		return err
	})
	if err != nil {
		if errors.GetCode(err) != "" {
			return nil, err
		}
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "fetch %s", url)
	}
	return m, nil
}
