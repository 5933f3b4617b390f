//go:build integration

package rod_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/papertree/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><table id="t1"><tr><td>pending</td></tr></table>
<script>document.querySelector('#t1 td').textContent = 'R = -1';</script>
</body></html>`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns rendered table page", func(t *testing.T) {
		t.Parallel()

		fetcher, err := rod.NewFetcher()
		require.NoError(t, err)
		defer fetcher.Close()

		html, err := fetcher.Fetch(context.Background(), tableServer(t).URL)

		require.NoError(t, err)
		assert.Contains(t, html, "R = -1")
	})

	t.Run("honors canceled context", func(t *testing.T) {
		t.Parallel()

		fetcher, err := rod.NewFetcher()
		require.NoError(t, err)
		defer fetcher.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = fetcher.Fetch(ctx, tableServer(t).URL)

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("replaces browser after max pages", func(t *testing.T) {
		t.Parallel()

		fetcher, err := rod.NewFetcher(rod.WithMaxPages(1))
		require.NoError(t, err)
		defer fetcher.Close()
		srv := tableServer(t)

		_, err = fetcher.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		first := fetcher.LauncherPID()

		_, err = fetcher.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)

		assert.NotEqual(t, first, fetcher.LauncherPID())
	})

	t.Run("fails after close", func(t *testing.T) {
		t.Parallel()

		fetcher, err := rod.NewFetcher()
		require.NoError(t, err)
		require.NoError(t, fetcher.Close())
		require.NoError(t, fetcher.Close())

		_, err = fetcher.Fetch(context.Background(), "about:blank")

		assert.Error(t, err)
	})
}
