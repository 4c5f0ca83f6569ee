package serve

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freePort(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestRunServesDirAndStopsOnCancel(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>Freshly</h1>"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	srv := &Server{Addr: freePort(t), Dir: dir}

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	var resp *http.Response
	var err error
	url := fmt.Sprintf("http://%s/", srv.Addr)
	for i := 0; i < 50; i++ {
		resp, err = http.Get(url)
		if err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Contains(t, string(body), "Freshly")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop on cancel")
	}
}

func TestWatchTriggersRebuild(t *testing.T) {
	watched := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(watched, "css"), 0755))
	dir := t.TempDir()

	rebuilt := make(chan struct{}, 1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := &Server{
		Addr:      freePort(t),
		Dir:       dir,
		WatchDirs: []string{watched},
		Rebuild: func(context.Context) error {
			select {
			case rebuilt <- struct{}{}:
			default:
			}
			return nil
		},
	}

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(watched, "content.toml"), []byte("site_name = \"x\"\n"), 0644))

	select {
	case <-rebuilt:
	case <-time.After(5 * time.Second):
		t.Fatal("rebuild was not triggered")
	}

	// Watches must cover nested directories, not just the top level.
	require.NoError(t, os.WriteFile(filepath.Join(watched, "css", "site.css"), []byte("body{}"), 0644))
	select {
	case <-rebuilt:
	case <-time.After(5 * time.Second):
		t.Fatal("rebuild was not triggered for nested file change")
	}

	// Directories created after startup get their own watches. Wait out the
	// debounce for the mkdir event itself, then drain it.
	require.NoError(t, os.MkdirAll(filepath.Join(watched, "media"), 0755))
	time.Sleep(400 * time.Millisecond)
	select {
	case <-rebuilt:
	default:
	}
	require.NoError(t, os.WriteFile(filepath.Join(watched, "media", "hero.png"), []byte("png"), 0644))
	select {
	case <-rebuilt:
	case <-time.After(5 * time.Second):
		t.Fatal("rebuild was not triggered for file in new directory")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop on cancel")
	}
}
