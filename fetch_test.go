package aoc

import (
	"compress/gzip"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/andybalholm/brotli"
)

func testFetcher(t *testing.T, h http.HandlerFunc) *fetcher {
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return &fetcher{
		base:    ts.URL,
		client:  ts.Client(),
		session: func() (string, error) { return "s3cret", nil },
	}
}

func TestFetchDecodes(t *testing.T) {
	const body = "3   4\n4   3\n"
	for _, enc := range []string{"", "br", "gzip"} {
		f := testFetcher(t, func(w http.ResponseWriter, r *http.Request) {
			if c, err := r.Cookie("session"); err != nil || c.Value != "s3cret" {
				http.Error(w, "no session", http.StatusUnauthorized)
				return
			}
			if r.URL.Path != "/2024/day/1/input" {
				http.NotFound(w, r)
				return
			}
			w.Header().Set("Content-Encoding", enc)
			switch enc {
			case "br":
				bw := brotli.NewWriter(w)
				bw.Write([]byte(body))
				bw.Close()
			case "gzip":
				gw := gzip.NewWriter(w)
				gw.Write([]byte(body))
				gw.Close()
			default:
				w.Write([]byte(body))
			}
		})
		got, err := f.fetch("/2024/day/1/input")
		if err != nil {
			t.Fatalf("encoding %q: %v", enc, err)
		}
		if string(got) != body {
			t.Errorf("encoding %q: fetch = %q, want %q", enc, got, body)
		}
	}
}

func TestFetchBadStatus(t *testing.T) {
	f := testFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	if _, err := f.fetch("/2024/day/99/input"); err == nil {
		t.Errorf("fetch of missing page succeeded")
	}
}

func TestFileOrFetchCaches(t *testing.T) {
	hits := 0
	f := testFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte("input"))
	})
	file := filepath.Join(t.TempDir(), "2024", "5.input")
	for i := 0; i < 2; i++ {
		got, err := f.fileOrFetch(file, "/2024/day/5/input")
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != "input" {
			t.Errorf("fileOrFetch = %q, want %q", got, "input")
		}
	}
	if hits != 1 {
		t.Errorf("server hit %d times, want 1", hits)
	}
	if b, err := os.ReadFile(file); err != nil || string(b) != "input" {
		t.Errorf("cached file = %q, %v", b, err)
	}
}

func TestParseExamples(t *testing.T) {
	const page = `<html><body><main>
<article class="day-desc"><h2>--- Day 1: Historian Hysteria ---</h2>
<p>For example:</p>
<pre><code>3   4
4   3
2   5
</code></pre>
<p>Pair up the <code>3</code> and <code>4</code>.</p>
<pre><code>total is <em>11</em>
more
</code></pre>
</article>
<pre><code>outside
article
</code></pre>
</main></body></html>`
	got, err := ParseExamples([]byte(page))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"3   4\n4   3\n2   5\n", "total is 11\nmore\n"}
	if len(got) != len(want) {
		t.Fatalf("ParseExamples = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("example %d = %q, want %q", i, got[i], want[i])
		}
	}
}
