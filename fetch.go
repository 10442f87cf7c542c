package aoc

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/brotli"
)

// fetcher downloads puzzle pages and inputs, caching them on disk.
type fetcher struct {
	base    string
	client  *http.Client
	session func() (string, error)
}

var defaultFetcher = &fetcher{
	base:    "https://adventofcode.com",
	client:  http.DefaultClient,
	session: sync.OnceValues(readSession),
}

func readSession() (string, error) {
	b, err := os.ReadFile(filepath.Join(os.Getenv("HOME"), "keys", "aoc.session"))
	if err != nil {
		return "", fmt.Errorf("reading session key: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

func (f *fetcher) request(method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequest(method, f.base+path, body)
	if err != nil {
		return nil, err
	}
	s, err := f.session()
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: s})
	req.Header.Set("Accept-Encoding", "gzip, deflate, br")
	return req, nil
}

// fetch GETs path and returns the decoded body.
func (f *fetcher) fetch(path string) ([]byte, error) {
	req, err := f.request("GET", path, nil)
	if err != nil {
		return nil, err
	}
	res, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status fetching %s: %v", req.URL, res.Status)
	}
	r, err := decodeBody(res)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", req.URL, err)
	}
	defer r.Close()
	return io.ReadAll(r)
}

// decodeBody undoes the response's Content-Encoding. Setting
// Accept-Encoding by hand turns off net/http's transparent gzip.
func decodeBody(res *http.Response) (io.ReadCloser, error) {
	switch enc := res.Header.Get("Content-Encoding"); enc {
	case "":
		return io.NopCloser(res.Body), nil
	case "br":
		return io.NopCloser(brotli.NewReader(res.Body)), nil
	case "gzip":
		return gzip.NewReader(res.Body)
	case "deflate":
		return flate.NewReader(res.Body), nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q", enc)
	}
}

// fileOrFetch returns the contents of filename, fetching path and saving
// it there first if the file does not exist.
func (f *fetcher) fileOrFetch(filename, path string) ([]byte, error) {
	if b, err := os.ReadFile(filename); err == nil {
		return b, nil
	}
	body, err := f.fetch(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0700); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filename, body, 0644); err != nil {
		return nil, err
	}
	return body, nil
}

// ParseExamples returns the text of every code block in a puzzle page,
// in page order. Short inline snippets are dropped.
func ParseExamples(html []byte) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing puzzle page: %w", err)
	}
	var out []string
	doc.Find("article pre > code").Each(func(_ int, s *goquery.Selection) {
		if text := s.Text(); strings.Contains(text, "\n") {
			out = append(out, text)
		}
	})
	return out, nil
}
