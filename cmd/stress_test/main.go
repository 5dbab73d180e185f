package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/projecthelena/greeter/internal/api"
	"github.com/projecthelena/greeter/internal/logging"
	"golang.org/x/sync/errgroup"
)

var endpoints = []struct {
	path  string
	label string
}{
	{"/", api.HelloLabel},
	{"/info", api.InfoLabel},
	{"/about", api.AboutLabel},
}

type result struct {
	mu       sync.Mutex
	statuses map[int]int
	bad      int
}

func (r *result) record(status int, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses[status]++
	if !ok {
		r.bad++
	}
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "greeter base URL")
	workers := flag.Int("workers", 8, "Number of concurrent workers")
	requests := flag.Int("requests", 100, "Requests per worker")
	flag.Parse()

	logger := logging.New("stress")

	client := &http.Client{Timeout: 10 * time.Second}
	res, err := run(context.Background(), client, *baseURL, *workers, *requests)
	if err != nil {
		logger.Fatalf("stress run: %v", err)
	}

	for status, n := range res.statuses {
		logger.Printf("status %d: %d", status, n)
	}
	if res.bad > 0 {
		logger.Printf("%d responses had a wrong label or a timestamp going backwards", res.bad)
		os.Exit(1)
	}
}

// run spreads requests across workers, each cycling through the endpoints.
// A worker checks that every 200 body carries the right label and that the
// timestamps it sees per endpoint never go backwards.
func run(ctx context.Context, client *http.Client, baseURL string, workers, requests int) (*result, error) {
	res := &result{statuses: make(map[int]int)}
	g, ctx := errgroup.WithContext(ctx)

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			last := make(map[string]time.Time)
			for i := 0; i < requests; i++ {
				ep := endpoints[i%len(endpoints)]
				status, body, err := fetch(ctx, client, baseURL+ep.path)
				if err != nil {
					return err
				}
				if status != http.StatusOK {
					res.record(status, true)
					continue
				}
				ok := strings.HasPrefix(body, ep.label)
				if ok {
					stamp, err := time.ParseInLocation(api.TimestampLayout, strings.TrimPrefix(body, ep.label), time.Local)
					ok = err == nil && !stamp.Before(last[ep.path])
					last[ep.path] = stamp
				}
				res.record(status, ok)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func fetch(ctx context.Context, client *http.Client, url string) (int, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, "", err
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("GET %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, "", err
	}
	return resp.StatusCode, string(body), nil
}
