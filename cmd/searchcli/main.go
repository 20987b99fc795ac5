// Command searchcli loads documents from a JSON-lines file into an
// in-memory search server, optionally removes duplicates, runs a batch of
// queries, and renders the ranked results to stdout.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/Adithya-Monish-Kumar-K/Text-Search-Server/internal/index"
	"github.com/Adithya-Monish-Kumar-K/Text-Search-Server/internal/render"
	"github.com/Adithya-Monish-Kumar-K/Text-Search-Server/internal/search"
	"github.com/Adithya-Monish-Kumar-K/Text-Search-Server/internal/search/cache"
	"github.com/Adithya-Monish-Kumar-K/Text-Search-Server/pkg/config"
	"github.com/Adithya-Monish-Kumar-K/Text-Search-Server/pkg/logger"
	"github.com/Adithya-Monish-Kumar-K/Text-Search-Server/pkg/metrics"
	pkgredis "github.com/Adithya-Monish-Kumar-K/Text-Search-Server/pkg/redis"
)

// docRecord is one line of the documents file.
type docRecord struct {
	ID      int    `json:"id"`
	Text    string `json:"text"`
	Status  string `json:"status"`
	Ratings []int  `json:"ratings"`
}

func main() {
	configPath := flag.String("config", "", "path to config file")
	docsPath := flag.String("docs", "", "path to JSON-lines documents file")
	queriesPath := flag.String("queries", "", "path to file with one query per line")
	dedupe := flag.Bool("dedupe", false, "remove duplicate documents after ingestion")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger.Setup(cfg.Logging.Level, cfg.Logging.Format)

	stopWords, err := cfg.StopWords.Load()
	if err != nil {
		slog.Error("failed to load stop words", "error", err)
		os.Exit(1)
	}
	server := search.New(stopWords, cfg.Search)
	slog.Info("search server created",
		"stop_words", len(stopWords),
		"max_results", cfg.Search.MaxResults,
	)

	if cfg.Metrics.Enabled {
		server.AttachMetrics(metrics.New())
		addr := fmt.Sprintf(":%d", cfg.Metrics.Port)
		go func() {
			slog.Info("metrics listening", "addr", addr)
			if err := http.ListenAndServe(addr, metrics.Handler()); err != nil {
				slog.Error("metrics server error", "error", err)
			}
		}()
	}

	if cfg.Redis.Enabled {
		redisClient, err := pkgredis.NewClient(cfg.Redis)
		if err != nil {
			slog.Warn("redis unavailable, query caching disabled", "error", err)
		} else {
			defer redisClient.Close()
			server.AttachCache(cache.New(redisClient, cfg.Redis.CacheTTL))
			slog.Info("query cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.CacheTTL)
		}
	}

	ctx := context.Background()

	if *docsPath != "" {
		if err := ingestDocuments(server, *docsPath); err != nil {
			slog.Error("document ingestion failed", "error", err)
			os.Exit(1)
		}
	}
	slog.Info("documents loaded", "count", server.DocumentCount())

	if *dedupe {
		removed, err := server.RemoveDuplicates(ctx)
		if err != nil {
			slog.Error("duplicate removal failed", "error", err)
			os.Exit(1)
		}
		slog.Info("duplicates removed", "count", len(removed))
	}

	queries, err := collectQueries(*queriesPath, flag.Args())
	if err != nil {
		slog.Error("failed to read queries", "error", err)
		os.Exit(1)
	}
	if len(queries) == 0 {
		return
	}

	stop := logger.Duration(slog.Default(), "process queries")
	results, err := server.ProcessQueries(ctx, queries)
	stop()
	if err != nil {
		slog.Error("batch query failed", "error", err)
		os.Exit(1)
	}
	for i, docs := range results {
		render.TopDocuments(os.Stdout, queries[i], docs)
	}
}

// ingestDocuments adds every document in the file, reporting and skipping
// failed inserts instead of aborting.
func ingestDocuments(server *search.Server, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var rec docRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			slog.Error("skipping malformed document line", "line", line, "error", err)
			continue
		}
		status, err := index.ParseStatus(rec.Status)
		if err != nil {
			slog.Error("skipping document", "line", line, "doc_id", rec.ID, "error", err)
			continue
		}
		if err := server.AddDocument(rec.ID, rec.Text, status, rec.Ratings); err != nil {
			slog.Error("failed to add document", "doc_id", rec.ID, "error", err)
		}
	}
	return scanner.Err()
}

// collectQueries merges the queries file (one per line) with positional
// arguments, in that order.
func collectQueries(path string, args []string) ([]string, error) {
	var queries []string
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			if line := scanner.Text(); line != "" {
				queries = append(queries, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}
	return append(queries, args...), nil
}
