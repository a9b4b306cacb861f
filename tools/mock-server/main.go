// Package main implements a mock RESO Web API server for local development.
// It serves canned Property records from a JSON fixture to simulate the MLS
// feed and its OAuth token endpoint without requiring real feed credentials.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

type odataResponse struct {
	Context  string            `json:"@odata.context"`
	Count    int               `json:"@odata.count"`
	NextLink string            `json:"@odata.nextLink,omitempty"`
	Value    []json.RawMessage `json:"value"`
}

type propertyRecord struct {
	City                  string `json:"City"`
	StandardStatus        string `json:"StandardStatus"`
	ModificationTimestamp string `json:"ModificationTimestamp"`
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/property_response.json", "path to property response fixture")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fixture, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "records", len(fixture.Value))

	mux := http.NewServeMux()
	mux.HandleFunc("POST /oauth/token", tokenHandler(logger))
	mux.HandleFunc("GET /Property", propertyHandler(logger, fixture))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock RESO server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loadFixture(path string) (*odataResponse, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var resp odataResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &resp, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func tokenHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Validate Basic Auth header is present (don't verify creds).
		if _, _, ok := r.BasicAuth(); !ok {
			logger.Warn("token request missing Basic Auth header")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
			json.NewEncoder(w).Encode(map[string]string{
				"error":             "invalid_client",
				"error_description": "client authentication failed",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "mock-token-v1-" + strconv.FormatInt(int64(os.Getpid()), 16),
			"expires_in":   3600,
			"token_type":   "Bearer",
		})
		logger.Info("issued mock token")
	}
}

func propertyHandler(logger *slog.Logger, fixture *odataResponse) http.HandlerFunc {
	// Pre-parse the fields the mock filters on.
	type indexedRecord struct {
		raw      json.RawMessage
		city     string
		status   string
		modified string
	}
	records := make([]indexedRecord, 0, len(fixture.Value))
	for _, raw := range fixture.Value {
		var rec propertyRecord
		//nolint:errcheck,gosec // fixture data is trusted; field extraction is best-effort
		json.Unmarshal(raw, &rec)
		records = append(records, indexedRecord{
			raw:      raw,
			city:     strings.ToLower(rec.City),
			status:   strings.ToLower(rec.StandardStatus),
			modified: rec.ModificationTimestamp,
		})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		filter := parseODataFilter(r.URL.Query().Get("$filter"))

		top := 200
		if v, err := strconv.Atoi(r.URL.Query().Get("$top")); err == nil && v > 0 {
			top = v
		}
		skip := 0
		if v, err := strconv.Atoi(r.URL.Query().Get("$skip")); err == nil && v >= 0 {
			skip = v
		}

		var matched []json.RawMessage
		for _, rec := range records {
			if filter.city != "" && rec.city != filter.city {
				continue
			}
			if filter.status != "" && rec.status != filter.status {
				continue
			}
			if filter.modifiedAfter != "" && rec.modified <= filter.modifiedAfter {
				continue
			}
			matched = append(matched, rec.raw)
		}

		total := len(matched)

		if skip >= len(matched) {
			matched = nil
		} else {
			end := min(skip+top, len(matched))
			matched = matched[skip:end]
		}

		nextLink := ""
		if skip+top < total {
			q := r.URL.Query()
			q.Set("$skip", strconv.Itoa(skip+top))
			nextLink = r.URL.Path + "?" + q.Encode()
		}

		resp := odataResponse{
			Context:  "$metadata#Property",
			Count:    total,
			NextLink: nextLink,
			Value:    matched,
		}

		// Return empty array instead of null when no results.
		if resp.Value == nil {
			resp.Value = []json.RawMessage{}
		}

		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(resp)
		logger.Info("property query", "filter", r.URL.Query().Get("$filter"), "matched", total, "returned", len(matched), "skip", skip, "top", top)
	}
}

type odataFilter struct {
	city          string
	status        string
	modifiedAfter string
}

// parseODataFilter extracts the predicates the mock understands from a
// $filter expression: City eq '...', StandardStatus eq '...', and
// ModificationTimestamp gt <ts>. Clauses it doesn't recognize are ignored.
func parseODataFilter(expr string) odataFilter {
	var f odataFilter
	for clause := range strings.SplitSeq(expr, " and ") {
		clause = strings.TrimSpace(clause)
		switch {
		case strings.HasPrefix(clause, "City eq "):
			f.city = strings.ToLower(trimQuotes(strings.TrimPrefix(clause, "City eq ")))
		case strings.HasPrefix(clause, "StandardStatus eq "):
			f.status = strings.ToLower(trimQuotes(strings.TrimPrefix(clause, "StandardStatus eq ")))
		case strings.HasPrefix(clause, "ModificationTimestamp gt "):
			f.modifiedAfter = strings.TrimPrefix(clause, "ModificationTimestamp gt ")
		}
	}
	return f
}

func trimQuotes(s string) string {
	return strings.Trim(s, "'")
}
