package server

import (
	"encoding/json"
	"log"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/cinematch/internal/catalog"
	"github.com/ziadkadry99/cinematch/internal/engine"
	"github.com/ziadkadry99/cinematch/internal/titles"
)

// movieJSON is the wire form of a catalog entry.
type movieJSON struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Year        int      `json:"year,omitempty"`
	Genres      []string `json:"genres,omitempty"`
	Directors   []string `json:"directors,omitempty"`
	Stars       []string `json:"stars,omitempty"`
	Description string   `json:"description,omitempty"`
	Rating      float64  `json:"rating,omitempty"`
	Votes       string   `json:"votes,omitempty"`
	Duration    string   `json:"duration,omitempty"`
	MPA         string   `json:"mpa,omitempty"`
}

func toMovieJSON(e catalog.Entry) movieJSON {
	return movieJSON{
		ID:          e.ID,
		Title:       e.Title,
		Year:        e.Year,
		Genres:      e.Genres,
		Directors:   e.Directors,
		Stars:       e.Stars,
		Description: e.Description,
		Rating:      e.Rating,
		Votes:       e.Votes,
		Duration:    e.Duration,
		MPA:         e.MPA,
	}
}

type candidateJSON struct {
	ID         int     `json:"id"`
	Title      string  `json:"title"`
	Confidence float64 `json:"confidence"`
}

func toCandidateJSON(cands []titles.Candidate) []candidateJSON {
	out := make([]candidateJSON, len(cands))
	for i, c := range cands {
		out[i] = candidateJSON{ID: c.ID, Title: c.Title, Confidence: c.Confidence}
	}
	return out
}

type recommendationJSON struct {
	Movie movieJSON `json:"movie"`
	Score float64   `json:"score"`
}

// recommendationResponse covers all result variants; Kind says which
// fields are populated.
type recommendationResponse struct {
	Kind            string               `json:"kind"`
	Matched         *movieJSON           `json:"matched,omitempty"`
	Confidence      float64              `json:"confidence,omitempty"`
	Count           int                  `json:"count"`
	Recommendations []recommendationJSON `json:"recommendations,omitempty"`
	Suggestions     []candidateJSON      `json:"suggestions,omitempty"`
}

type recommendationRequest struct {
	Title  string `json:"title"`
	Limit  int    `json:"limit"`
	SortBy string `json:"sort_by"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("server: encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats := s.engine.Stats()
	writeJSON(w, http.StatusOK, map[string]any{
		"total_count":   stats.TotalCount,
		"genres":        stats.TopGenres(0),
		"decade_counts": stats.DecadeCounts,
		"rating_counts": stats.RatingCounts,
		"year_range":    [2]int{stats.YearMin, stats.YearMax},
		"rating_range":  [2]float64{stats.RatingMin, stats.RatingMax},
	})
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, "query parameter q is required")
		return
	}

	res := s.engine.ResolveTitle(query)
	resp := map[string]any{"kind": string(res.Kind)}
	switch res.Kind {
	case titles.MatchExact, titles.MatchFuzzy:
		resp["match"] = candidateJSON{ID: res.Best.ID, Title: res.Best.Title, Confidence: res.Best.Confidence}
	case titles.MatchSuggestions:
		resp["suggestions"] = toCandidateJSON(res.Suggestions)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	var req recommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}
	if req.Limit == 0 {
		req.Limit = 10
	}
	sortBy, err := engine.ParseSortMode(req.SortBy)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Memoize by the normalized query so trivially different spellings
	// of the same title share a cache entry.
	cacheKey := titles.NormalizeTitle(req.Title)
	if s.cache != nil {
		if payload, ok, err := s.cache.GetCachedRecommendation(cacheKey, req.Limit, string(sortBy)); err != nil {
			log.Printf("server: cache read: %v", err)
		} else if ok {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Cache", "hit")
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(payload))
			return
		}
	}

	result, err := s.engine.Recommend(req.Title, req.Limit, sortBy)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := recommendationResponse{Kind: string(result.Kind)}
	switch result.Kind {
	case engine.ResultFound:
		matched := toMovieJSON(result.Matched)
		resp.Matched = &matched
		resp.Confidence = result.Confidence
		resp.Count = len(result.Recommendations)
		resp.Recommendations = make([]recommendationJSON, len(result.Recommendations))
		for i, rec := range result.Recommendations {
			resp.Recommendations[i] = recommendationJSON{Movie: toMovieJSON(rec.Entry), Score: rec.Score}
		}
	case engine.ResultAmbiguous:
		resp.Suggestions = toCandidateJSON(result.Suggestions)
	}

	if s.cache != nil {
		if payload, err := json.Marshal(resp); err == nil {
			if err := s.cache.PutCachedRecommendation(cacheKey, req.Limit, string(sortBy), string(payload)); err != nil {
				log.Printf("server: cache write: %v", err)
			}
		}
		if err := s.cache.LogQuery(cacheKey, string(result.Kind)); err != nil {
			log.Printf("server: query log: %v", err)
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMovie(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "movie id must be an integer")
		return
	}

	entry, ok := s.engine.Entry(id)
	if !ok {
		writeError(w, http.StatusNotFound, "no movie with that id")
		return
	}
	writeJSON(w, http.StatusOK, toMovieJSON(entry))
}

func (s *Server) handleRandom(w http.ResponseWriter, r *http.Request) {
	n := 5
	if v := r.URL.Query().Get("n"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "n must be a positive integer")
			return
		}
		n = parsed
	}

	entries := s.engine.Sample(n, rand.Int63()+time.Now().UnixNano())
	out := make([]movieJSON, len(entries))
	for i, e := range entries {
		out[i] = toMovieJSON(e)
	}
	writeJSON(w, http.StatusOK, out)
}
