// Command server exposes the Semetrika scansion engine as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/scan?verse=<line>[&brevize=true]
//	POST /api/scan/text   body: {"text":"..."} (one verse per line)
//	GET  /api/dictionary?word=<form>
package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"strings"

	"github.com/rs/cors"

	"github.com/vaclavhorky/semetrika"
)

// ---- JSON response types ------------------------------------------------

type readingJSON struct {
	Text    string `json:"text"`
	Weights string `json:"weights"`
}

type verseJSON struct {
	Verse        string        `json:"verse"`
	Scheme       string        `json:"scheme"`
	ReadingCount int           `json:"reading_count"`
	Readings     []readingJSON `json:"readings"`
	SchemeView   readingJSON   `json:"scheme_view"`
	Error        string        `json:"error,omitempty"`
}

type textRequest struct {
	Text    string `json:"text"`
	Brevize bool   `json:"brevize"`
}

type textResponse struct {
	Verses []verseJSON `json:"verses"`
}

type dictionaryResponse struct {
	Word   string `json:"word"`
	Marked string `json:"marked"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers --------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func toVerseJSON(line string, verse *semetrika.Verse, err error) verseJSON {
	if err != nil {
		return verseJSON{Verse: line, Error: err.Error()}
	}
	vj := verseJSON{
		Verse:        line,
		Scheme:       verse.Scheme,
		ReadingCount: verse.ReadingCount(),
		SchemeView: readingJSON{
			Text:    verse.SchemeView().Text,
			Weights: verse.SchemeView().Weights,
		},
	}
	for _, r := range verse.Readings() {
		vj.Readings = append(vj.Readings, readingJSON{Text: r.Text, Weights: r.Weights})
	}
	return vj
}

// ---- handlers -------------------------------------------------------------

func handleScan(ld *semetrika.LengthDictionary) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		line := r.URL.Query().Get("verse")
		if line == "" {
			writeError(w, http.StatusBadRequest, "missing 'verse' parameter")
			return
		}
		opts := semetrika.Options{
			UnmarkedShort: r.URL.Query().Get("brevize") == "true",
		}
		if !opts.UnmarkedShort {
			opts.Lengths = ld
		}
		verse, err := semetrika.ScanLine(line, opts)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, toVerseJSON(line, verse, nil))
	}
}

func handleScanText(ld *semetrika.LengthDictionary) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var req textRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		opts := semetrika.Options{UnmarkedShort: req.Brevize}
		if !req.Brevize {
			opts.Lengths = ld
		}
		var resp textResponse
		for _, line := range strings.Split(req.Text, "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			verse, err := semetrika.ScanLine(line, opts)
			resp.Verses = append(resp.Verses, toVerseJSON(line, verse, err))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func handleDictionary(ld *semetrika.LengthDictionary) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		if ld == nil {
			writeError(w, http.StatusServiceUnavailable, "no length dictionary loaded")
			return
		}
		word := r.URL.Query().Get("word")
		if word == "" {
			writeError(w, http.StatusBadRequest, "missing 'word' parameter")
			return
		}
		marked, err := ld.WordWithLengths(word)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, dictionaryResponse{Word: word, Marked: marked})
	}
}

// ---- main ---------------------------------------------------------------

func main() {
	dictPath := flag.String("dict", semetrika.DefaultStorePath, "length dictionary path")
	noLengths := flag.Bool("nolengths", false, "run without a length dictionary")
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	var ld *semetrika.LengthDictionary
	if !*noLengths {
		var err error
		ld, err = semetrika.LoadLengthDictionary(*dictPath)
		if err != nil {
			log.Printf("WARNING: length dictionary not found, scanning without it: %v", err)
		} else {
			log.Printf("length dictionary loaded: %d words", ld.Len())
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/scan/text", handleScanText(ld))
	mux.HandleFunc("/api/scan", handleScan(ld))
	mux.HandleFunc("/api/dictionary", handleDictionary(ld))

	handler := cors.Default().Handler(mux)

	log.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
