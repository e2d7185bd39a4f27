package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"babele/internal/babele"
	"babele/internal/compendium"
	"babele/internal/document"
	"babele/internal/pack"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 32 << 20

var errUnknownPack = errors.New("unknown pack")

// Server serves the façade of one initialized Babele.
type Server struct {
	babele *babele.Babele
	packs  *pack.Registry
	logger *log.Logger
	format compendium.Format
}

// New creates a server. format is the export format used when a request
// does not name one.
func New(b *babele.Babele, packs *pack.Registry, format compendium.Format, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	if packs == nil {
		packs = pack.NewRegistry()
	}

	return &Server{babele: b, packs: packs, logger: logger, format: format}
}

// Router returns the route table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter().StrictSlash(true)
	r.HandleFunc("/collections", s.getCollectionsHandler).Methods("GET")
	r.HandleFunc("/collections/{collection}/index", s.getIndexHandler).Methods("GET")
	r.HandleFunc("/collections/{collection}/translate", s.translateHandler).Methods("POST")
	r.HandleFunc("/collections/{collection}/fields/{field}/translate", s.translateFieldHandler).Methods("POST")
	r.HandleFunc("/collections/{collection}/extract", s.extractHandler).Methods("POST")
	r.HandleFunc("/collections/{collection}/fields/{field}/extract", s.extractFieldHandler).Methods("POST")
	r.HandleFunc("/collections/{collection}/export", s.exportHandler).Methods("GET")

	return r
}

// Handler returns the router wrapped with JSON headers and an access log
// written to accessLog.
func (s *Server) Handler(accessLog io.Writer) http.Handler {
	if accessLog == nil {
		accessLog = io.Discard
	}

	return handlers.CombinedLoggingHandler(accessLog, setJSONHeaders(s.Router()))
}

// ListenAndServe serves on addr until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string, accessLog io.Writer) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(accessLog),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)

	go func() {
		s.logger.Printf("listening on %s", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("failed to serve: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	}
}

func setJSONHeaders(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		h.ServeHTTP(w, r)
	})
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(struct {
		Error string `json:"error"`
	}{Error: err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Printf("failed to write response: %v", err)
	}
}

// readDocuments decodes a request body holding one document or an array of
// documents. The bool reports whether the body was an array.
func readDocuments(w http.ResponseWriter, r *http.Request) ([]map[string]any, bool, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, false, fmt.Errorf("could not read request (%v)", err)
	}

	var body any
	if err := document.Unmarshal(data, &body); err != nil {
		return nil, false, fmt.Errorf("could not decode request (%v)", err)
	}

	switch t := body.(type) {
	case map[string]any:
		return []map[string]any{t}, false, nil
	case []any:
		docs := make([]map[string]any, 0, len(t))

		for i, item := range t {
			doc, ok := item.(map[string]any)
			if !ok {
				return nil, false, fmt.Errorf("could not decode request (element %d is not an object)", i)
			}

			docs = append(docs, doc)
		}

		return docs, true, nil
	default:
		return nil, false, errors.New("could not decode request (expected an object or an array)")
	}
}

func respond(docs []map[string]any, many bool) any {
	if many {
		return docs
	}

	return docs[0]
}

func queryBool(r *http.Request, name string) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get(name))
	return err == nil && v
}

type collectionInfo struct {
	Collection string `json:"collection"`
	Label      string `json:"label"`
	Type       string `json:"type,omitempty"`
	Translated bool   `json:"translated"`
}

// Lists the host packs with their translation status
func (s *Server) getCollectionsHandler(w http.ResponseWriter, r *http.Request) {
	var output struct {
		Collections []collectionInfo `json:"collections"`
	}

	output.Collections = []collectionInfo{}

	for _, meta := range s.packs.Packs() {
		info := collectionInfo{
			Collection: meta.Collection(),
			Label:      meta.Label,
		}

		if meta.Type.IsValid() {
			info.Type = meta.Type.String()
		}

		if store, ok := s.babele.Store(info.Collection); ok {
			info.Label = store.Label()
			info.Translated = store.Translated()
		}

		output.Collections = append(output.Collections, info)
	}

	s.writeJSON(w, output)
}

// Gets the translated index of a pack
func (s *Server) getIndexHandler(w http.ResponseWriter, r *http.Request) {
	collection := mux.Vars(r)["collection"]

	index, ok := s.packs.Index(collection)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("%w %s", errUnknownPack, collection))
		return
	}

	index = s.babele.TranslateIndex(index, collection)

	if queryBool(r, "sort") {
		s.babele.Collator().SortByName(index)
	}

	s.writeJSON(w, index)
}

// Translates one or more documents
func (s *Server) translateHandler(w http.ResponseWriter, r *http.Request) {
	collection := mux.Vars(r)["collection"]

	docs, many, err := readDocuments(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	only := queryBool(r, "translationsOnly")

	for i, doc := range docs {
		docs[i] = s.babele.Translate(collection, doc, only)
	}

	s.writeJSON(w, respond(docs, many))
}

type fieldValue struct {
	Value any  `json:"value"`
	Found bool `json:"found"`
}

// Translates a single field of a document
func (s *Server) translateFieldHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	docs, many, err := readDocuments(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	out := make([]fieldValue, len(docs))
	for i, doc := range docs {
		v, ok := s.babele.TranslateField(vars["field"], vars["collection"], doc)
		out[i] = fieldValue{Value: v, Found: ok}
	}

	if many {
		s.writeJSON(w, out)
		return
	}

	s.writeJSON(w, out[0])
}

// Extracts the translation template of one or more documents
func (s *Server) extractHandler(w http.ResponseWriter, r *http.Request) {
	collection := mux.Vars(r)["collection"]

	docs, many, err := readDocuments(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	for i, doc := range docs {
		docs[i] = s.babele.Extract(collection, doc)
	}

	s.writeJSON(w, respond(docs, many))
}

// Extracts a single field of a document
func (s *Server) extractFieldHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	docs, many, err := readDocuments(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	out := make([]fieldValue, len(docs))
	for i, doc := range docs {
		v, ok := s.babele.ExtractField(vars["collection"], vars["field"], doc)
		out[i] = fieldValue{Value: v, Found: ok}
	}

	if many {
		s.writeJSON(w, out)
		return
	}

	s.writeJSON(w, out[0])
}

// Exports the translation template of a pack
func (s *Server) exportHandler(w http.ResponseWriter, r *http.Request) {
	collection := mux.Vars(r)["collection"]

	p, ok := s.packs.Pack(collection)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("%w %s", errUnknownPack, collection))
		return
	}

	format := s.format
	if name := r.URL.Query().Get("format"); name != "" {
		f, err := compendium.ParseFormat(name)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		format = f
	}

	docs, _ := s.packs.Documents(collection)

	data, err := s.babele.ExportTemplate(collection, p.Label, docs, format).Bytes()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", compendium.FileName(collection)))
	_, _ = w.Write(data)
}
