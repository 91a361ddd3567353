package server

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/wordcheck/pkg/dictionary"
	"github.com/bastiangx/wordcheck/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/time/rate"
)

// maxLimit caps the suggestions returned for one word.
const maxLimit = 64

// Dictionary is the loaded word index the server answers from.
type Dictionary interface {
	Contains(word string) bool
	Stats() dictionary.Stats
}

// Server handles the IPC for spell checks.
type Server struct {
	dict         Dictionary
	suggester    suggest.ISuggester
	limiter      *rate.Limiter
	maxBatch     int
	defaultLimit int

	reader   io.Reader
	writer   *bufio.Writer
	encoder  *msgpack.Encoder
	requests int
}

// Option configures a Server.
type Option func(*Server)

// WithIO replaces stdin and stdout.
func WithIO(r io.Reader, w io.Writer) Option {
	return func(s *Server) {
		s.reader = r
		s.writer = bufio.NewWriter(w)
	}
}

// WithSuggester enables suggestions in check and suggest responses.
func WithSuggester(sg suggest.ISuggester) Option {
	return func(s *Server) { s.suggester = sg }
}

// WithRateLimit paces requests to rps per second with the given burst. A
// non-positive rps leaves requests unpaced.
func WithRateLimit(rps float64, burst int) Option {
	return func(s *Server) {
		if rps <= 0 {
			s.limiter = nil
			return
		}
		s.limiter = rate.NewLimiter(rate.Limit(rps), max(burst, 1))
	}
}

// WithMaxBatch limits how many words one check request may carry. Zero
// means no limit.
func WithMaxBatch(n int) Option {
	return func(s *Server) { s.maxBatch = n }
}

// WithDefaultLimit sets the number of suggestions a suggest request gets
// when it does not ask for a limit.
func WithDefaultLimit(n int) Option {
	return func(s *Server) { s.defaultLimit = n }
}

// NewServer creates a server answering from dict over stdin/stdout.
func NewServer(dict Dictionary, opts ...Option) *Server {
	s := &Server{
		dict:         dict,
		defaultLimit: 5,
		reader:       os.Stdin,
		writer:       bufio.NewWriter(os.Stdout),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.encoder = msgpack.NewEncoder(s.writer)
	return s
}

// Start processes requests until the input ends or ctx is cancelled. EOF
// between requests ends the session cleanly.
func (s *Server) Start(ctx context.Context) error {
	log.Debug("Starting Server.")
	decoder := msgpack.NewDecoder(bufio.NewReader(s.reader))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		raw, err := decoder.DecodeRaw()
		if err != nil {
			if errors.Is(err, io.EOF) {
				log.Debugf("Input closed after %d requests", s.requests)
				return nil
			}
			log.Errorf("Reading from stdin: %v", err)
			return fmt.Errorf("reading request: %w", err)
		}

		if s.limiter != nil {
			if err := s.limiter.Wait(ctx); err != nil {
				s.sendError("", "server shutting down", CodeUnavailable)
				s.writer.Flush()
				return err
			}
		}

		s.requests++
		s.handleRequest(raw)
		if err := s.writer.Flush(); err != nil {
			return fmt.Errorf("writing response: %w", err)
		}
	}
}

// Requests returns how many requests have been handled.
func (s *Server) Requests() int {
	return s.requests
}

func (s *Server) handleRequest(raw msgpack.RawMessage) {
	var req Request
	if err := msgpack.Unmarshal(raw, &req); err != nil {
		log.Errorf("Unmarshaling request: %v", err)
		// Recover the id when the message is a map that only has a bad field.
		var probe struct {
			ID string `msgpack:"id"`
		}
		_ = msgpack.Unmarshal(raw, &probe)
		s.sendError(probe.ID, "invalid msgpack request", CodeBadRequest)
		return
	}

	defer func() {
		if r := recover(); r != nil {
			log.Errorf("Handling %s request %q: %v", req.Action, req.ID, r)
			s.sendError(req.ID, "internal error", CodeInternalError)
		}
	}()

	switch req.Action {
	case ActionCheck:
		s.handleCheck(req)
	case ActionSuggest:
		s.handleSuggest(req)
	case ActionStats:
		s.handleStats(req)
	case "":
		s.sendError(req.ID, "missing action", CodeBadRequest)
	default:
		s.sendError(req.ID, fmt.Sprintf("unknown action: %s", req.Action), CodeBadRequest)
	}
}

// handleCheck looks up every word. Suggestions are only computed when the
// request asks for a positive limit.
func (s *Server) handleCheck(req Request) {
	if len(req.Words) == 0 {
		s.sendError(req.ID, "missing words", CodeBadRequest)
		return
	}
	if s.maxBatch > 0 && len(req.Words) > s.maxBatch {
		s.sendError(req.ID, fmt.Sprintf("batch of %d words exceeds maximum of %d", len(req.Words), s.maxBatch), CodeTooLarge)
		return
	}

	limit := min(req.Limit, maxLimit)
	start := time.Now()
	resp := CheckResponse{
		ID:      req.ID,
		Results: make([]WordResult, len(req.Words)),
	}
	for i, word := range req.Words {
		result := WordResult{Word: word, Found: s.dict.Contains(word)}
		if !result.Found {
			resp.Misspelled++
			if limit > 0 && s.suggester != nil {
				result.Suggestions = s.suggest(word, limit)
			}
		}
		resp.Results[i] = result
	}
	resp.TimeTaken = time.Since(start).Microseconds()

	s.sendResponse(resp)
}

func (s *Server) suggest(word string, limit int) []string {
	found := s.suggester.Suggest(word, limit)
	if len(found) == 0 {
		return nil
	}
	out := make([]string, len(found))
	for i, sg := range found {
		out[i] = sg.Word
	}
	return out
}

func (s *Server) handleSuggest(req Request) {
	if s.suggester == nil {
		s.sendError(req.ID, "suggestions are disabled", CodeUnavailable)
		return
	}
	if len(req.Words) != 1 || req.Words[0] == "" {
		s.sendError(req.ID, "suggest takes exactly one word", CodeBadRequest)
		return
	}
	if len(req.Words[0]) > dictionary.MaxWordLength {
		s.sendError(req.ID, fmt.Sprintf("word exceeds maximum length of %d characters", dictionary.MaxWordLength), CodeBadRequest)
		return
	}

	limit := req.Limit
	if limit < 1 {
		limit = s.defaultLimit
	}
	limit = min(limit, maxLimit)

	start := time.Now()
	found := s.suggester.Suggest(req.Words[0], limit)
	resp := SuggestResponse{
		ID:          req.ID,
		Word:        req.Words[0],
		Suggestions: make([]Suggestion, len(found)),
		Count:       len(found),
	}
	for i, sg := range found {
		resp.Suggestions[i] = Suggestion{Word: sg.Word, Shared: sg.Shared}
	}
	resp.TimeTaken = time.Since(start).Microseconds()

	s.sendResponse(resp)
}

func (s *Server) handleStats(req Request) {
	start := time.Now()
	st := s.dict.Stats()
	resp := StatsResponse{
		ID:           req.ID,
		Words:        st.Words,
		Capacity:     st.Capacity,
		LoadFactor:   st.LoadFactor,
		Grows:        st.Grows,
		UsedBuckets:  st.UsedBuckets,
		LongestChain: st.LongestChain,
	}
	if s.suggester != nil {
		resp.Indexed = s.suggester.Len()
	}
	resp.TimeTaken = time.Since(start).Microseconds()

	s.sendResponse(resp)
}

func (s *Server) sendResponse(response any) {
	if err := s.encoder.Encode(response); err != nil {
		log.Errorf("Marshaling response: %v", err)
		if _, failed := response.(ErrorResponse); !failed {
			s.sendError("", "response could not be encoded", CodeInternalError)
		}
	}
}

func (s *Server) sendError(id, message string, code int) {
	log.Debugf("Request %q failed: %s", id, message)
	s.sendResponse(ErrorResponse{ID: id, Error: message, Code: code})
}
