/*
Package server implements msgpack IPC for spell checking services.

The server reads a stream of msgpack encoded requests from stdin and writes
one msgpack response per request to stdout. Requests are processed one at a
time, in order, and every response carries the time taken in microseconds.
The session ends when the input reaches EOF.

# IPC

Each request is a map with an ID, an action and the words it applies to:

	{"id": "req_001", "a": "check", "w": ["teh", "cat"], "l": 3}

A check reports, per word, whether it is in the dictionary and up to l
suggestions for the ones that are not:

	{"id": "req_001", "r": [{"w": "teh", "f": false, "s": ["ten", "the"]}, {"w": "cat", "f": true}], "m": 1, "t": 12}

Suggest takes exactly one word and returns the closest dictionary words:

	{"id": "req_002", "a": "suggest", "w": ["hapy"], "l": 2}
	{"id": "req_002", "w": "hapy", "s": [{"w": "happy", "p": 3}], "c": 1, "t": 40}

Stats reports on the loaded table:

	{"id": "req_003", "a": "stats"}

A malformed or rejected request gets an error response and the session goes
on:

	{"id": "req_004", "e": "unknown action: spell", "c": 400}
*/
package server

// Actions understood by the server.
const (
	ActionCheck   = "check"
	ActionSuggest = "suggest"
	ActionStats   = "stats"
)

// Error codes sent in ErrorResponse.Code.
const (
	CodeBadRequest    = 400
	CodeTooLarge      = 413
	CodeUnavailable   = 503
	CodeInternalError = 500
)

// Request is one client message.
type Request struct {
	ID     string   `msgpack:"id"`
	Action string   `msgpack:"a"`
	Words  []string `msgpack:"w,omitempty"`
	Limit  int      `msgpack:"l,omitempty"`
}

// WordResult is the check outcome for one word.
type WordResult struct {
	Word        string   `msgpack:"w"`
	Found       bool     `msgpack:"f"`
	Suggestions []string `msgpack:"s,omitempty"`
}

// CheckResponse answers a check request.
type CheckResponse struct {
	ID         string       `msgpack:"id"`
	Results    []WordResult `msgpack:"r"`
	Misspelled int          `msgpack:"m"`
	TimeTaken  int64        `msgpack:"t"`
}

// Suggestion is a single suggested word and the prefix length it shares
// with the queried word.
type Suggestion struct {
	Word   string `msgpack:"w"`
	Shared int    `msgpack:"p"`
}

// SuggestResponse answers a suggest request.
type SuggestResponse struct {
	ID          string       `msgpack:"id"`
	Word        string       `msgpack:"w"`
	Suggestions []Suggestion `msgpack:"s"`
	Count       int          `msgpack:"c"`
	TimeTaken   int64        `msgpack:"t"`
}

// StatsResponse answers a stats request.
type StatsResponse struct {
	ID           string  `msgpack:"id"`
	Words        int     `msgpack:"words"`
	Capacity     int     `msgpack:"capacity"`
	LoadFactor   float64 `msgpack:"load_factor"`
	Grows        int     `msgpack:"grows"`
	UsedBuckets  int     `msgpack:"used_buckets"`
	LongestChain int     `msgpack:"longest_chain"`
	Indexed      int     `msgpack:"indexed"`
	TimeTaken    int64   `msgpack:"t"`
}

// ErrorResponse holds basic error information for a failed request.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
