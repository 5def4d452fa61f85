package awsutil

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
)

// Cycle is a canned request and the response served for it
type Cycle struct {
	Request  Request
	Response Response
}

type Request struct {
	Method     string
	RequestURI string
	Operation  string
	Body       string
}

type Response struct {
	StatusCode int
	Body       string
}

// Handler serves Cycles in order and remembers any requests it could not match
type Handler struct {
	cycles []Cycle
	lock   sync.Mutex

	Unmatched []Request
}

func NewHandler(cycles []Cycle) *Handler {
	return &Handler{cycles: cycles}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.lock.Lock()
	defer h.lock.Unlock()

	data, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	req := Request{
		Method:     r.Method,
		RequestURI: r.URL.RequestURI(),
		Operation:  r.Header.Get("X-Amz-Target"),
		Body:       string(data),
	}

	if len(h.cycles) == 0 {
		h.miss(w, req, "no cycles remaining")
		return
	}

	c := h.cycles[0]

	if c.Request != req {
		h.miss(w, req, fmt.Sprintf("expected %s %s", c.Request.Method, c.Request.RequestURI))
		return
	}

	h.cycles = h.cycles[1:]

	w.WriteHeader(c.Response.StatusCode)
	io.WriteString(w, c.Response.Body)
}

// Remaining returns the number of cycles not yet served
func (h *Handler) Remaining() int {
	h.lock.Lock()
	defer h.lock.Unlock()

	return len(h.cycles)
}

func (h *Handler) miss(w http.ResponseWriter, req Request, reason string) {
	fmt.Fprintf(os.Stderr, "awsutil: unmatched request %s %s (%s)\n", req.Method, req.RequestURI, reason)

	h.Unmatched = append(h.Unmatched, req)

	w.WriteHeader(http.StatusNotFound)
	io.WriteString(w, `<Error><Code>NoSuchCycle</Code><Message>unmatched request</Message></Error>`)
}
