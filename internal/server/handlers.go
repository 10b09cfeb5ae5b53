// SPDX-License-Identifier: MIT

package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/katalvlaran/lvcat/functor"
	"github.com/katalvlaran/lvcat/internal/cache"
	"github.com/katalvlaran/lvcat/internal/diagramfile"
	"github.com/katalvlaran/lvcat/learner"
	"github.com/katalvlaran/lvcat/moncat"
	"github.com/katalvlaran/lvcat/render"
)

// errRequest marks malformed request bodies.
var errRequest = errors.New("server: bad request")

// Request is the body accepted by every /v1 route. Boxes extends the
// learner vocabulary exactly like [[box]] tables in a diagram file.
type Request struct {
	Expr   string               `json:"expr"`
	Other  string               `json:"other,omitempty"`
	Dom    *int                 `json:"dom,omitempty"`
	Input  []float64            `json:"input,omitempty"`
	Left   bool                 `json:"left,omitempty"`
	Format string               `json:"format,omitempty"`
	Boxes  []diagramfile.BoxDef `json:"boxes,omitempty"`
}

// Response is the JSON reply of the /v1 routes except render.
type Response struct {
	RequestID  string    `json:"request_id"`
	Expr       string    `json:"expr,omitempty"`
	Dom        string    `json:"dom,omitempty"`
	Cod        string    `json:"cod,omitempty"`
	Layers     int       `json:"layers"`
	Output     []float64 `json:"output,omitempty"`
	Equivalent *bool     `json:"equivalent,omitempty"`
	Cached     bool      `json:"cached,omitempty"`
}

// ErrorResponse is the JSON reply for failed requests.
type ErrorResponse struct {
	RequestID string `json:"request_id"`
	Error     string `json:"error"`
}

// normalEntry is what the cache holds for one normal form.
type normalEntry struct {
	Expr   string `json:"expr"`
	Dom    string `json:"dom"`
	Cod    string `json:"cod"`
	Layers int    `json:"layers"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleNormalize(w http.ResponseWriter, r *http.Request) {
	req, d, _, ok := s.decode(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	key := cache.Key("normal", req.Expr, req.Dom, req.Boxes, req.Left)

	var entry normalEntry
	data, hit, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("cache get", "key", key, "err", err)
	}
	if hit && json.Unmarshal(data, &entry) == nil {
		s.writeJSON(w, r, http.StatusOK, Response{
			Expr: entry.Expr, Dom: entry.Dom, Cod: entry.Cod, Layers: entry.Layers, Cached: true,
		})
		return
	}

	nf := d.NormalForm(req.Left)
	entry = normalEntry{Expr: nf.String(), Dom: nf.Dom().String(), Cod: nf.Cod().String(), Layers: nf.Len()}
	if data, err := json.Marshal(entry); err == nil {
		if err := s.cache.Set(ctx, key, data, s.cacheTTL); err != nil {
			s.logger.Warn("cache set", "key", key, "err", err)
		}
	}
	s.writeJSON(w, r, http.StatusOK, Response{Expr: entry.Expr, Dom: entry.Dom, Cod: entry.Cod, Layers: entry.Layers})
}

func (s *Server) handleEval(w http.ResponseWriter, r *http.Request) {
	req, d, _, ok := s.decode(w, r)
	if !ok {
		return
	}
	out, err := functor.Eval(d, req.Input)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, Response{
		Expr: d.String(), Dom: d.Dom().String(), Cod: d.Cod().String(), Layers: d.Len(), Output: out,
	})
}

func (s *Server) handleEquivalent(w http.ResponseWriter, r *http.Request) {
	req, d, reg, ok := s.decode(w, r)
	if !ok {
		return
	}
	if req.Other == "" {
		s.writeError(w, r, fmt.Errorf("%w: other is required", errRequest))
		return
	}
	other, err := moncat.Parse(req.Other, reg.Lookup)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	eq, err := d.Equivalent(other)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, Response{
		Expr: d.String(), Dom: d.Dom().String(), Cod: d.Cod().String(), Layers: d.Len(), Equivalent: &eq,
	})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, d, _, ok := s.decode(w, r)
	if !ok {
		return
	}
	dot, err := render.ToDOT(d, render.Options{Detailed: true})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var (
		body        []byte
		contentType string
	)
	switch req.Format {
	case "", "dot":
		body, contentType = []byte(dot), "text/vnd.graphviz"
	case "svg":
		body, err = render.RenderSVG(dot)
		contentType = "image/svg+xml"
	case "png":
		body, err = render.RenderPNG(dot)
		contentType = "image/png"
	default:
		err = fmt.Errorf("%w: unknown format %q", errRequest, req.Format)
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		s.logger.Warn("write", "err", err)
	}
}

// decode reads the body and builds its diagram. On failure it has already
// answered the request and returns ok == false.
func (s *Server) decode(w http.ResponseWriter, r *http.Request) (Request, moncat.Diagram, *learner.Registry, bool) {
	var req Request
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			s.writeError(w, r, err)
		} else {
			s.writeError(w, r, fmt.Errorf("%w: %v", errRequest, err))
		}
		return req, moncat.Diagram{}, nil, false
	}
	if req.Expr == "" {
		s.writeError(w, r, fmt.Errorf("%w: expr is required", errRequest))
		return req, moncat.Diagram{}, nil, false
	}
	f := diagramfile.File{Dom: req.Dom, Expr: req.Expr, Boxes: req.Boxes}
	d, reg, err := f.Build()
	if err != nil {
		s.writeError(w, r, err)
		return req, moncat.Diagram{}, nil, false
	}

	return req, d, reg, true
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	if resp, ok := v.(Response); ok {
		resp.RequestID = RequestIDFrom(r.Context())
		v = resp
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("encode response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "id", RequestIDFrom(r.Context()), "err", err)
	}
	s.writeJSON(w, r, status, ErrorResponse{RequestID: RequestIDFrom(r.Context()), Error: err.Error()})
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	var tooBig *http.MaxBytesError
	switch {
	case errors.As(err, &tooBig):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, errRequest),
		errors.Is(err, diagramfile.ErrFormat),
		errors.Is(err, moncat.ErrParse),
		errors.Is(err, moncat.ErrUnknownBox),
		errors.Is(err, learner.ErrDuplicate),
		errors.Is(err, learner.ErrWeights):
		return http.StatusBadRequest
	case errors.Is(err, moncat.ErrAxiom),
		errors.Is(err, moncat.ErrType),
		errors.Is(err, moncat.ErrOffset),
		errors.Is(err, moncat.ErrNoFunction),
		errors.Is(err, moncat.ErrClosedComponent),
		errors.Is(err, functor.ErrShape):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
