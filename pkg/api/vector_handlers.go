package api

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/segmentio/ksuid"

	"github.com/ssargent/binkit/pkg/codec"
	"github.com/ssargent/binkit/pkg/storage"
)

func vectorResponse(v storage.Vector) VectorResponse {
	return VectorResponse{
		ID:        v.ID.String(),
		Name:      v.Name,
		Input:     codec.EncodeBase64(v.Input),
		CRC32:     fmt.Sprintf("%08x", v.CRC32),
		Adler32:   fmt.Sprintf("%08x", v.Adler32),
		SHA1:      hex.EncodeToString(v.SHA1[:]),
		CreatedAt: v.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// requireStore reports whether the vector routes can be served.
func (s *Server) requireStore(w http.ResponseWriter) bool {
	if s.store == nil {
		sendError(w, "Vector store is not configured", http.StatusServiceUnavailable)
		return false
	}
	return true
}

func vectorID(w http.ResponseWriter, r *http.Request) (ksuid.KSUID, bool) {
	id, err := ksuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		sendError(w, fmt.Sprintf("Invalid vector id: %v", err), http.StatusBadRequest)
		return ksuid.Nil, false
	}
	return id, true
}

func sendStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		sendError(w, err.Error(), http.StatusNotFound)
	default:
		sendError(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleCreateVector godoc
//
//	@Summary		Store a test vector
//	@Description	Store an input and the checksums computed from it
//	@Tags			vectors
//	@Accept			json
//	@Produce		json
//	@Param			body	body		VectorRequest	true	"Vector"
//	@Success		200		{object}	VectorResponse
//	@Failure		400		{object}	APIResponse
//	@Security		ApiKeyAuth
//	@Router			/vectors [post]
func (s *Server) handleCreateVector(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}

	var req VectorRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&req); err != nil {
		sendError(w, "Invalid JSON in request body", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		sendError(w, "name is required", http.StatusBadRequest)
		return
	}

	v := storage.NewVector(req.Name, codec.DecodeBase64(req.Input))
	id, err := s.store.Put(v)
	s.metrics.RecordVectorOperation("put", err == nil)
	if err != nil {
		sendStoreError(w, err)
		return
	}

	stored, err := s.store.Get(id)
	if err != nil {
		sendStoreError(w, err)
		return
	}
	sendSuccess(w, vectorResponse(stored))
}

// handleListVectors godoc
//
//	@Summary		List test vectors
//	@Tags			vectors
//	@Produce		json
//	@Success		200	{array}		VectorResponse
//	@Security		ApiKeyAuth
//	@Router			/vectors [get]
func (s *Server) handleListVectors(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}

	vectors, err := s.store.List()
	s.metrics.RecordVectorOperation("list", err == nil)
	if err != nil {
		sendStoreError(w, err)
		return
	}

	out := make([]VectorResponse, 0, len(vectors))
	for _, v := range vectors {
		out = append(out, vectorResponse(v))
	}
	sendSuccess(w, out)
}

// handleGetVector godoc
//
//	@Summary		Get a test vector
//	@Tags			vectors
//	@Produce		json
//	@Param			id	path		string	true	"Vector ID"
//	@Success		200	{object}	VectorResponse
//	@Failure		404	{object}	APIResponse
//	@Security		ApiKeyAuth
//	@Router			/vectors/{id} [get]
func (s *Server) handleGetVector(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	id, ok := vectorID(w, r)
	if !ok {
		return
	}

	v, err := s.store.Get(id)
	s.metrics.RecordVectorOperation("get", err == nil)
	if err != nil {
		sendStoreError(w, err)
		return
	}
	sendSuccess(w, vectorResponse(v))
}

// handleVerifyVector godoc
//
//	@Summary		Verify a test vector
//	@Description	Recompute the checksums of a stored vector and compare
//	@Tags			vectors
//	@Produce		json
//	@Param			id	path		string	true	"Vector ID"
//	@Success		200	{object}	VectorResponse
//	@Failure		404	{object}	APIResponse
//	@Security		ApiKeyAuth
//	@Router			/vectors/{id}/verify [get]
func (s *Server) handleVerifyVector(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	id, ok := vectorID(w, r)
	if !ok {
		return
	}

	v, err := s.store.Verify(id)
	if err != nil && !errors.Is(err, storage.ErrChecksumMismatch) {
		s.metrics.RecordVectorOperation("verify", false)
		sendStoreError(w, err)
		return
	}
	s.metrics.RecordVectorOperation("verify", true)

	resp := vectorResponse(v)
	verified := err == nil
	resp.Verified = &verified
	if err != nil {
		resp.Problem = err.Error()
	}
	sendSuccess(w, resp)
}
