package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/jiftechnify/upix-api/internal/apierror"
	"github.com/jiftechnify/upix-api/internal/config"
	"github.com/jiftechnify/upix-api/internal/imaging"
	"github.com/jiftechnify/upix-api/internal/logger"
	"github.com/jiftechnify/upix-api/internal/middleware"
	"github.com/jiftechnify/upix-api/internal/pipeline"
	"github.com/jiftechnify/upix-api/internal/types"
)

// MaxUploadBytes caps the request body before any decoding happens,
// bounding peak memory per request.
const MaxUploadBytes = 512 * 1024

// Server holds dependencies for handling HTTP requests.
type Server struct {
	cfg   config.Config
	store pipeline.ObjectStore
}

// NewServer constructs a new HTTP server instance. The store handle is
// injected once and shared read-only by the per-request pipelines.
func NewServer(cfg config.Config, store pipeline.ObjectStore) *Server {
	return &Server{
		cfg:   cfg,
		store: store,
	}
}

// Handler wires all endpoints and wraps them with the shared middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.HealthzHandler)
	mux.HandleFunc("/", s.RootHandler)
	return middleware.RequestID(mux)
}

// HealthzHandler responds to health checks.
func (s *Server) HealthzHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// RootHandler dispatches the / endpoint: GET is the liveness probe,
// POST is the image submission endpoint. The mux routes every
// unregistered path here, so anything but the exact root is a 404.
func (s *Server) RootHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("upix API"))
	case http.MethodPost:
		s.UploadHandler(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// UploadHandler runs the full submission pipeline and renders either
// the list of persisted variants or a single classified failure.
func (s *Server) UploadHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	uploaded, apiErr := s.processUpload(w, r)
	if apiErr != nil {
		apiErr.WriteTo(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(uploaded); err != nil {
		logger.Error(ctx, "failed to encode response", err)
	}
}

// processUpload is the ingestion pipeline for one submission:
// format gate, size cap, content hash, decode, dimension gate, then
// the five-way derivation and persistence fan-out. All user-input
// faults are detected before any persistence work begins.
func (s *Server) processUpload(w http.ResponseWriter, r *http.Request) ([]types.UploadedImage, *apierror.Error) {
	ctx := r.Context()

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return nil, apierror.New(http.StatusBadRequest, "missing Content-Type header")
	}
	format, err := imaging.ResolveFormat(contentType)
	if err != nil {
		return nil, s.classify(ctx, err)
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxUploadBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, apierror.Opaque(http.StatusRequestEntityTooLarge)
		}
		logger.Error(ctx, "could not read request body", err)
		return nil, apierror.Opaque(http.StatusInternalServerError)
	}

	// The fingerprint is taken over the raw bytes as received, so
	// byte-identical submissions hash identically regardless of
	// container metadata quirks.
	hash := imaging.Fingerprint(body)

	img, err := imaging.Decode(body, format)
	if err != nil {
		return nil, s.classify(ctx, err)
	}
	if err := imaging.ValidateDimensions(img); err != nil {
		return nil, s.classify(ctx, err)
	}

	uploaded, err := pipeline.NewUploader(img, hash, s.store).Run(ctx)
	if err != nil {
		logger.Error(ctx, "failed to upload image variants", err, logger.Fields{
			"hash": hash,
		})
		return nil, apierror.Opaque(http.StatusInternalServerError)
	}
	return uploaded, nil
}

// classify converts pipeline faults to wire errors: validation
// failures carry their message to the client, everything else stays
// opaque and is only logged.
func (s *Server) classify(ctx context.Context, err error) *apierror.Error {
	var verr *imaging.ValidationError
	if errors.As(err, &verr) {
		logger.Warn(ctx, "rejected submission", logger.Fields{
			"reason": verr.Error(),
		})
		return apierror.New(http.StatusBadRequest, verr.Error())
	}
	logger.Error(ctx, "internal error while processing submission", err)
	return apierror.Opaque(http.StatusInternalServerError)
}
