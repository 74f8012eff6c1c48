package api

import (
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/labstack/echo/v5"

	"github.com/eof2030/eof1validate/eof"
)

// ValidateRequest is the body of POST /v1/validate.
type ValidateRequest struct {
	Container string `json:"container"` // hex-encoded, no 0x prefix required
	Revision  string `json:"revision,omitempty"`
}

// ValidateResponse is the body of a successful POST /v1/validate response.
type ValidateResponse struct {
	RequestID string `json:"request_id"`
	Valid     bool   `json:"valid"`
	Error     string `json:"error,omitempty"`
}

func decodeHexField(s string) ([]byte, error) {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	return hex.DecodeString(s)
}

func (s *Server) resolveRevision(requested string) (eof.Revision, bool) {
	if requested == "" {
		requested = s.cfg.Revision
	}
	return eof.ParseRevision(requested)
}

func (s *Server) handleValidate(c *echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return writeBadRequest(c, "", "failed to read request body")
	}
	var req ValidateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return writeBadRequest(c, "", "malformed JSON body")
	}

	container, err := decodeHexField(req.Container)
	if err != nil {
		return writeBadRequest(c, "container", "container must be hex-encoded")
	}
	rev, ok := s.resolveRevision(req.Revision)
	if !ok {
		return writeBadRequest(c, "revision", "unknown revision")
	}

	start := s.clock()
	verr, depth := eof.ValidateEOFWithDepthCap(rev, container, s.cfg.RecursionDepthCap)
	if s.metrics != nil {
		s.metrics.Observe(verr, time.Since(start).Seconds())
		s.metrics.ObserveRecursionDepth(depth)
	}

	resp := ValidateResponse{RequestID: uuid.NewString(), Valid: verr == eof.Success}
	if verr != eof.Success {
		resp.Error = eof.ErrorMessage(verr)
	}
	s.log.Info("validate", "request_id", resp.RequestID, "valid", resp.Valid, "error", resp.Error)
	return writeJSON(c, http.StatusOK, resp)
}

// ReadHeaderResponse mirrors eof.ValidHeader over the wire.
type ReadHeaderResponse struct {
	RequestID        string           `json:"request_id"`
	CodeSizes        []uint16         `json:"code_sizes"`
	CodeOffsets      []int            `json:"code_offsets"`
	DataSize         uint16           `json:"data_size"`
	DataOffset       int              `json:"data_offset"`
	ContainerSizes   []uint16         `json:"container_sizes"`
	ContainerOffsets []int            `json:"container_offsets"`
	Types            []eof.TypeHeader `json:"types"`
}

func (s *Server) handleReadHeader(c *echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return writeBadRequest(c, "", "failed to read request body")
	}
	var req ValidateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return writeBadRequest(c, "", "malformed JSON body")
	}
	container, err := decodeHexField(req.Container)
	if err != nil {
		return writeBadRequest(c, "container", "container must be hex-encoded")
	}
	rev, ok := s.resolveRevision(req.Revision)
	if !ok {
		return writeBadRequest(c, "revision", "unknown revision")
	}

	verr, depth := eof.ValidateEOFWithDepthCap(rev, container, s.cfg.RecursionDepthCap)
	if verr != eof.Success {
		return writeError(c, http.StatusUnprocessableEntity, "invalid_container", eof.ErrorMessage(verr), "container", "unprocessable")
	}
	if s.metrics != nil {
		s.metrics.ObserveRecursionDepth(depth)
	}

	h := eof.ReadValidHeader(container)
	resp := ReadHeaderResponse{
		RequestID:        uuid.NewString(),
		CodeSizes:        h.CodeSizes,
		CodeOffsets:      h.CodeOffsets,
		DataSize:         h.DataSize,
		DataOffset:       h.DataOffset,
		ContainerSizes:   h.ContainerSizes,
		ContainerOffsets: h.ContainerOffsets,
		Types:            h.Types,
	}
	return writeJSON(c, http.StatusOK, resp)
}

// AppendDataRequest is the body of POST /v1/append-data.
type AppendDataRequest struct {
	Container string `json:"container"`
	Data      string `json:"data"`
}

// AppendDataResponse carries the mutated container back to the caller.
type AppendDataResponse struct {
	RequestID string `json:"request_id"`
	OK        bool   `json:"ok"`
	Container string `json:"container,omitempty"`
}

func (s *Server) handleAppendData(c *echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return writeBadRequest(c, "", "failed to read request body")
	}
	var req AppendDataRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return writeBadRequest(c, "", "malformed JSON body")
	}
	container, err := decodeHexField(req.Container)
	if err != nil {
		return writeBadRequest(c, "container", "container must be hex-encoded")
	}
	aux, err := decodeHexField(req.Data)
	if err != nil {
		return writeBadRequest(c, "data", "data must be hex-encoded")
	}

	out, ok := eof.AppendData(container, aux)
	resp := AppendDataResponse{RequestID: uuid.NewString(), OK: ok}
	if ok {
		resp.Container = hex.EncodeToString(out)
	}
	return writeJSON(c, http.StatusOK, resp)
}
