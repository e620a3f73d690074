package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// errBodyNotObject is returned by decodeContent when the body is not a single JSON object.
var errBodyNotObject = errors.New("request body must be a JSON object")

// decodeContent reads the request body into a generic map so field types can
// be checked before anything is bound to a typed request struct.
// Numbers are kept as json.Number to preserve decimal precision.
// An empty body decodes to an empty map.
func decodeContent(r *http.Request) (map[string]any, error) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var content map[string]any
	if err := dec.Decode(&content); err != nil || content == nil {
		return nil, errBodyNotObject
	}
	// Anything after the object, other than whitespace, is rejected.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errBodyNotObject
	}
	return content, nil
}

// readContent decodes the request body with decodeContent. On failure it
// writes the response itself (413 when the body exceeded the size limit set
// by middleware, 400 otherwise) and reports ok=false.
func readContent(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	content, err := decodeContent(r)
	if err == nil {
		return content, true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, codeTooLarge, "request body too large")
		return nil, false
	}
	writeError(w, http.StatusBadRequest, codeValidation, errBodyNotObject.Error())
	return nil, false
}

// pathID parses the {id} URL parameter. The route pattern only admits digits,
// so the only failure left is overflow.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
