// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/eth2phone-gateway/internal/httperr"
	"github.com/MKhiriev/eth2phone-gateway/internal/utils"
	"github.com/MKhiriev/eth2phone-gateway/models"
)

const (
	// maxBodyBytes limits the decoded size of a request body.
	maxBodyBytes = 100 << 10

	// maxFormParameters limits the number of pairs in an URL-encoded body.
	maxFormParameters = 1000

	formMediaType = "application/x-www-form-urlencoded"
)

var jsonMediaTypes = []string{
	"application/json",
	"application/vnd.api+json",
}

var (
	ErrUnsupportedCharset         = errors.New("unsupported charset")
	ErrUnsupportedContentEncoding = errors.New("unsupported content encoding")
	ErrTooManyParameters          = errors.New("too many parameters")
)

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

type bodyDecoder func(raw []byte) (models.DecodedBody, error)

// withBodyDecoding parses URL-encoded and JSON bodies and stores the result
// in the request context. Bodies of other media types are left untouched.
// A decoded body stays readable from r.Body for later stages.
func (h *Handler) withBodyDecoding(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := decodeBody(w, r)
		if err != nil {
			h.respondError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithDecodedBody(r.Context(), body)))
	})
}

func decodeBody(w http.ResponseWriter, r *http.Request) (models.DecodedBody, error) {
	if r.Body == nil || r.Body == http.NoBody || r.ContentLength == 0 {
		return models.DecodedBody{}, nil
	}

	mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return models.DecodedBody{}, nil
	}

	var decode bodyDecoder
	switch {
	case mediaType == formMediaType:
		decode = decodeForm
	case slices.Contains(jsonMediaTypes, mediaType):
		decode = decodeJSON
	default:
		return models.DecodedBody{}, nil
	}

	if charset, ok := params["charset"]; ok && !strings.EqualFold(charset, "utf-8") {
		return models.DecodedBody{}, httperr.WithStatus(http.StatusUnsupportedMediaType,
			fmt.Errorf("%w %q", ErrUnsupportedCharset, strings.ToUpper(charset)))
	}

	raw, err := readBody(w, r)
	if err != nil {
		return models.DecodedBody{}, err
	}

	r.Body = io.NopCloser(bytes.NewReader(raw))
	r.ContentLength = int64(len(raw))
	r.Header.Del("Content-Encoding")

	decoded, err := decode(raw)
	if err != nil {
		return models.DecodedBody{}, err
	}
	decoded.MediaType = mediaType

	return decoded, nil
}

// readBody reads the whole body, inflating it according to Content-Encoding.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	defer r.Body.Close()

	var src io.Reader
	switch encoding := strings.ToLower(strings.TrimSpace(r.Header.Get("Content-Encoding"))); encoding {
	case "", "identity":
		src = r.Body
	case "gzip":
		gzipReader := gzipReaderPool.Get().(*gzip.Reader)
		defer gzipReaderPool.Put(gzipReader)
		if err := gzipReader.Reset(r.Body); err != nil {
			return nil, httperr.BadRequest("invalid gzip data", err)
		}
		defer gzipReader.Close()
		src = gzipReader
	case "deflate":
		zlibReader, err := zlib.NewReader(r.Body)
		if err != nil {
			return nil, httperr.BadRequest("invalid deflate data", err)
		}
		defer zlibReader.Close()
		src = zlibReader
	default:
		return nil, httperr.WithStatus(http.StatusUnsupportedMediaType,
			fmt.Errorf("%w %q", ErrUnsupportedContentEncoding, encoding))
	}

	raw, err := io.ReadAll(http.MaxBytesReader(w, io.NopCloser(src), maxBodyBytes))
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, err
		}
		return nil, httperr.BadRequest(err.Error(), err)
	}

	return raw, nil
}

func decodeForm(raw []byte) (models.DecodedBody, error) {
	if pairs := bytes.Count(raw, []byte("&")) + 1; pairs > maxFormParameters {
		return models.DecodedBody{}, httperr.WithStatus(http.StatusRequestEntityTooLarge, ErrTooManyParameters)
	}

	values, err := url.ParseQuery(string(raw))
	if err != nil {
		return models.DecodedBody{}, httperr.BadRequest(err.Error(), err)
	}

	return models.DecodedBody{Form: values}, nil
}

// decodeJSON accepts only objects and arrays at the top level. An empty
// body decodes to an empty object.
func decodeJSON(raw []byte) (models.DecodedBody, error) {
	if len(raw) == 0 {
		return models.DecodedBody{JSON: map[string]any{}}, nil
	}

	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] != '{' && trimmed[0] != '[' {
		msg := fmt.Sprintf("invalid JSON: top-level value must be an object or array, got %q", firstToken(trimmed))
		return models.DecodedBody{}, httperr.BadRequest(msg, nil)
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return models.DecodedBody{}, httperr.BadRequest(err.Error(), err)
	}

	return models.DecodedBody{JSON: value}, nil
}

func firstToken(b []byte) string {
	if i := bytes.IndexAny(b, " \t\r\n,"); i > 0 {
		b = b[:i]
	}
	const limit = 16
	if len(b) > limit {
		b = b[:limit]
	}
	return string(b)
}
