package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog/hlog"

	"github.com/video-stream/transcript/internal/apperror"
	"github.com/video-stream/transcript/internal/transcript"
	"github.com/video-stream/transcript/internal/validation"
)

type ConvertHandler struct {
	validator *validation.Validator
}

func NewConvertHandler(v *validation.Validator) *ConvertHandler {
	return &ConvertHandler{validator: v}
}

type convertRequest struct {
	VTTContent string `json:"vtt_content" validate:"required"`
	VideoID    string `json:"video_id" validate:"required"`
	VideoTitle string `json:"video_title" validate:"required"`
	VimeoURL   string `json:"vimeo_url" validate:"required"`
}

// Convert turns a posted WebVTT track into a transcript document.
func (h *ConvertHandler) Convert(w http.ResponseWriter, r *http.Request) {
	req, err := decodeConvertRequest(r.Body)
	if err != nil {
		apperror.Write(w, err)
		return
	}
	if err := h.validator.Required(req); err != nil {
		apperror.Write(w, err)
		return
	}

	log := hlog.FromRequest(r)
	doc := transcript.NewBuilder(*log).Build(req.VTTContent, req.VideoID, req.VideoTitle, req.VimeoURL)

	var buf bytes.Buffer
	if err := doc.EncodeJSON(&buf); err != nil {
		log.Error().Err(err).Str("video_id", req.VideoID).Msg("encode transcript")
		apperror.Write(w, apperror.Internal(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// decodeConvertRequest accepts exactly one JSON object. Keys must match
// exactly; encoding/json would otherwise accept "Video_Id" for "video_id".
func decodeConvertRequest(body io.Reader) (*convertRequest, error) {
	dec := json.NewDecoder(body)

	var raw map[string]json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return nil, decodeError(err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after request object")
		}
		return nil, decodeError(err)
	}

	var req convertRequest
	fields := map[string]*string{
		"vtt_content": &req.VTTContent,
		"video_id":    &req.VideoID,
		"video_title": &req.VideoTitle,
		"vimeo_url":   &req.VimeoURL,
	}
	for key, dst := range fields {
		value, ok := raw[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(value, dst); err != nil {
			return nil, apperror.InvalidJSON(fmt.Errorf("field %s: %w", key, err))
		}
	}
	return &req, nil
}

func decodeError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return apperror.PayloadTooLarge(tooLarge.Limit).WithCause(err)
	}
	return apperror.InvalidJSON(err)
}
