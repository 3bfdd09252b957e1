package models

import (
	"encoding/json"
	"fmt"
)

// Modality is one of the four supported content categories a query or
// result is tagged with.
type Modality string

const (
	ModalityText  Modality = "text"
	ModalityImage Modality = "image"
	ModalityVideo Modality = "video"
	ModalityAudio Modality = "audio"
)

// Known reports whether m is one of the supported modality tags.
func (m Modality) Known() bool {
	switch m {
	case ModalityText, ModalityImage, ModalityVideo, ModalityAudio:
		return true
	}
	return false
}

// ParseModalities decodes the wire representation of a modality set: a
// JSON-encoded array of tag strings (e.g. `["text","audio"]`). Unknown tags
// are kept; callers that synthesize results skip them. Returns an error only
// when the string is not a JSON string array.
func ParseModalities(encoded string) ([]Modality, error) {
	var tags []string
	if err := json.Unmarshal([]byte(encoded), &tags); err != nil {
		return nil, fmt.Errorf("modalities must be a JSON array of strings: %w", err)
	}
	modalities := make([]Modality, 0, len(tags))
	for _, tag := range tags {
		modalities = append(modalities, Modality(tag))
	}
	return modalities, nil
}

// EncodeModalities is the inverse of ParseModalities, used by the CLI client
// to build request bodies.
func EncodeModalities(modalities []Modality) string {
	tags := make([]string, 0, len(modalities))
	for _, m := range modalities {
		tags = append(tags, string(m))
	}
	b, _ := json.Marshal(tags)
	return string(b)
}
