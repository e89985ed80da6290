package equipment

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// FlexString decodes any JSON scalar as a string and never fails.
// Falsy scalars (false, 0, null) decode to "".
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		*f = ""
		return nil
	}
	switch val := v.(type) {
	case string:
		*f = FlexString(val)
	case float64:
		if val == 0 {
			*f = ""
		} else {
			*f = FlexString(strconv.FormatFloat(val, 'f', -1, 64))
		}
	case bool:
		if val {
			*f = "true"
		} else {
			*f = ""
		}
	default:
		*f = ""
	}
	return nil
}

// FlexNumber decodes numbers and numeric strings, anything else is 0
type FlexNumber float64

func (f *FlexNumber) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		*f = 0
		return nil
	}
	switch val := v.(type) {
	case float64:
		*f = FlexNumber(val)
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = FlexNumber(n)
	default:
		*f = 0
	}
	return nil
}

// flexList keeps the raw elements of a JSON array; any other value is an empty list
type flexList []json.RawMessage

func (f *flexList) UnmarshalJSON(b []byte) error {
	*f = nil
	if !startsWith(b, '[') {
		return nil
	}
	var list []json.RawMessage
	if err := json.Unmarshal(b, &list); err != nil {
		return nil
	}
	*f = list
	return nil
}

// flexRefs decodes an object of string-ish values; any other value is empty
type flexRefs map[string]FlexString

func (f *flexRefs) UnmarshalJSON(b []byte) error {
	*f = nil
	if !startsWith(b, '{') {
		return nil
	}
	var m map[string]FlexString
	if err := json.Unmarshal(b, &m); err != nil {
		return nil
	}
	*f = m
	return nil
}

func startsWith(b []byte, c byte) bool {
	trimmed := bytes.TrimLeft(b, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == c
}

// ItemInput is an unnormalized item as it arrives from callers or from storage.
// Rarity may be a rank number or an alias string. Slot falls back to Type.
type ItemInput struct {
	ID        string `json:"id,omitempty"`
	Slot      string `json:"slot,omitempty"`
	Type      string `json:"type,omitempty"`
	Element   string `json:"element,omitempty"`
	Rarity    any    `json:"rarity,omitempty"`
	Name      string `json:"name,omitempty"`
	CreatedAt int64  `json:"createdAt,omitempty"`
}

type rawItem struct {
	ID        FlexString      `json:"id"`
	Slot      FlexString      `json:"slot"`
	Type      FlexString      `json:"type"`
	Element   FlexString      `json:"element"`
	Rarity    json.RawMessage `json:"rarity"`
	Name      FlexString      `json:"name"`
	CreatedAt FlexNumber      `json:"createdAt"`
}

// UnmarshalJSON decodes leniently: mistyped fields become zero values and a non-object
// document yields an empty input.
func (in *ItemInput) UnmarshalJSON(b []byte) error {
	*in = ItemInput{}
	if !startsWith(b, '{') {
		return nil
	}
	var raw rawItem
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil
	}
	*in = ItemInput{
		ID:        string(raw.ID),
		Slot:      string(raw.Slot),
		Type:      string(raw.Type),
		Element:   string(raw.Element),
		Rarity:    decodeRawRarity(raw.Rarity),
		Name:      string(raw.Name),
		CreatedAt: int64(raw.CreatedAt),
	}
	return nil
}

// ArtifactInput is an unnormalized artifact. ArtifactType falls back to Type.
type ArtifactInput struct {
	ID           string `json:"id,omitempty"`
	ArtifactType string `json:"artifactType,omitempty"`
	Type         string `json:"type,omitempty"`
	Rarity       any    `json:"rarity,omitempty"`
	Name         string `json:"name,omitempty"`
	CreatedAt    int64  `json:"createdAt,omitempty"`
}

type rawArtifact struct {
	ID           FlexString      `json:"id"`
	ArtifactType FlexString      `json:"artifactType"`
	Type         FlexString      `json:"type"`
	Rarity       json.RawMessage `json:"rarity"`
	Name         FlexString      `json:"name"`
	CreatedAt    FlexNumber      `json:"createdAt"`
}

// UnmarshalJSON decodes leniently, see ItemInput.UnmarshalJSON
func (in *ArtifactInput) UnmarshalJSON(b []byte) error {
	*in = ArtifactInput{}
	if !startsWith(b, '{') {
		return nil
	}
	var raw rawArtifact
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil
	}
	*in = ArtifactInput{
		ID:           string(raw.ID),
		ArtifactType: string(raw.ArtifactType),
		Type:         string(raw.Type),
		Rarity:       decodeRawRarity(raw.Rarity),
		Name:         string(raw.Name),
		CreatedAt:    int64(raw.CreatedAt),
	}
	return nil
}

// decodeRawRarity keeps numbers as json.Number and strings as strings so that
// NormalizeRarity can tell ranks from aliases.
func decodeRawRarity(b json.RawMessage) any {
	if len(b) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil
	}
	switch v.(type) {
	case json.Number, string:
		return v
	default:
		return nil
	}
}

type rawEquipped struct {
	Items     flexRefs `json:"items"`
	Artifacts flexRefs `json:"artifacts"`
}

func (r *rawEquipped) UnmarshalJSON(b []byte) error {
	*r = rawEquipped{}
	if !startsWith(b, '{') {
		return nil
	}
	type plain rawEquipped
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return nil
	}
	*r = rawEquipped(p)
	return nil
}

type rawState struct {
	V         FlexNumber  `json:"v"`
	Items     flexList    `json:"items"`
	Artifacts flexList    `json:"artifacts"`
	Equipped  rawEquipped `json:"equipped"`
	UpdatedAt FlexNumber  `json:"updatedAt"`
}
