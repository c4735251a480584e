// Package message decodes the JSON body served by the message endpoints:
//
//	{"message": "Hi", "color": "#FF0000"}
//
// "message" is required, "color" is optional.
package message

import (
	"errors"
	"fmt"
	"image/color"

	"portal/portal/rgb565"

	"github.com/mailru/easyjson"
)

var (
	// ErrMissingMessage is returned when the body has no "message" key.
	ErrMissingMessage = errors.New(`message: missing "message" field`)
	// ErrMalformed is returned when the body is not a JSON object.
	ErrMalformed = errors.New("message: malformed body")
)

// Payload is the wire form. Nil fields were absent (or null) in the body.
//
//easyjson:json
type Payload struct {
	Message *string `json:"message"`
	Color   *string `json:"color,omitempty"`
}

// NewPayload builds a payload; an empty color is left out.
func NewPayload(text, color string) Payload {
	p := Payload{Message: &text}
	if color != "" {
		p.Color = &color
	}
	return p
}

// Message is a decoded payload.
type Message struct {
	Text     string
	Color    color.RGBA
	HasColor bool
}

// Packed returns the color in the display's 16-bit layout.
func (m Message) Packed() uint16 { return rgb565.PackRGBA(m.Color) }

// Decode parses body and extracts the message and optional color.
func Decode(body []byte) (Message, error) {
	var p Payload
	if err := easyjson.Unmarshal(body, &p); err != nil {
		return Message{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if p.Message == nil {
		return Message{}, ErrMissingMessage
	}

	m := Message{Text: *p.Message}
	if p.Color != nil {
		c, err := rgb565.ParseHex(*p.Color)
		if err != nil {
			return Message{}, fmt.Errorf("message color: %w", err)
		}
		m.Color = c
		m.HasColor = true
	}
	return m, nil
}
