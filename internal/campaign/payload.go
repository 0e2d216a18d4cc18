// Package campaign handles the campaign-import boundary: decoding a
// partially specified payload into a strict internal shape and reconciling
// its date fields into a complete, self-consistent contest schedule.
package campaign

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/contestlet/contestlet/internal/timezone"
)

// Payload is the campaign-import shape. Any subset of the three date fields
// may be present; timestamps must carry an explicit zone designator.
type Payload struct {
	Name         string  `json:"name" validate:"omitempty,max=200"`
	Timezone     string  `json:"timezone" validate:"omitempty"`
	Start        *string `json:"start" validate:"omitempty"`
	End          *string `json:"end" validate:"omitempty"`
	DurationDays *int    `json:"duration_days" validate:"omitempty,min=1"`
}

var validate = validator.New()

// DecodePayload decodes a campaign payload strictly. Unknown fields are
// rejected at the boundary rather than threaded into date arithmetic.
func DecodePayload(data []byte) (*Payload, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var p Payload
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("malformed campaign payload: %w", err)
	}
	if err := validate.Struct(&p); err != nil {
		return nil, fmt.Errorf("invalid campaign payload: %w", err)
	}
	return &p, nil
}

// Dates extracts the payload's date fields as a DateTriple, parsing
// timestamps through the strict boundary parser.
func (p *Payload) Dates() (DateTriple, error) {
	var t DateTriple
	if p.Start != nil {
		ts, err := timezone.ParseInstant(*p.Start)
		if err != nil {
			return DateTriple{}, err
		}
		t.Start = &ts
	}
	if p.End != nil {
		ts, err := timezone.ParseInstant(*p.End)
		if err != nil {
			return DateTriple{}, err
		}
		t.End = &ts
	}
	t.DurationDays = p.DurationDays
	return t, nil
}

// Zone returns the payload's display zone, falling back to fallback when
// the payload does not carry one.
func (p *Payload) Zone(fallback timezone.ID) timezone.ID {
	if p.Timezone == "" {
		return fallback
	}
	return timezone.ID(p.Timezone)
}
