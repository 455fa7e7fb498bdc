package graph

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/c360studio/semstreams/component"
	"github.com/c360studio/semstreams/message"
)

func init() {
	err := component.RegisterPayload(&component.PayloadRegistration{
		Domain:      "semowl",
		Category:    "report",
		Version:     "v1",
		Description: "Validation report with its run, rule and issue entities as triples",
		Factory:     func() any { return &ReportPayload{} },
	})
	if err != nil {
		panic("failed to register ReportPayload: " + err.Error())
	}
}

// ReportType is the message type for validation report payloads.
var ReportType = message.Type{Domain: "semowl", Category: "report", Version: "v1"}

// ReportPayload implements message.Payload for publishing a validation
// report to the graph.
type ReportPayload struct {
	ReportID    string           `json:"id"`
	Ontology    string           `json:"ontology,omitempty"`
	Errors      int              `json:"errors"`
	Warnings    int              `json:"warnings"`
	TripleData  []message.Triple `json:"triples"`
	GeneratedAt time.Time        `json:"generated_at"`
}

func (p *ReportPayload) EntityID() string          { return p.ReportID }
func (p *ReportPayload) Triples() []message.Triple { return p.TripleData }
func (p *ReportPayload) Schema() message.Type      { return ReportType }

func (p *ReportPayload) Validate() error {
	if p.ReportID == "" {
		return errors.New("report ID is required")
	}
	return nil
}

func (p *ReportPayload) MarshalJSON() ([]byte, error) {
	type Alias ReportPayload
	return json.Marshal((*Alias)(p))
}

func (p *ReportPayload) UnmarshalJSON(data []byte) error {
	type Alias ReportPayload
	return json.Unmarshal(data, (*Alias)(p))
}
