package record

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/guyvdb/srplist/fault"
)

// Record is a single reimbursement request as delivered by the bulk fetch.
// Records are never modified once loaded.
type Record struct {
	Id              int64     `json:"id"`
	Href            string    `json:"href"`
	Status          Status    `json:"status"`
	Alliance        string    `json:"alliance"`
	Corporation     string    `json:"corporation"`
	Pilot           string    `json:"pilot"`
	Ship            string    `json:"ship"`
	Division        string    `json:"division"`
	System          string    `json:"system"`
	KillTimestamp   time.Time `json:"kill_timestamp"`
	SubmitTimestamp time.Time `json:"submit_timestamp"`
	Payout          float64   `json:"payout"`
}

func (r *Record) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

func (r *Record) Unmarshal(data []byte) error {
	return json.Unmarshal(data, r)
}

type payload struct {
	Requests []Record `json:"requests"`
}

// Decode reads the bulk payload, an object whose "requests" member holds
// the records in display order.
func Decode(r io.Reader) ([]Record, error) {
	var p payload
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: %w", fault.ErrInvalidRecord, err)
	}
	for i := range p.Requests {
		if p.Requests[i].Status == StatusUnknown {
			return nil, fmt.Errorf("%w: request %d has no status", fault.ErrInvalidRecord, p.Requests[i].Id)
		}
	}
	slog.Debug("record.Decode - decoded payload", "requests", len(p.Requests))
	return p.Requests, nil
}
