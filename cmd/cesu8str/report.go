package main

import (
	"io"

	"github.com/goccy/go-json"

	"github.com/wippyai/cesu8str/errors"
	"github.com/wippyai/cesu8str/internal/config"
	"github.com/wippyai/cesu8str/stream"
)

type runReport struct {
	Outcome   string        `json:"outcome"`
	Direction string        `json:"direction"`
	Variant   string        `json:"variant"`
	Error     string        `json:"error,omitempty"`
	Faults    []faultReport `json:"faults,omitempty"`
	BytesIn   int64         `json:"bytes_in"`
	BytesOut  int64         `json:"bytes_out"`
	ExitCode  int           `json:"exit_code"`
	ChunkSize int           `json:"chunk_size"`
	Reads     int           `json:"reads"`
}

type faultReport struct {
	Kind    string `json:"kind"`
	Context string `json:"context,omitempty"`
	Offset  int64  `json:"offset"`
	Length  int    `json:"length"`
}

func writeReport(w io.Writer, cfg config.Config, rep *stream.Report) error {
	r := runReport{
		Outcome:   rep.Outcome.String(),
		Direction: cfg.Direction().String(),
		Variant:   cfg.Variant().String(),
		BytesIn:   rep.BytesIn,
		BytesOut:  rep.BytesOut,
		ExitCode:  rep.Outcome.ExitCode(),
		ChunkSize: cfg.ChunkSize,
		Reads:     rep.Reads,
	}
	if rep.Err != nil {
		r.Error = rep.Err.Error()
	}
	for _, f := range rep.Faults {
		fr := faultReport{Kind: string(f.Kind), Offset: f.Offset, Length: f.Length}
		if len(f.Context) > 0 {
			fr.Context = errors.HexContext(f.Context)
		}
		r.Faults = append(r.Faults, fr)
	}
	return json.NewEncoder(w).Encode(r)
}
