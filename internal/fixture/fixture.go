// Package fixture plays the role of the external decoder collaborator
// (§6) for tests and the CLI demo: it replays gzip+msgpack-encoded
// fixture frames from disk into a ResultSet instead of decoding real
// BUFR bytes, which remains explicitly out of this repository's scope
// (§1 Non-goals).
package fixture

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/klauspost/compress/gzip"
	"github.com/rhoneyager-tomorrow/ioda-converters/internal/frame"
	"github.com/rhoneyager-tomorrow/ioda-converters/internal/query"
	"github.com/rhoneyager-tomorrow/ioda-converters/internal/resultset"
	"github.com/rhoneyager-tomorrow/ioda-converters/pkg/types"
	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v5"
)

// Message is the on-disk shape of one decoded record: a subset name and
// one Field per exported node name.
type Message struct {
	Subset string           `msgpack:"subset"`
	Fields map[string]Field `msgpack:"fields"`
}

// Field mirrors frame.DataField/frame.TargetDescriptor in a
// wire-friendly shape. DimPaths are stored as their textual query form
// (§4.A) and reparsed on load.
type Field struct {
	Data          []float64 `msgpack:"data"`
	SeqCounts     [][]int   `msgpack:"seq_counts"`
	DimPaths      []string  `msgpack:"dim_paths"`
	ExportDimIdxs []int     `msgpack:"export_dim_idxs"`
	Reference     int64     `msgpack:"reference"`
	Bits          uint32    `msgpack:"bits"`
	Scale         int32     `msgpack:"scale"`
	Unit          string    `msgpack:"unit"`
}

// Load reads a gzip+msgpack fixture file and replays every message whose
// subset is admitted by qs into a new ResultSet, in qs.Names() order
// (§4.D.1, §4.E).
func Load(path string, qs *query.QuerySet) (*resultset.ResultSet, error) {
	return LoadWithLogger(path, qs, zerolog.Nop())
}

// LoadWithLogger is Load, but logs one debug line per admitted frame with
// a per-frame correlation ID, the way a real decoder would log message
// handling (§4.G).
func LoadWithLogger(path string, qs *query.QuerySet, logger zerolog.Logger) (*resultset.ResultSet, error) {
	log := logger.With().Str("component", "fixture-loader").Str("path", path).Logger()

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFixtureNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrFixtureCorrupt, path, err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFixtureCorrupt, path, err)
	}
	defer gz.Close()

	names := qs.Names()
	rs := resultset.New(names)
	decoder := msgpack.NewDecoder(gz)

	for {
		var msg Message
		if err := decoder.Decode(&msg); err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("%w: %s: %v", ErrFixtureCorrupt, path, err)
		}

		if !qs.IncludesSubset(msg.Subset) {
			continue
		}

		frameID := uuid.NewString()
		log.Debug().Str("frame_id", frameID).Str("subset", msg.Subset).Msg("replaying fixture frame")

		df := rs.NextDataFrame()
		for idx, name := range names {
			field, ok := msg.Fields[name]
			if !ok {
				continue
			}

			dimPaths := make([]types.Query, 0, len(field.DimPaths))
			for _, raw := range field.DimPaths {
				parsed, err := query.Parse(raw)
				if err != nil {
					return nil, fmt.Errorf("%w: %s: dim path %q: %v", ErrFixtureCorrupt, path, raw, err)
				}
				if len(parsed) > 0 {
					dimPaths = append(dimPaths, parsed[0])
				}
			}

			dataField := frame.DataField{
				Data:      field.Data,
				SeqCounts: field.SeqCounts,
				Target: &frame.TargetDescriptor{
					DimPaths:      dimPaths,
					ExportDimIdxs: field.ExportDimIdxs,
					TypeInfo: types.TypeInfo{
						Reference: field.Reference,
						Bits:      field.Bits,
						Scale:     field.Scale,
						Unit:      field.Unit,
					},
					Unit: field.Unit,
				},
			}

			if err := df.SetField(idx, dataField); err != nil {
				return nil, err
			}
		}
	}

	return rs, nil
}
