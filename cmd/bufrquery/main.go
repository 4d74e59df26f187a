// Command bufrquery is a small demo/debug driver for the ResultSet
// pipeline (§4.H): it builds a QuerySet from repeatable flags, replays a
// fixture file through it, resolves one field to a dense array, and
// prints the field name, dims and element count as JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rhoneyager-tomorrow/ioda-converters/internal/config"
	"github.com/rhoneyager-tomorrow/ioda-converters/internal/fixture"
	"github.com/rhoneyager-tomorrow/ioda-converters/internal/logger"
	"github.com/rhoneyager-tomorrow/ioda-converters/internal/query"
	"github.com/rs/zerolog/log"
)

// Version is set at build time.
var Version = "dev"

type repeatedFlag []string

func (r *repeatedFlag) String() string { return strings.Join(*r, ",") }
func (r *repeatedFlag) Set(v string) error {
	*r = append(*r, v)
	return nil
}

func main() {
	var (
		configPath  string
		fixturePath string
		queries     repeatedFlag
		subsets     repeatedFlag
		field       string
		groupBy     string
		overrideTy  string
	)

	fs := flag.NewFlagSet("bufrquery", flag.ExitOnError)
	fs.StringVar(&configPath, "config", "", "path to a TOML config file")
	fs.StringVar(&fixturePath, "fixture", "", "path to a gzip+msgpack fixture file")
	fs.Var(&queries, "query", "name=path query to register (repeatable)")
	fs.Var(&subsets, "subset", "subset name to admit (repeatable)")
	fs.StringVar(&field, "field", "", "field name to resolve into a dense array")
	fs.StringVar(&groupBy, "group-by", "", "optional group-by field name")
	fs.StringVar(&overrideTy, "type", "", "optional override type (int32, float64, string, ...)")
	fs.Parse(os.Args[1:])

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Setup(cfg.Log.Level, cfg.Log.Format)
	log.Info().Str("version", Version).Msg("starting bufrquery")

	if fixturePath == "" {
		fixturePath = cfg.Fixture.Path
	}
	if fixturePath == "" {
		log.Fatal().Msg("no fixture path given (set -fixture or fixture.path)")
	}

	qs := query.NewRestricted(subsets)
	for _, qstr := range queries {
		name, path, ok := strings.Cut(qstr, "=")
		if !ok {
			log.Fatal().Str("query", qstr).Msg("-query must be of the form name=path")
		}
		if err := qs.Add(name, path); err != nil {
			log.Fatal().Err(err).Str("query", qstr).Msg("failed to register query")
		}
	}

	rs, err := fixture.LoadWithLogger(fixturePath, qs, logger.Get("fixture"))
	if err != nil {
		log.Fatal().Err(err).Str("path", fixturePath).Msg("failed to load fixture")
	}

	log.Info().Int("frame_count", rs.FrameCount()).Msg("fixture loaded")

	if cfg.Fixture.MissingValueOverride != 0 {
		rs.SetMissingThreshold(cfg.Fixture.MissingValueOverride)
	}

	if field == "" {
		log.Info().Msg("no -field given, exiting after load")
		return
	}

	obj, err := rs.Get(field, groupBy, overrideTy)
	if err != nil {
		log.Fatal().Err(err).Str("field", field).Msg("failed to resolve field")
	}

	out := map[string]any{
		"field": field,
		"dims":  obj.Dims(),
		"len":   obj.Len(),
	}
	enc, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to marshal result")
	}
	fmt.Println(string(enc))
}
