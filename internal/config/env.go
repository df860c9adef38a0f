package config

import (
	"fmt"
	"strconv"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "REDIST_"

type lookupFunc func(string) (string, bool)

// applyEnv overlays REDIST_* variables onto cfg. Set-but-empty variables are
// ignored; malformed numbers are errors.
func applyEnv(cfg *Config, lookup lookupFunc) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok && v != "" {
			*dst = v
		}
	}
	num := func(key string, dst *int) error {
		v, ok := lookup(EnvPrefix + key)
		if !ok || v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s%s=%q: %w", EnvPrefix, key, v, err)
		}
		*dst = n
		return nil
	}

	str("DEM_ATTR", &cfg.Attributes.Dem)
	str("REP_ATTR", &cfg.Attributes.Rep)
	str("POP_ATTR", &cfg.Attributes.Population)
	str("MODE", &cfg.Batch.Mode)
	str("METRIC", &cfg.Batch.Metric)
	str("ROUNDING", &cfg.Batch.Rounding)
	str("LOG_LEVEL", &cfg.Logging.Level)
	str("LOG_FORMAT", &cfg.Logging.Format)
	str("LOG_FILE", &cfg.Logging.File)
	str("METRICS_ADDR", &cfg.Metrics.Addr)

	for key, dst := range map[string]*int{
		"WORKERS":    &cfg.Batch.Workers,
		"TOWERS":     &cfg.Towers.Count,
		"OVERSAMPLE": &cfg.Towers.Oversample,
		"DISTRICTS":  &cfg.Towers.Districts,
	} {
		if err := num(key, dst); err != nil {
			return err
		}
	}

	if v, ok := lookup(EnvPrefix + "SEED"); ok && v != "" {
		s, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: %sSEED=%q: %w", EnvPrefix, v, err)
		}
		cfg.Towers.Seed = s
	}

	return nil
}
