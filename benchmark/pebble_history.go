package benchmark

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/rs/zerolog/log"
)

var _ History = (*PebbleHistory)(nil)

// PebbleHistory implements the History interface for Pebble
type PebbleHistory struct {
	db *pebble.DB
}

// OpenPebbleHistory opens (or creates) a Pebble-backed history store
func OpenPebbleHistory(cfg HistoryConfig) (*PebbleHistory, error) {
	if cfg.Path == "" {
		return nil, ErrHistoryDisabled
	}

	opts := &pebble.Options{}
	if cfg.ReadOnly {
		opts.ReadOnly = true
	}

	db, err := pebble.Open(cfg.Path, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database %s: %w", cfg.Path, err)
	}

	log.Debug().Str("path", cfg.Path).Bool("read_only", cfg.ReadOnly).Msg("Opened history database")
	return &PebbleHistory{db: db}, nil
}

// Append implements History.Append for Pebble
func (p *PebbleHistory) Append(cmp *Comparison) error {
	if p.db == nil {
		return ErrHistoryClosed
	}

	value, err := json.Marshal(cmp)
	if err != nil {
		return fmt.Errorf("failed to encode comparison: %w", err)
	}
	return p.db.Set(historyKey(cmp), value, pebble.Sync)
}

// List implements History.List for Pebble
func (p *PebbleHistory) List(limit int) ([]*Comparison, error) {
	if p.db == nil {
		return nil, ErrHistoryClosed
	}

	iter, err := p.db.NewIter(&pebble.IterOptions{
		LowerBound: historyPrefix,
		UpperBound: historyUpperBound(),
	})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var out []*Comparison
	for valid := iter.Last(); valid; valid = iter.Prev() {
		var cmp Comparison
		if err := json.Unmarshal(iter.Value(), &cmp); err != nil {
			return nil, fmt.Errorf("failed to decode comparison at key %x: %w", iter.Key(), err)
		}
		out = append(out, &cmp)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}
	return out, nil
}

// Close implements History.Close for Pebble
func (p *PebbleHistory) Close() error {
	var err error
	if p.db != nil {
		err = p.db.Close()
		p.db = nil
	}
	return err
}
