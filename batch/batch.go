package batch

import (
	"errors"
	"io"

	"github.com/midbel/trigint/config"
	"github.com/midbel/trigint/integral"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("trigint.batch")

type Stats struct {
	Total  int
	Failed int
}

// Run integrates every expression read from r and writes one record per
// expression to w. Invalid expressions are reported in their record and do
// not stop the batch.
func Run(cfg config.Config, r io.Reader, w io.Writer) (Stats, error) {
	var stats Stats
	dec, err := NewDecoder(cfg.Input, r)
	if err != nil {
		return stats, err
	}
	enc, err := NewEncoder(cfg, w)
	if err != nil {
		return stats, err
	}
	for {
		src, err := dec.Decode()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return stats, err
		}
		rec := Evaluate(cfg, src)
		stats.Total++
		if rec.Failed() {
			stats.Failed++
			log.Debugf("line %d: %s", src.Line, rec.Err)
		}
		if err := enc.Encode(rec); err != nil {
			return stats, err
		}
	}
	log.Infof("%d expression(s) integrated, %d failure(s)", stats.Total, stats.Failed)
	return stats, enc.Flush()
}

func Evaluate(cfg config.Config, src Source) Record {
	rec := Record{
		Source: src,
	}
	res, err := integral.Calculate(src.Expr)
	if err != nil {
		rec.Err = err
		return rec
	}
	rec.Result = res.Format(cfg.Style)
	if cfg.Explain {
		rec.Explain = res.Explain(cfg.Style)
	}
	return rec
}
