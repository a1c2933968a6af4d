package cli

import (
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/bls2brs/pkg/pipeline"
)

// logTimeFormat stamps entries to the hundredth of a second, enough to tell
// the read, convert and render of a small save apart.
const logTimeFormat = "15:04:05.00"

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      logTimeFormat,
		Level:           level,
	})
}

// progress times the conversion of one save.
type progress struct {
	logger *log.Logger
	file   string
	start  time.Time
	now    func() time.Time
}

func newProgress(l *log.Logger, file string) *progress {
	return &progress{logger: l, file: file, start: time.Now(), now: time.Now}
}

// done logs the finished conversion, e.g.
// "Converted castle.bls bricks=5 unmapped=2 cached=false took=12ms".
func (p *progress) done(s pipeline.Summary, cached bool) {
	kv := []any{"bricks", s.TargetBricks}
	if s.Failure > 0 {
		kv = append(kv, "unmapped", s.Failure)
	}
	kv = append(kv, "cached", cached, "took", p.now().Sub(p.start).Round(time.Millisecond))
	p.logger.Info("Converted "+filepath.Base(p.file), kv...)
}
