package progrock

import (
	"strings"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/bakehouse/internal/core/ports"
)

var _ progrock.Writer = (*LogWriter)(nil)

// LogWriter is a progrock.Writer that reports finished vertices and their
// output to a logger at debug level.
type LogWriter struct {
	logger ports.Logger

	mu    sync.Mutex
	names map[string]string
	done  map[string]struct{}
}

// NewLogWriter creates a LogWriter reporting to logger.
func NewLogWriter(logger ports.Logger) *LogWriter {
	return &LogWriter{
		logger: logger,
		names:  make(map[string]string),
		done:   make(map[string]struct{}),
	}
}

// WriteStatus logs every vertex that completed in update, once per run of
// the vertex, and the output written to it.
func (w *LogWriter) WriteStatus(update *progrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, v := range update.Vertexes {
		w.names[v.Id] = v.Name
		if v.Completed == nil {
			// Started again under the same name.
			delete(w.done, v.Id)
			continue
		}
		if _, ok := w.done[v.Id]; ok {
			continue
		}
		w.done[v.Id] = struct{}{}
		w.logCompleted(v)
	}

	for _, l := range update.Logs {
		out := strings.TrimRight(string(l.Data), "\n")
		if out == "" {
			continue
		}
		w.logger.Debug("phase output", "phase", w.names[l.Vertex], "output", out)
	}
	return nil
}

func (w *LogWriter) logCompleted(v *progrock.Vertex) {
	args := []any{"phase", v.Name}
	if v.Started != nil {
		args = append(args, "duration", v.Completed.AsTime().Sub(v.Started.AsTime()))
	}

	switch {
	case v.Error != nil:
		w.logger.Debug("phase failed", append(args, "error", *v.Error)...)
	case v.Canceled:
		w.logger.Debug("phase canceled", args...)
	case v.Cached:
		w.logger.Debug("phase cached", args...)
	default:
		w.logger.Debug("phase completed", args...)
	}
}

// Close does nothing; the logger outlives the recording.
func (w *LogWriter) Close() error {
	return nil
}
