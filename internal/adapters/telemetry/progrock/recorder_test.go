package progrock_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bakehouse/internal/adapters/logger"
	"go.trai.ch/bakehouse/internal/adapters/telemetry/progrock"
)

func TestNew(t *testing.T) {
	recorder := progrock.New(logger.NewWithWriter(io.Discard))
	assert.NotNil(t, recorder)
	require.NoError(t, recorder.Close())
}

func TestRecorder_Record(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf)
	log.SetVerbose(true)
	recorder := progrock.New(log)

	ctx, vertex := recorder.Record(context.Background(), "scan workspace")
	fromCtx, ok := progrock.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, vertex, fromCtx)

	_, err := vertex.Stdout().Write([]byte("apps/api\n"))
	require.NoError(t, err)
	vertex.Complete(nil)

	_, failed := recorder.Record(context.Background(), "write bake file")
	failed.Complete(errors.New("read-only file system"))

	_, reused := recorder.Record(context.Background(), "dockerfile root")
	reused.Cached()
	reused.Complete(nil)

	require.NoError(t, recorder.Close())

	out := buf.String()
	assert.Contains(t, out, "phase output")
	assert.Contains(t, out, "apps/api")
	assert.Equal(t, 1, strings.Count(out, "phase completed"))
	assert.Contains(t, out, "phase failed")
	assert.Contains(t, out, "read-only file system")
	assert.Contains(t, out, "phase cached")
}

func TestRecorder_Record_SameNameTwice(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf)
	log.SetVerbose(true)
	recorder := progrock.New(log)

	for range 2 {
		_, vertex := recorder.Record(context.Background(), "plan targets")
		vertex.Complete(nil)
	}

	assert.Equal(t, 2, strings.Count(buf.String(), "phase completed"))
}

func TestRecorder_Record_QuietByDefault(t *testing.T) {
	var buf bytes.Buffer
	recorder := progrock.New(logger.NewWithWriter(&buf))

	_, vertex := recorder.Record(context.Background(), "scan workspace")
	vertex.Complete(nil)

	assert.Empty(t, buf.String())
}

func TestVertexFromContext_Missing(t *testing.T) {
	_, ok := progrock.VertexFromContext(context.Background())
	assert.False(t, ok)
}
