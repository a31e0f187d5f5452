package logger_test

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"go.trai.ch/gzap/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestLogger_ErrorChainFormat(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	log := logger.New()
	log.SetOutput(buf)

	err := zerr.Wrap(zerr.New("disk exploded"), "failed to remove cache")
	log.Error(err)

	g := goldie.New(t)
	g.Assert(t, "error_chain", buf.Bytes())
}
