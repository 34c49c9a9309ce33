package logger

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestSetVerbose(t *testing.T) {
	t.Cleanup(func() { SetVerbose(false) })

	SetVerbose(true)
	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())

	SetVerbose(false)
	assert.Equal(t, logrus.WarnLevel, Log.GetLevel())
}

func TestDefaultLevelHidesInfo(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf)

	l.Info("not shown")
	l.WithField("app_id", 440).Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "not shown")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "app_id=440")
}
