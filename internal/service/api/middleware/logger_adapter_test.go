package middleware

import (
	"bytes"
	"testing"

	applog "github.com/darkkaiser/lensyz-store/pkg/log"
	"github.com/labstack/gommon/log"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestAdapter() (Logger, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	l := logrus.New()
	l.SetOutput(buf)
	l.SetFormatter(&logrus.JSONFormatter{})
	return Logger{Logger: l}, buf
}

func TestLogger_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		echoLevel log.Lvl
		appLevel  applog.Level
	}{
		{log.DEBUG, applog.DebugLevel},
		{log.INFO, applog.InfoLevel},
		{log.WARN, applog.WarnLevel},
		{log.ERROR, applog.ErrorLevel},
	}

	for _, tt := range tests {
		l, _ := newTestAdapter()

		l.SetLevel(tt.echoLevel)
		assert.Equal(t, tt.appLevel, l.Logger.Level)
		assert.Equal(t, tt.echoLevel, l.Level())
	}

	l, _ := newTestAdapter()
	l.SetLevel(log.ERROR)
	l.SetLevel(log.OFF)
	assert.Equal(t, applog.ErrorLevel, l.Logger.Level, "OFF는 무시됩니다")

	l.Logger.SetLevel(applog.FatalLevel)
	assert.Equal(t, log.OFF, l.Level())
}

func TestLogger_Output(t *testing.T) {
	t.Parallel()

	l, buf := newTestAdapter()
	assert.Same(t, buf, l.Output())
	assert.Equal(t, "", l.Prefix())

	l.Infof("echo %s", "started")
	l.Warnj(log.JSON{"port": 8080})

	out := buf.String()
	assert.Contains(t, out, `"msg":"echo started"`)
	assert.Contains(t, out, `"port":8080`)
	assert.Contains(t, out, `"level":"warning"`)

	other := new(bytes.Buffer)
	l.SetOutput(other)
	l.Error("boom")
	assert.Contains(t, other.String(), "boom")
}
