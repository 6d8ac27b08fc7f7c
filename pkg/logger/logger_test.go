package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInitReadsLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	Init()
	if Log.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v, want debug", Log.GetLevel())
	}
	if _, ok := Log.Formatter.(*logrus.JSONFormatter); !ok {
		t.Errorf("formatter = %T, want JSON", Log.Formatter)
	}
}

func TestInitFallsBackToInfo(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	t.Setenv("LOG_FORMAT", "")
	Init()
	if Log.GetLevel() != logrus.InfoLevel {
		t.Errorf("level = %v, want info", Log.GetLevel())
	}
	if _, ok := Log.Formatter.(*logrus.TextFormatter); !ok {
		t.Errorf("formatter = %T, want text", Log.Formatter)
	}
}
