package aitriage

import (
	"bytes"
	"log/slog"
	"testing"
	"time"
)

func TestReportLogValue(t *testing.T) {
	rep := Report{
		Raw:         "api key not valid",
		Code:        CodeForbidden,
		Signal:      SignalAPIKeyClaim,
		UserMessage: MsgInvalidKey,
		At:          time.Now(),
	}

	logVal := rep.LogValue()
	if logVal.Kind() != slog.KindGroup {
		t.Error("LogValue should return a group")
	}

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	logger.Info("classification", "report", rep)

	output := buf.String()
	for _, want := range []string{"403", "initiateAutoApiKeyClaim", "api key not valid"} {
		if !bytes.Contains([]byte(output), []byte(want)) {
			t.Errorf("expected %q in log output, got %s", want, output)
		}
	}
}

func TestReportLogValueNoSignal(t *testing.T) {
	rep := Report{Raw: "Failed to fetch", Code: CodeNetwork, UserMessage: MsgNetwork}

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	logger.Info("classification", "report", rep)

	if bytes.Contains(buf.Bytes(), []byte("signal")) {
		t.Errorf("expected no signal attribute, got %s", buf.String())
	}
}
