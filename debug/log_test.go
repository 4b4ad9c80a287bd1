package debug

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogf(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	old := logOut
	logOut = buf
	defer func() { logOut = old }()

	Logf("walk %s %v\n", "a.b", map[string]any{"k": 1})
	got := buf.String()
	if !strings.HasPrefix(got, "walk a.b {") {
		t.Errorf("Logf() = %q", got)
	}
	if !strings.Contains(got, `"k": 1`) {
		t.Errorf("Logf() did not render map as JSON: %q", got)
	}
}

func TestBoolEnv(t *testing.T) {
	t.Setenv("KVC_TEST_FLAG", "true")
	if !boolEnv("KVC_TEST_FLAG") {
		t.Error("boolEnv(true) = false")
	}
	t.Setenv("KVC_TEST_FLAG", "nope")
	if boolEnv("KVC_TEST_FLAG") {
		t.Error("boolEnv(nope) = true")
	}
	if boolEnv("KVC_TEST_FLAG_UNSET") {
		t.Error("boolEnv(unset) = true")
	}
}
