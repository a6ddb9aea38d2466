package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testProject = `
<project firmware="2.10">
  <units>
    <unit id="1" serial="SN100" name="Helm" unitTypeId="101"/>
    <unit id="7" serial="SN200" name="Bow" unitTypeId="1">
      <unitChannelGroup channelGroupId="1">
        <channel number="1" name="Nav" inMainChannelSettingId="1"/>
      </unitChannelGroup>
    </unit>
  </units>
  <schemas>
    <schema id="1" name="Lighting" sortIndex="0">
      <component componentId="1281" id="c1">
        <property id="0" value="0"/>
        <property id="1" value="0"/>
      </component>
    </schema>
  </schemas>
</project>`

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

func TestRunValidate_ValidFile(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	path := writeTestFile(t, "vessel.nxt", testProject)
	exitCode := RunValidate([]string{path}, stdout, stderr)

	if exitCode != exitSuccess {
		t.Errorf("expected exit code %d, got %d", exitSuccess, exitCode)
		t.Logf("stderr: %s", stderr.String())
	}

	if !strings.Contains(stdout.String(), "OK") {
		t.Errorf("expected OK in output, got: %s", stdout.String())
	}
}

func TestRunValidate_InvalidFile(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	path := writeTestFile(t, "empty.nxt", `<project><units/></project>`)
	exitCode := RunValidate([]string{path}, stdout, stderr)

	if exitCode != exitValidation {
		t.Errorf("expected exit code %d (validation failed), got %d", exitValidation, exitCode)
	}

	if !strings.Contains(stdout.String(), "NO_UNITS") {
		t.Errorf("expected NO_UNITS violation in output, got: %s", stdout.String())
	}
}

func TestRunValidate_MissingFile(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := RunValidate([]string{"/nonexistent/vessel.nxt"}, stdout, stderr)

	if exitCode != exitCommandError {
		t.Errorf("expected exit code %d, got %d", exitCommandError, exitCode)
	}
}

func TestRunValidate_NoFile(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := RunValidate([]string{}, stdout, stderr)

	if exitCode != exitCommandError {
		t.Errorf("expected exit code %d, got %d", exitCommandError, exitCode)
	}

	if !strings.Contains(stderr.String(), "no file specified") {
		t.Errorf("expected 'no file specified' in stderr, got: %s", stderr.String())
	}
}

func TestRunValidate_JSONOutput(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	path := writeTestFile(t, "vessel.nxt", testProject)
	exitCode := RunValidate([]string{"--json", path}, stdout, stderr)

	if exitCode != exitSuccess {
		t.Fatalf("expected exit code %d, got %d\nstderr: %s", exitSuccess, exitCode, stderr.String())
	}

	var result struct {
		Valid bool `json:"valid"`
	}
	if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, stdout.String())
	}
	if !result.Valid {
		t.Errorf("expected valid=true in JSON output: %s", stdout.String())
	}
}

func TestRunDecode(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	path := writeTestFile(t, "vessel.nxt", testProject)
	exitCode := RunDecode([]string{path}, stdout, stderr)

	if exitCode != exitSuccess {
		t.Fatalf("expected exit code %d, got %d\nstderr: %s", exitSuccess, exitCode, stderr.String())
	}

	var project struct {
		MasterDevice int `json:"master_device"`
		Statistics   struct {
			Units      int `json:"units"`
			Components int `json:"components"`
		} `json:"statistics"`
	}
	if err := json.Unmarshal(stdout.Bytes(), &project); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, stdout.String())
	}

	if project.Statistics.Units != 2 {
		t.Errorf("units = %d, want 2", project.Statistics.Units)
	}
	if project.Statistics.Components != 1 {
		t.Errorf("components = %d, want 1", project.Statistics.Components)
	}
	if project.MasterDevice != 1 {
		t.Errorf("master_device = %d, want 1", project.MasterDevice)
	}
}

func TestRunDecode_CompactFlag(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	path := writeTestFile(t, "vessel.nxt", testProject)
	exitCode := RunDecode([]string{"--compact", path}, stdout, stderr)

	if exitCode != exitSuccess {
		t.Fatalf("expected exit code %d, got %d\nstderr: %s", exitSuccess, exitCode, stderr.String())
	}

	out := strings.TrimSpace(stdout.String())
	if strings.Count(out, "\n") != 0 {
		t.Error("compact output should be a single line")
	}
}

func TestRunDecode_StructuralError(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	path := writeTestFile(t, "empty.nxt", `<project><units/></project>`)
	exitCode := RunDecode([]string{path}, stdout, stderr)

	if exitCode != exitCommandError {
		t.Errorf("expected exit code %d, got %d", exitCommandError, exitCode)
	}
	if stdout.Len() != 0 {
		t.Errorf("expected no stdout on decode failure, got: %s", stdout.String())
	}
}

func TestRunSummary(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	path := writeTestFile(t, "vessel.nxt", testProject)
	exitCode := RunSummary([]string{path}, stdout, stderr)

	if exitCode != exitSuccess {
		t.Fatalf("expected exit code %d, got %d\nstderr: %s", exitSuccess, exitCode, stderr.String())
	}

	out := stdout.String()
	for _, fragment := range []string{
		"Firmware:       2.10",
		"Master device:  unit 1",
		"Units:          2",
		"Components:     1 (0 skipped)",
	} {
		if !strings.Contains(out, fragment) {
			t.Errorf("expected %q in output:\n%s", fragment, out)
		}
	}
}

func TestRunDecode_WithConfigFile(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	configPath := writeTestFile(t, "config.yaml", "import:\n  max_file_size: 10\n")
	path := writeTestFile(t, "vessel.nxt", testProject)

	exitCode := RunDecode([]string{"--config", configPath, path}, stdout, stderr)

	// The configured 10-byte limit rejects the file.
	if exitCode != exitCommandError {
		t.Errorf("expected exit code %d with tiny size limit, got %d", exitCommandError, exitCode)
	}
	if !strings.Contains(stderr.String(), "size") {
		t.Errorf("expected size error on stderr, got: %s", stderr.String())
	}
}

func TestRunValidate_BadConfigFile(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	configPath := writeTestFile(t, "config.yaml", "logging:\n  level: loud\n")
	path := writeTestFile(t, "vessel.nxt", testProject)

	exitCode := RunValidate([]string{"--config", configPath, path}, stdout, stderr)

	if exitCode != exitCommandError {
		t.Errorf("expected exit code %d for invalid config, got %d", exitCommandError, exitCode)
	}
}
