// Package cli_test provides tests for the CLI package.
package cli_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/jmylchreest/divergent/internal/cli"
	"github.com/jmylchreest/divergent/internal/config"
	"github.com/jmylchreest/divergent/internal/diverging"
)

var (
	hexLine = regexp.MustCompile(`^#[0-9a-f]{6}$`)
	cssLine = regexp.MustCompile(`^rgb\(\d{1,3}, \d{1,3}, \d{1,3}\)$`)
)

// execute runs the command tree with args and returns stdout and stderr.
// The environment is pinned so local settings cannot leak into results.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	for _, key := range []string{
		config.EnvFormat, config.EnvThreshold, config.EnvLogLevel,
		config.EnvParallelThreshold, config.EnvPreset,
	} {
		t.Setenv(key, "")
	}
	t.Setenv(config.EnvNoColour, "1")

	var outBuf, errBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func lines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func TestGenerateCommand(t *testing.T) {
	t.Run("Hex", func(t *testing.T) {
		out, _, err := execute(t, "generate", "-n", "5")
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		got := lines(out)
		if len(got) != 5 {
			t.Fatalf("expected 5 lines, got %d:\n%s", len(got), out)
		}
		for _, l := range got {
			if !hexLine.MatchString(l) {
				t.Errorf("line %q is not a hex colour", l)
			}
		}
		if got[0] == got[4] {
			t.Errorf("arms should end in different hues: %v", got)
		}
	})

	t.Run("CSSStrings", func(t *testing.T) {
		out, _, err := execute(t, "generate", "-n", "3", "-f", "rgb_strings")
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		got := lines(out)
		if len(got) != 3 {
			t.Fatalf("expected 3 lines, got %d", len(got))
		}
		for _, l := range got {
			if !cssLine.MatchString(l) {
				t.Errorf("line %q is not an rgb() string", l)
			}
		}
	})

	t.Run("JSON", func(t *testing.T) {
		out, _, err := execute(t, "generate", "-n", "4", "--json", "-f", "rgb")
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		var got struct {
			Format  string       `json:"format"`
			Count   int          `json:"count"`
			Colours [][3]float64 `json:"colours"`
		}
		if err := json.Unmarshal([]byte(out), &got); err != nil {
			t.Fatalf("invalid JSON: %v\n%s", err, out)
		}
		if got.Format != "rgb" || got.Count != 4 || len(got.Colours) != 4 {
			t.Errorf("unexpected palette: %+v", got)
		}
		for _, c := range got.Colours {
			for _, v := range c {
				if v < 0 || v > 1 {
					t.Errorf("channel %v outside [0, 1]", v)
				}
			}
		}
	})

	t.Run("Preset", func(t *testing.T) {
		out, _, err := execute(t, "generate", "--preset", "blue-red 3", "-n", "7")
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		if n := len(lines(out)); n != 7 {
			t.Errorf("expected 7 lines, got %d", n)
		}
	})

	t.Run("UnknownPreset", func(t *testing.T) {
		_, _, err := execute(t, "generate", "--preset", "Ultraviolet")
		if !errors.Is(err, diverging.ErrUnresolvedPreset) {
			t.Errorf("expected ErrUnresolvedPreset, got %v", err)
		}
	})

	t.Run("InvalidCount", func(t *testing.T) {
		_, _, err := execute(t, "generate", "-n", "1")
		if !errors.Is(err, diverging.ErrInvalidParameter) {
			t.Fatalf("expected ErrInvalidParameter, got %v", err)
		}
		if !strings.Contains(err.Error(), "n=1") {
			t.Errorf("error does not name the parameter: %v", err)
		}
	})

	t.Run("InvalidFormat", func(t *testing.T) {
		_, _, err := execute(t, "generate", "-f", "hsl")
		if !errors.Is(err, diverging.ErrInvalidParameter) {
			t.Errorf("expected ErrInvalidParameter, got %v", err)
		}
	})

	t.Run("Preview", func(t *testing.T) {
		out, _, err := execute(t, "generate", "-n", "3", "--preview")
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		got := lines(out)
		if len(got) != 4 {
			t.Fatalf("expected a strip and 3 swatch lines, got %d:\n%q", len(got), out)
		}
		// Each swatch is a background block with black or white ink and
		// the hex value centred inside it.
		swatch := regexp.MustCompile(`^ +\d+  \x1b\[48;2;\d+;\d+;\d+m\x1b\[38;2;(0;0;0|255;255;255)m #[0-9a-f]{6} \x1b\[0m$`)
		for _, l := range got[1:] {
			if !swatch.MatchString(l) {
				t.Errorf("line %q is not a labelled swatch", l)
			}
		}
	})

	t.Run("JSONAndPreviewExclusive", func(t *testing.T) {
		if _, _, err := execute(t, "generate", "--json", "--preview"); err == nil {
			t.Error("expected an error for --json with --preview")
		}
	})

	t.Run("OutputFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "palette.txt")
		out, _, err := execute(t, "generate", "-n", "6", "-o", path)
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		if out != "" {
			t.Errorf("expected nothing on stdout, got %q", out)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if n := len(lines(string(data))); n != 6 {
			t.Errorf("expected 6 lines in %s, got %d", path, n)
		}
	})

	t.Run("Verbose", func(t *testing.T) {
		_, stderr, err := execute(t, "generate", "-n", "3", "-v")
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		if !strings.Contains(stderr, "generated palette") {
			t.Errorf("expected debug log on stderr, got %q", stderr)
		}
	})
}

func TestProximityCommand(t *testing.T) {
	t.Run("SkipsMalformed", func(t *testing.T) {
		out, stderr, err := execute(t, "proximity", "-n", "11", "--ref", "notacolor", "--ref", "#1E3A8A")
		if err != nil {
			t.Fatalf("proximity failed: %v", err)
		}
		if !strings.Contains(stderr, `Skipped reference "notacolor"`) {
			t.Errorf("expected skipped notice on stderr, got %q", stderr)
		}
		if !strings.Contains(out, "#1E3A8A") || !strings.Contains(out, "REFERENCE") {
			t.Errorf("expected a match table, got:\n%s", out)
		}
		if strings.Contains(out, "notacolor") {
			t.Error("malformed reference should not appear in the table")
		}
	})

	t.Run("JSON", func(t *testing.T) {
		out, _, err := execute(t, "proximity", "-n", "11", "--json", "-t", "5",
			"--ref", "notacolor", "--ref", "rgb(220, 38, 38)")
		if err != nil {
			t.Fatalf("proximity failed: %v", err)
		}
		var got struct {
			Threshold float64 `json:"threshold"`
			Matches   []struct {
				Reference string  `json:"reference"`
				Index     int     `json:"index"`
				Distance  float64 `json:"distance"`
			} `json:"matches"`
			Skipped []struct {
				Reference string `json:"reference"`
			} `json:"skipped"`
		}
		if err := json.Unmarshal([]byte(out), &got); err != nil {
			t.Fatalf("invalid JSON: %v\n%s", err, out)
		}
		if got.Threshold != 5 {
			t.Errorf("threshold = %v, want 5", got.Threshold)
		}
		if len(got.Matches) != 1 || got.Matches[0].Reference != "rgb(220, 38, 38)" {
			t.Errorf("matches = %+v", got.Matches)
		}
		if len(got.Skipped) != 1 || got.Skipped[0].Reference != "notacolor" {
			t.Errorf("skipped = %+v", got.Skipped)
		}
	})

	t.Run("Strict", func(t *testing.T) {
		out, _, err := execute(t, "generate", "-n", "5")
		if err != nil {
			t.Fatal(err)
		}
		first := lines(out)[0]

		out, _, err = execute(t, "proximity", "-n", "5", "--ref", first, "--strict")
		if err == nil {
			t.Fatal("expected --strict to fail for a palette colour")
		}
		if !strings.Contains(out, "too close") {
			t.Errorf("expected the match to be flagged, got:\n%s", out)
		}
	})

	t.Run("RequiresRef", func(t *testing.T) {
		if _, _, err := execute(t, "proximity"); err == nil {
			t.Error("expected an error without --ref")
		}
	})
}

func TestAnalyzeCommand(t *testing.T) {
	t.Run("Generated", func(t *testing.T) {
		out, _, err := execute(t, "analyze", "-n", "11", "--json")
		if err != nil {
			t.Fatalf("analyze failed: %v", err)
		}
		var got struct {
			Curves struct {
				PeakIndex      int  `json:"peak_lightness_index"`
				LeftMonotonic  bool `json:"left_arm_monotonic"`
				RightMonotonic bool `json:"right_arm_monotonic"`
			} `json:"curves"`
			Uniformity *struct {
				Deltas []float64 `json:"deltas"`
			} `json:"uniformity"`
		}
		if err := json.Unmarshal([]byte(out), &got); err != nil {
			t.Fatalf("invalid JSON: %v\n%s", err, out)
		}
		if got.Curves.PeakIndex != 5 {
			t.Errorf("peak index = %d, want 5", got.Curves.PeakIndex)
		}
		if !got.Curves.LeftMonotonic || !got.Curves.RightMonotonic {
			t.Error("default palette arms should be monotonic")
		}
		if got.Uniformity == nil || len(got.Uniformity.Deltas) != 10 {
			t.Errorf("uniformity = %+v", got.Uniformity)
		}
	})

	t.Run("Arguments", func(t *testing.T) {
		out, _, err := execute(t, "analyse", "--samples", "#2166ac", "#f7f7f7", "#b2182b")
		if err != nil {
			t.Fatalf("analyse failed: %v", err)
		}
		if !regexp.MustCompile(`peak lightness index\s+1\n`).MatchString(out) {
			t.Errorf("expected peak at index 1, got:\n%s", out)
		}
		if !strings.Contains(out, "#f7f7f7") {
			t.Errorf("expected per-colour samples, got:\n%s", out)
		}
	})

	t.Run("MalformedArgument", func(t *testing.T) {
		if _, _, err := execute(t, "analyze", "#2166ac", "notacolor"); err == nil {
			t.Error("expected an error for a malformed colour")
		}
	})
}

func TestPresetsCommand(t *testing.T) {
	out, _, err := execute(t, "presets")
	if err != nil {
		t.Fatalf("presets failed: %v", err)
	}
	for _, name := range []string{"NAME", "Blue-Red", "Purple-Green", "Tropic"} {
		if !strings.Contains(out, name) {
			t.Errorf("output missing %q:\n%s", name, out)
		}
	}

	out, _, err = execute(t, "presets", "--json")
	if err != nil {
		t.Fatalf("presets --json failed: %v", err)
	}
	var presets []map[string]any
	if err := json.Unmarshal([]byte(out), &presets); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(presets) < 10 {
		t.Errorf("expected the built-in catalogue, got %d presets", len(presets))
	}
}

func TestBrandCommand(t *testing.T) {
	out, _, err := execute(t, "brand", "navy", "crimson", "-n", "11")
	if err != nil {
		t.Fatalf("brand failed: %v", err)
	}
	got := lines(out)
	if !strings.HasPrefix(got[0], "--h1 ") {
		t.Errorf("first line should hold the suggested flags, got %q", got[0])
	}
	var colours int
	for _, l := range got {
		if hexLine.MatchString(l) {
			colours++
		}
	}
	if colours != 11 {
		t.Errorf("expected 11 palette lines, got %d", colours)
	}
	if !strings.Contains(out, "#000080: nearest") {
		t.Errorf("expected the navy match line, got:\n%s", out)
	}

	if _, _, err := execute(t, "brand", "navy"); err == nil {
		t.Error("expected an error with one brand colour")
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, "divergent version") {
		t.Errorf("unexpected version output: %q", out)
	}

	out, _, err = execute(t, "version", "--json")
	if err != nil {
		t.Fatalf("version --json failed: %v", err)
	}
	var info struct {
		Version   string `json:"version"`
		Commit    string `json:"commit"`
		GoVersion string `json:"go_version"`
		Platform  string `json:"platform"`
	}
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if info.Version == "" || !strings.HasPrefix(info.GoVersion, "go") || !strings.Contains(info.Platform, "/") {
		t.Errorf("unexpected version info: %+v", info)
	}
}
