package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"unit-converter/internal/conversion"
	"unit-converter/internal/types"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := runWithStderr(t, args...)
	return out, err
}

func runWithStderr(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	chdir(t, t.TempDir())

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}

// --- convert ---

func TestConvertCmd(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"symbols", []string{"convert", "1", "km", "mi"}, "1 Kilometers = 0.6214 Miles\n"},
		{"explicit category", []string{"convert", "--category", "weight", "10", "pounds", "kilograms"}, "10 Pounds = 4.5359 Kilograms\n"},
		{"temperature", []string{"convert", "100", "celsius", "fahrenheit"}, "100 Celsius = 212.0000 Fahrenheit\n"},
		{"negative value", []string{"convert", "--", "-40", "C", "F"}, "-40 Celsius = -40.0000 Fahrenheit\n"},
		{"decimals flag", []string{"convert", "--decimals", "1", "2", "days", "hours"}, "2 Days = 48.0 Hours\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := run(t, c.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != c.want {
				t.Errorf("output = %q, want %q", got, c.want)
			}
		})
	}
}

func TestConvertCmd_DebugLogsToStderr(t *testing.T) {
	out, errOut, err := runWithStderr(t, "--debug", "convert", "1", "km", "mi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "1 Kilometers = 0.6214 Miles\n" {
		t.Errorf("stdout = %q, want only the result line", out)
	}
	if !strings.Contains(errOut, "msg=converted") {
		t.Errorf("stderr = %q, want debug log with msg=converted", errOut)
	}

	_, errOut, err = runWithStderr(t, "convert", "1", "km", "mi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(errOut, "msg=converted") {
		t.Errorf("stderr = %q, want no debug log without --debug", errOut)
	}
}

func TestConvertCmd_CrossCategory(t *testing.T) {
	_, err := run(t, "convert", "--category", "length", "1", "meters", "kilograms")
	if !errors.Is(err, conversion.ErrInvalidUnit) {
		t.Errorf("error = %v, want ErrInvalidUnit", err)
	}
}

func TestConvertCmd_BadInput(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want error
	}{
		{"unknown unit", []string{"convert", "1", "cubits", "meters"}, types.ErrUnknownUnit},
		{"unknown category", []string{"convert", "-c", "volume", "1", "meters", "feet"}, types.ErrUnknownCategory},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := run(t, c.args...)
			if !errors.Is(err, c.want) {
				t.Errorf("error = %v, want %v", err, c.want)
			}
		})
	}

	if _, err := run(t, "convert", "abc", "m", "ft"); err == nil {
		t.Error("expected error for non-numeric value")
	}
	if _, err := run(t, "convert", "1", "m"); err == nil {
		t.Error("expected error for missing argument")
	}
}

// --- units ---

func TestUnitsCmd_Text(t *testing.T) {
	got, err := run(t, "units", "--category", "time")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Time ⏰ (time)\n" +
		"  - Seconds (seconds, s)\n" +
		"  - Minutes (minutes, min)\n" +
		"  - Hours (hours, h)\n" +
		"  - Days (days, d)\n"
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestUnitsCmd_StructuredOutput(t *testing.T) {
	decoders := map[string]func([]byte, any) error{
		"json": json.Unmarshal,
		"yaml": yaml.Unmarshal,
	}
	for format, decode := range decoders {
		t.Run(format, func(t *testing.T) {
			got, err := run(t, "units", "-o", format)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			var catalog []conversion.CategoryInfo
			if err := decode([]byte(got), &catalog); err != nil {
				t.Fatalf("decode %s: %v", format, err)
			}
			if len(catalog) != 4 {
				t.Fatalf("categories = %d, want 4", len(catalog))
			}
			if catalog[1].ID != "weight" || catalog[1].Canonical != "grams" {
				t.Errorf("catalog[1] = %+v, want weight with canonical grams", catalog[1])
			}
		})
	}
}

func TestUnitsCmd_UnsupportedFormat(t *testing.T) {
	_, err := run(t, "units", "-o", "xml")
	if err == nil || !strings.Contains(err.Error(), "unsupported output format") {
		t.Errorf("error = %v, want unsupported output format", err)
	}
}
