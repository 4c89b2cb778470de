// SPDX-License-Identifier: MPL-2.0

package recognizer

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func mustSpec(t *testing.T, tokens ...string) Spec {
	t.Helper()

	spec, err := ParseSpec(tokens)
	if err != nil {
		t.Fatalf("ParseSpec(%q) error = %v", tokens, err)
	}
	return spec
}

// record registers spec on r and returns a pointer to the captured values.
func record(t *testing.T, r *PFlag, spec Spec) *[]any {
	t.Helper()

	var got []any
	if err := r.On(spec, func(v any) error {
		got = append(got, v)
		return nil
	}); err != nil {
		t.Fatalf("On(%+v) error = %v", spec, err)
	}
	return &got
}

func TestPFlagParse(t *testing.T) {
	t.Parallel()

	t.Run("switch removes token and reports true", func(t *testing.T) {
		t.Parallel()

		r := NewPFlag("prog")
		got := record(t, r, mustSpec(t, "-q", "--quiet"))

		argv := []string{"a", "--quiet", "b"}
		if err := r.Parse(&argv); err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if diff := cmp.Diff([]string{"a", "b"}, argv); diff != "" {
			t.Errorf("remaining mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]any{true}, *got); diff != "" {
			t.Errorf("callback values mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("grouped short switches invoke the callback per letter", func(t *testing.T) {
		t.Parallel()

		r := NewPFlag("prog")
		got := record(t, r, mustSpec(t, "-v", "--verbose"))

		argv := []string{"-vv"}
		if err := r.Parse(&argv); err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if len(*got) != 2 {
			t.Errorf("callback invoked %d times, want 2", len(*got))
		}
	})

	t.Run("value flag with equals and with separate token", func(t *testing.T) {
		t.Parallel()

		r := NewPFlag("prog")
		got := record(t, r, mustSpec(t, "-o", "--output=PATH"))

		argv := []string{"--output=x", "-o", "y", "rest"}
		if err := r.Parse(&argv); err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if diff := cmp.Diff([]any{"x", "y"}, *got); diff != "" {
			t.Errorf("callback values mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]string{"rest"}, argv); diff != "" {
			t.Errorf("remaining mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("converter is applied", func(t *testing.T) {
		t.Parallel()

		r := NewPFlag("prog")
		spec := mustSpec(t, "--timeout=D")
		spec.Convert = Duration
		got := record(t, r, spec)

		argv := []string{"--timeout=90s"}
		if err := r.Parse(&argv); err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if diff := cmp.Diff([]any{90 * time.Second}, *got); diff != "" {
			t.Errorf("callback values mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("terminator keeps flag-looking operands", func(t *testing.T) {
		t.Parallel()

		r := NewPFlag("prog")
		record(t, r, mustSpec(t, "-q"))

		argv := []string{"-q", "--", "-q", "x"}
		if err := r.Parse(&argv); err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if diff := cmp.Diff([]string{"-q", "x"}, argv); diff != "" {
			t.Errorf("remaining mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		r := NewPFlag("prog")
		argv := []string{}
		if err := r.Parse(&argv); err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if diff := cmp.Diff([]string{}, argv, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("remaining mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestPFlagParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		argv    []string
		wantErr error
		wantMsg string
	}{
		{name: "unknown long flag", argv: []string{"--nope"}, wantMsg: "unknown flag"},
		{name: "unknown short flag", argv: []string{"-x"}, wantMsg: "unknown shorthand flag"},
		{name: "missing value", argv: []string{"--size"}, wantMsg: "needs an argument"},
		{name: "bad value", argv: []string{"--size=big"}, wantMsg: "invalid argument"},
		{name: "long help", argv: []string{"--help"}, wantErr: ErrHelp},
		{name: "short help", argv: []string{"-h"}, wantErr: ErrHelp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := NewPFlag("prog")
			spec := mustSpec(t, "--size=N")
			spec.Convert = Int
			record(t, r, spec)

			argv := append([]string(nil), tt.argv...)
			err := r.Parse(&argv)
			if err == nil {
				t.Fatalf("Parse(%q) error = nil, want error", tt.argv)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.argv, err, tt.wantErr)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Parse(%q) error = %q, want substring %q", tt.argv, err, tt.wantMsg)
			}
		})
	}
}

func TestPFlagOnDuplicate(t *testing.T) {
	t.Parallel()

	r := NewPFlag("prog")
	record(t, r, mustSpec(t, "-f", "--foo"))

	if err := r.On(mustSpec(t, "--foo"), func(any) error { return nil }); !errors.Is(err, ErrDuplicateFlag) {
		t.Errorf("On(duplicate long) error = %v, want ErrDuplicateFlag", err)
	}
	if err := r.On(mustSpec(t, "-f", "--bar"), func(any) error { return nil }); !errors.Is(err, ErrDuplicateFlag) {
		t.Errorf("On(duplicate short) error = %v, want ErrDuplicateFlag", err)
	}
}

func TestPFlagHelp(t *testing.T) {
	t.Parallel()

	r := NewPFlag("prog")
	r.SetBanner("A banner\n" + r.Banner() + " <path>")
	record(t, r, mustSpec(t, "-f", "--foo", "Do the foo thing"))
	record(t, r, mustSpec(t, "--bar=VALUE", "Set bar to VALUE", "Second line"))
	record(t, r, mustSpec(t, "--quiet"))
	r.AddTrailer("Text at the end")

	want := "A banner\n" +
		"Usage: prog [options] <path>\n" +
		"    -f, --foo                        Do the foo thing\n" +
		"        --bar=VALUE                  Set bar to VALUE\n" +
		"                                     Second line\n" +
		"        --quiet\n" +
		"Text at the end\n"

	if diff := cmp.Diff(want, r.Help()); diff != "" {
		t.Errorf("Help() mismatch (-want +got):\n%s", diff)
	}
}
