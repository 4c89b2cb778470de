// SPDX-License-Identifier: MPL-2.0

package argparse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestKindString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind Kind
		want string
	}{
		{KindNull, "null"},
		{KindBanner, "banner"},
		{KindSeparator, "separator"},
		{KindConstant, "constant"},
		{KindOption, "option"},
		{KindRequired, "required operand"},
		{KindOptional, "optional operand"},
		{KindSplat, "splat operand"},
		{KindBundle, "bundle"},
		{Kind(200), "Kind(200)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", uint8(tt.kind), got, tt.want)
		}
	}
}

func TestOperandNotation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		arg    *Argument
		want   string
		wantOK bool
	}{
		{name: "required", arg: newOperand(KindRequired, "foo", nil, ""), want: "<foo>", wantOK: true},
		{name: "optional", arg: newOperand(KindOptional, "foo", nil, ""), want: "[<foo>]", wantOK: true},
		{name: "splat", arg: newOperand(KindSplat, "items", nil, ""), want: "[<items>...]", wantOK: true},
		{name: "underscores become spaces", arg: newOperand(KindRequired, "input_file", nil, ""), want: "<input file>", wantOK: true},
		{name: "help name wins", arg: newOperand(KindOptional, "input_file", nil, "FILE"), want: "[<FILE>]", wantOK: true},
		{name: "constant", arg: newConstant("foo", 1)},
		{name: "banner", arg: newBanner("hello")},
		{name: "null", arg: &Argument{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := tt.arg.OperandNotation()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("OperandNotation() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestShiftOperand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		arg       *Argument
		argv      []string
		wantValue any
		wantArgv  []string
	}{
		{
			name:      "required takes one token",
			arg:       newOperand(KindRequired, "foo", nil, ""),
			argv:      []string{"a", "b"},
			wantValue: "a",
			wantArgv:  []string{"b"},
		},
		{
			name:      "optional takes one token",
			arg:       newOperand(KindOptional, "foo", "d", ""),
			argv:      []string{"a", "b"},
			wantValue: "a",
			wantArgv:  []string{"b"},
		},
		{
			name:      "optional keeps default when nothing is left",
			arg:       newOperand(KindOptional, "foo", "d", ""),
			argv:      []string{},
			wantValue: "d",
			wantArgv:  []string{},
		},
		{
			name:      "splat takes everything",
			arg:       newOperand(KindSplat, "items", nil, ""),
			argv:      []string{"a", "b", "c"},
			wantValue: []string{"a", "b", "c"},
			wantArgv:  []string{},
		},
		{
			name:      "splat of nothing is empty, not nil",
			arg:       newOperand(KindSplat, "items", nil, ""),
			argv:      []string{},
			wantValue: []string{},
			wantArgv:  []string{},
		},
		{
			name:      "constant consumes nothing",
			arg:       newConstant("c", 7),
			argv:      []string{"a"},
			wantValue: 7,
			wantArgv:  []string{"a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			argv := tt.argv
			if err := tt.arg.ShiftOperand(&argv); err != nil {
				t.Fatalf("ShiftOperand() error = %v", err)
			}
			if diff := cmp.Diff(tt.wantValue, tt.arg.Value()); diff != "" {
				t.Errorf("Value() mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantArgv, argv); diff != "" {
				t.Errorf("argv mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestShiftOperandMissing(t *testing.T) {
	t.Parallel()

	arg := newOperand(KindRequired, "foo", nil, "")
	argv := []string{}
	err := arg.ShiftOperand(&argv)

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("ShiftOperand() error = %v, want *ParseError", err)
	}
	if parseErr.Type != ParseErrMissingOperand {
		t.Errorf("Type = %v, want %v", parseErr.Type, ParseErrMissingOperand)
	}
	if got, want := err.Error(), "missing argument: <foo>"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestOptionalRequiredConversion(t *testing.T) {
	t.Parallel()

	req := newOperand(KindRequired, "foo", "x", "the foo")

	opt, err := req.Optional()
	if err != nil {
		t.Fatalf("Optional() error = %v", err)
	}
	if opt == req {
		t.Error("Optional() returned the receiver, want a new argument")
	}
	if opt.Kind() != KindOptional || opt.Key() != "foo" || opt.Default() != "x" {
		t.Errorf("Optional() = (%v, %q, %v), want (optional operand, \"foo\", x)", opt.Kind(), opt.Key(), opt.Default())
	}
	if got, _ := opt.OperandNotation(); got != "[<the foo>]" {
		t.Errorf("OperandNotation() = %q, want %q", got, "[<the foo>]")
	}
	if req.Kind() != KindRequired {
		t.Errorf("receiver Kind() = %v, want %v", req.Kind(), KindRequired)
	}

	back, err := opt.Required()
	if err != nil {
		t.Fatalf("Required() error = %v", err)
	}
	if got, _ := back.OperandNotation(); got != "<the foo>" {
		t.Errorf("OperandNotation() = %q, want %q", got, "<the foo>")
	}

	same, err := req.Required()
	if err != nil || same.Kind() != KindRequired {
		t.Errorf("Required() on required = (%v, %v), want required operand", same, err)
	}
}

func TestConversionRejected(t *testing.T) {
	t.Parallel()

	opt := MustArgument(func(b *ArgumentBuilder) {
		b.Key("v")
		b.On("-v")
	})
	args := []*Argument{
		&Argument{},
		newBanner("b"),
		newSeparator("s"),
		newConstant("c", 1),
		opt,
		newOperand(KindSplat, "items", nil, ""),
		newBundle([]*Argument{newBanner("a"), newBanner("b")}),
	}

	for _, arg := range args {
		for name, convert := range map[string]func() (*Argument, error){
			"Optional": arg.Optional,
			"Required": arg.Required,
		} {
			_, err := convert()
			var buildErr *BuildError
			if !errors.As(err, &buildErr) {
				t.Errorf("%s() on %v error = %v, want *BuildError", name, arg.Kind(), err)
				continue
			}
			if buildErr.Type != BuildErrNotConvertible || buildErr.Kind != arg.Kind() {
				t.Errorf("%s() on %v = (%v, %v), want (%v, %v)", name, arg.Kind(), buildErr.Type, buildErr.Kind, BuildErrNotConvertible, arg.Kind())
			}
		}
	}
}

func TestResetRestoresDefault(t *testing.T) {
	t.Parallel()

	opt := MustArgument(func(b *ArgumentBuilder) {
		b.Key("level")
		b.Default(1)
		b.On("--level=N")
	})
	opt.value = 5
	opt.Reset()
	if opt.Value() != 1 {
		t.Errorf("Value() after Reset() = %v, want 1", opt.Value())
	}

	banner := newBanner("b")
	banner.Reset()
	if banner.HasKey() || banner.Value() != nil || banner.Key() != "" {
		t.Errorf("banner = (%v, %v, %q), want no key and no value", banner.HasKey(), banner.Value(), banner.Key())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()

	orig := newBundle([]*Argument{
		newBanner("b"),
		newOperand(KindRequired, "foo", nil, ""),
	})
	c := orig.clone()
	c.children[1].value = "changed"
	c.children[0].banner[0] = "changed"

	if orig.children[1].Value() != nil {
		t.Errorf("original value = %v, want nil", orig.children[1].Value())
	}
	if orig.children[0].banner[0] != "b" {
		t.Errorf("original banner = %q, want %q", orig.children[0].banner[0], "b")
	}
}
