package playground

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"github.com/goliatone/go-htmlextra/pkg/extension"
	"github.com/goliatone/go-htmlextra/pkg/testsupport"
)

type scriptedDriver struct {
	selects  []string
	inputs   []string
	areas    []string
	confirms []bool
	infos    []string
	err      error
}

func (d *scriptedDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	if len(d.inputs) == 0 {
		return cfg.Default, nil
	}
	v := d.inputs[0]
	d.inputs = d.inputs[1:]
	if cfg.Validator != nil {
		if err := cfg.Validator(v); err != nil {
			return "", err
		}
	}
	return v, nil
}

func (d *scriptedDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	if len(d.confirms) == 0 {
		return false, nil
	}
	v := d.confirms[0]
	d.confirms = d.confirms[1:]
	return v, nil
}

func (d *scriptedDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	if d.err != nil {
		return 0, d.err
	}
	if len(d.selects) == 0 {
		return indexOf(cfg.Options, quit), nil
	}
	v := d.selects[0]
	d.selects = d.selects[1:]
	return indexOf(cfg.Options, v), nil
}

func (d *scriptedDriver) TextArea(_ context.Context, _ TextAreaConfig) (string, error) {
	v := d.areas[0]
	d.areas = d.areas[1:]
	return v, nil
}

func (d *scriptedDriver) Info(_ context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

func TestSession_Run(t *testing.T) {
	driver := &scriptedDriver{
		selects:  []string{"highlight", "contextualize", "html_attributes", "wrap_text"},
		areas:    []string{"a **b** c", "aaaa key bbbb", "- class: a\n- class: b\n  id: x", "x __y__ z"},
		inputs:   []string{"key", "10"},
		confirms: []bool{true, true, true, false},
	}
	session := NewSession(extension.New(), driver, testsupport.Logger(t))

	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []string{
		"a <em>b</em> c",
		"aaaa <em>key</em> b…",
		`class="a b" id="x"`,
		"x <em>y</em> z",
	}
	if diff := cmp.Diff(want, driver.infos); diff != "" {
		t.Fatalf("session output mismatch (-want +got):\n%s", diff)
	}
}

func TestSession_QuitAndAbort(t *testing.T) {
	driver := &scriptedDriver{}
	if err := NewSession(extension.New(), driver, nil).Run(context.Background()); err != nil {
		t.Fatalf("quit: %v", err)
	}
	if len(driver.infos) != 0 {
		t.Fatalf("expected no output, got %v", driver.infos)
	}

	aborted := &scriptedDriver{err: ErrAborted}
	if err := NewSession(extension.New(), aborted, nil).Run(context.Background()); err != nil {
		t.Fatalf("abort should end the session cleanly: %v", err)
	}

	boom := errors.New("tty gone")
	failing := &scriptedDriver{err: boom}
	if err := NewSession(extension.New(), failing, nil).Run(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected driver error, got %v", err)
	}
}

func TestSession_ReportsFailures(t *testing.T) {
	logger, logs := testsupport.ObservedLogger(zap.WarnLevel)
	driver := &scriptedDriver{
		selects:  []string{"html_attributes"},
		areas:    []string{"style: [a, b]"},
		confirms: []bool{false},
	}
	if err := NewSession(extension.New(), driver, logger).Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(driver.infos) != 1 || driver.infos[0][:6] != "error:" {
		t.Fatalf("expected an error line, got %v", driver.infos)
	}
	if logs.Len() != 1 {
		t.Fatalf("expected one warning, got %d", logs.Len())
	}
}

func TestExecute(t *testing.T) {
	x := extension.New()
	tests := []struct {
		name string
		req  Request
		want string
	}{
		{
			name: "paragraphize",
			req:  Request{Operation: "paragraphize", Text: "one\n\ntwo\nthree"},
			want: "<p>one</p><p>two<br>three</p>",
		},
		{
			name: "paragraphize without breaks",
			req:  Request{Operation: "paragraphize", Text: "two\nthree", NoBreaks: true},
			want: "<p>twothree</p>",
		},
		{
			name: "breakerize",
			req:  Request{Operation: "breakerize", Text: "a||b"},
			want: "a<br>b",
		},
		{
			name: "highlight with class",
			req:  Request{Operation: "highlight", Text: "**x**", Tag: "strong", ClassName: "hl"},
			want: `<strong class="hl">x</strong>`,
		},
		{
			name: "strip default",
			req:  Request{Operation: "strip_control_characters", Text: "a **b**||c|d"},
			want: "a b cd",
		},
		{
			name: "strip custom",
			req:  Request{Operation: "strip_control_characters", Text: "a __b__", Sequence: "__"},
			want: "a b",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Execute(x, tt.req)
			if err != nil {
				t.Fatalf("Execute: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if _, err := Execute(x, Request{Operation: "nope"}); !errors.Is(err, ErrUnknownOperation) {
		t.Fatalf("expected ErrUnknownOperation, got %v", err)
	}
}

func TestValidatePositive(t *testing.T) {
	if err := validatePositive(" 12 "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, in := range []string{"", "0", "-3", "x"} {
		if validatePositive(in) == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}
