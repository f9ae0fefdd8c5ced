// ============================================================================
// numtower - Exact Numeric Tower
// ============================================================================
//
// Package:     tower
// Description: Tests for text rendering and parsing
// Author:      Mike Stoffels
// Created:     2026-10-09
// License:     MIT
// ============================================================================

package tower

import (
	"encoding/json"
	"math"
	"testing"

	mdwerror "github.com/msto63/numtower/foundation/core/error"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Value
	}{
		{"42", Int(42)},
		{" -7 ", Int(-7)},
		{"+5", Int(5)},
		{"6/-4", Rat(-3, 2)},
		{"1.25", Rat(5, 4)},
		{"-0.1", Rat(-1, 10)},
		{"2e3", Int(2000)},
		{"1/2 + 3/4i", Gauss(1, 2, 3, 4)},
		{"1/2 + -3/4i", Gauss(1, 2, -3, 4)},
		{"1/2 - 3/4i", Gauss(1, 2, -3, 4)},
		{"3i", Gauss(0, 1, 3, 1)},
		{"-1/2i", Gauss(0, 1, -1, 2)},
		{"i", I()},
		{"-i", Gauss(0, 1, -1, 1)},
		{"2 + i", Gauss(2, 1, 1, 1)},
		{"1/1 + 0/1i", Int(1)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.in, err)
			}
			if !Eq(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Sentinels(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"NaN", math.NaN()},
		{"0/0", math.NaN()},
		{"+Inf", math.Inf(1)},
		{"5/0", math.Inf(1)},
		{"-Inf", math.Inf(-1)},
		{"-1/0", math.Inf(-1)},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", tt.in, err)
		}
		f := got.Float64()
		if math.IsNaN(tt.want) != math.IsNaN(f) || (!math.IsNaN(f) && f != tt.want) {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParse_Errors(t *testing.T) {
	for _, in := range []string{"", "abc", "1/x", "1/2 + zi", "--3", "1.2.3"} {
		_, err := Parse(in)
		if !mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
			t.Errorf("Parse(%q) error = %v, want invalid format", in, err)
		}
	}
}

func TestString_RoundTrip(t *testing.T) {
	values := []Value{
		Int(0), Int(-99), Rat(22, 7), Gauss(1, 3, -2, 5), Gauss(0, 1, 1, 1),
		FromFloat(math.Pi), FromFloat(math.NaN()), FromFloat(math.Inf(-1)),
		FromComplex(complex(math.Inf(1), 1)),
	}
	for _, v := range values {
		got, err := Parse(v.String())
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", v.String(), err)
		}
		if !Eq(got, v) {
			t.Errorf("Parse(%q) = %v", v.String(), got)
		}
	}
}

func TestTextMarshaling(t *testing.T) {
	type record struct {
		Result Value `json:"result"`
	}
	in := record{Result: Gauss(1, 2, -1, 3)}
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	if string(b) != `{"result":"1/2 + -1/3i"}` {
		t.Errorf("Marshal = %s", b)
	}
	var out record
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if !Eq(out.Result, in.Result) {
		t.Errorf("Unmarshal = %v", out.Result)
	}
	if err := out.Result.UnmarshalText([]byte("bogus")); err == nil {
		t.Error("UnmarshalText should reject malformed input")
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		v    Value
		prec int
		want string
	}{
		{Rat(1, 4), -1, "0.25"},
		{Rat(1, 3), 4, "0.3333"},
		{Gauss(1, 2, -1, 4), -1, "0.5-0.25i"},
		{Gauss(0, 1, 2, 1), -1, "0+2i"},
		{FromFloat(math.NaN()), -1, "NaN"},
	}
	for _, tt := range tests {
		if got := FormatFloat(tt.v, tt.prec); got != tt.want {
			t.Errorf("FormatFloat(%v, %d) = %q, want %q", tt.v, tt.prec, got, tt.want)
		}
	}
}
