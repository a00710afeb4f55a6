package qrcode

import (
	"strings"
	"testing"

	"github.com/matzehuels/qrgrid/pkg/errors"
)

func TestEncode(t *testing.T) {
	for _, engine := range Engines {
		t.Run(string(engine), func(t *testing.T) {
			code, err := Encode("hello", WithLevel(LevelL), WithEngine(engine))
			if err != nil {
				t.Fatal(err)
			}
			checkVersion1(t, code)
		})
	}
}

func TestEncodeGrowsWithContent(t *testing.T) {
	small, err := Encode("hi")
	if err != nil {
		t.Fatal(err)
	}
	large, err := Encode(strings.Repeat("x", 200))
	if err != nil {
		t.Fatal(err)
	}
	if large.Cols() <= small.Cols() {
		t.Errorf("cols %d for long content, %d for short", large.Cols(), small.Cols())
	}
	if (large.Cols()-17)%4 != 0 {
		t.Errorf("cols %d is not a valid QR width", large.Cols())
	}
}

func TestEncodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		opts    []EncodeOption
		code    errors.Code
	}{
		{"empty content", "", nil, errors.ErrCodeInvalidInput},
		{"unknown engine", "x", []EncodeOption{WithEngine("zxing")}, errors.ErrCodeInvalidEngine},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Encode(tt.content, tt.opts...)
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"L", LevelL, false},
		{"low", LevelL, false},
		{"m", LevelM, false},
		{"", LevelM, false},
		{"Quartile", LevelQ, false},
		{" h ", LevelH, false},
		{"x", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) err = %v", tt.in, err)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseEngine(t *testing.T) {
	if e, err := ParseEngine(""); err != nil || e != EngineRSC {
		t.Errorf("ParseEngine(\"\") = %q, %v", e, err)
	}
	if e, err := ParseEngine("SKIP2"); err != nil || e != EngineSkip2 {
		t.Errorf("ParseEngine(SKIP2) = %q, %v", e, err)
	}
	if _, err := ParseEngine("zxing"); !errors.Is(err, errors.ErrCodeInvalidEngine) {
		t.Errorf("ParseEngine(zxing) err = %v", err)
	}
}
