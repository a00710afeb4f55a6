package style

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{in: "black", want: Black},
		{in: " White ", want: White},
		{in: "transparent", want: Transparent},
		{in: "#336699", want: RGB(0x33, 0x66, 0x99)},
		{in: "336699", want: RGB(0x33, 0x66, 0x99)},
		{in: "#369", want: RGB(0x33, 0x66, 0x99)},
		{in: "", wantErr: true},
		{in: "#12", wantErr: true},
		{in: "chartreuse-ish", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorHex(t *testing.T) {
	if got := RGB(0x50, 0x50, 0x50).Hex(); got != "#505050" {
		t.Errorf("Hex() = %q, want #505050", got)
	}
	if got := Transparent.String(); got != "#000000/0.00" {
		t.Errorf("String() = %q", got)
	}
	if !Transparent.IsTransparent() || Black.IsTransparent() {
		t.Error("IsTransparent mismatch")
	}
}
