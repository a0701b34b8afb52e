package circuit

import "testing"

func TestDecodeTemplate(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    Template
	}{
		{"gate tag", "1,Pauli-X", Template{Kind: KindGate, Label: "Pauli-X"}},
		{"qubit tag", "0,qubit-1", Template{Kind: KindQubit, Label: "qubit-1"}},
		{"unparseable tag defaults to qubit", "junk,foo", Template{Kind: KindQubit, Label: "foo"}},
		{"out-of-range tag defaults to qubit", "7,Pauli-Z", Template{Kind: KindQubit, Label: "Pauli-Z"}},
		{"no separator yields empty label", "qubit-0", Template{Kind: KindQubit, Label: ""}},
		{"empty payload", "", Template{Kind: KindQubit, Label: ""}},
		{"label keeps embedded commas", "1,Pauli,X", Template{Kind: KindGate, Label: "Pauli,X"}},
	}
	for _, tt := range tests {
		if got := DecodeTemplate(tt.payload); got != tt.want {
			t.Errorf("%s: DecodeTemplate(%q) = %+v, want %+v", tt.name, tt.payload, got, tt.want)
		}
	}
}

func TestTemplateEncodeRoundTrip(t *testing.T) {
	for _, tmpl := range DefaultPalette() {
		if got := DecodeTemplate(tmpl.Encode()); got != tmpl {
			t.Errorf("round trip of %+v gave %+v", tmpl, got)
		}
	}
}

func TestKindString(t *testing.T) {
	if KindQubit.String() != "qubit" || KindGate.String() != "gate" {
		t.Errorf("got %q and %q", KindQubit, KindGate)
	}
	if Kind(9).String() != "Kind(9)" {
		t.Errorf("unknown kind: got %q", Kind(9))
	}
}

func TestParseKindName(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"gate", KindGate},
		{"Gate", KindGate},
		{"qubit", KindQubit},
		{"", KindQubit},
		{"wire", KindQubit},
	}
	for _, tt := range tests {
		if got := ParseKindName(tt.in); got != tt.want {
			t.Errorf("ParseKindName(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDefaultPaletteSplit(t *testing.T) {
	qubits, gates := SplitPalette(DefaultPalette())
	if len(qubits) != 2 || len(gates) != 3 {
		t.Fatalf("got %d qubits and %d gates, want 2 and 3", len(qubits), len(gates))
	}
	if qubits[0].Label != "qubit-0" || gates[0].Label != "Pauli-X" {
		t.Errorf("palette order changed: %v / %v", qubits, gates)
	}
}
