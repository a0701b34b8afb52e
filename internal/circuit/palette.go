package circuit

// DefaultPalette returns the stock component templates in display order:
// the qubit registers first, then the Pauli gates.
func DefaultPalette() []Template {
	return []Template{
		{Kind: KindQubit, Label: "qubit-0"},
		{Kind: KindQubit, Label: "qubit-1"},
		{Kind: KindGate, Label: "Pauli-X"},
		{Kind: KindGate, Label: "Pauli-Y"},
		{Kind: KindGate, Label: "Pauli-Z"},
	}
}

// SplitPalette groups templates by kind, preserving order within each
// group. Every kind-specific branch in the UI works from these two lists.
func SplitPalette(templates []Template) (qubits, gates []Template) {
	for _, t := range templates {
		switch t.Kind {
		case KindGate:
			gates = append(gates, t)
		default:
			qubits = append(qubits, t)
		}
	}
	return qubits, gates
}
