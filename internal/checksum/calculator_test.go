package checksum

import (
	"testing"
)

func TestSHA256Calculator_Calculate(t *testing.T) {
	calc := New()

	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "Empty content",
			content:  "",
			expected: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:     "abc",
			content:  "abc",
			expected: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := calc.Calculate([]byte(tt.content))
			if result != tt.expected {
				t.Errorf("Calculate() = %s, want %s", result, tt.expected)
			}
		})
	}
}

func TestSHA256Calculator_DistinguishesOrder(t *testing.T) {
	calc := New()

	a := calc.Calculate([]byte(`<Property Name="A"/><Property Name="B"/>`))
	b := calc.Calculate([]byte(`<Property Name="B"/><Property Name="A"/>`))
	if a == b {
		t.Error("Calculate() should differ when element order differs")
	}
}

func TestSHA256Calculator_ImplementsCalculator(t *testing.T) {
	var _ Calculator = New()
}
