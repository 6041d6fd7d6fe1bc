package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "dairy", in: "Mjölk", want: "Dairy"},
		{name: "dairy substring", in: "havremjölk", want: "Dairy"},
		{name: "produce", in: "Äpple", want: "Produce"},
		{name: "meat", in: "kycklingfilé", want: "Meat & Fish"},
		{name: "soup beats meat by rule order", in: "kycklingsoppa", want: "Pantry"},
		{name: "drinks", in: "apelsinjuice", want: "Drinks"},
		{name: "drinks not pantry", in: "mineralvatten", want: "Drinks"},
		{name: "vinäger is pantry despite vin", in: "vinäger", want: "Pantry"},
		{name: "mjöl is pantry despite öl", in: "mjöl", want: "Pantry"},
		{name: "household", in: "Toalettpapper 8-pack", want: "Household"},
		{name: "no match falls back", in: "batterier", want: Fallback},
		{name: "empty falls back", in: "", want: Fallback},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.in))
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	// Same input, same answer, every time.
	for i := 0; i < 3; i++ {
		assert.Equal(t, "Dairy", Classify("ost och skinka")) // dairy rule precedes meat
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "äpple", Normalize("  Äpple "))
	assert.Equal(t, Normalize("Äpple"), Normalize("äpple "))
	assert.Equal(t, "", Normalize("   "))
}
