package numeric

import (
	"strings"
	"testing"
)

func TestParseInt(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"0", "0"},
		{"-42", "-42"},
		{"123456789012345678901234567890", "123456789012345678901234567890"},
		{"banana", "0"},
		{"", "0"},
		{"12.5", "0"},
	}
	for _, tt := range tests {
		if got := FormatInt(ParseInt(tt.text)); got != tt.want {
			t.Errorf("ParseInt(%q) = %s, want %s", tt.text, got, tt.want)
		}
	}
}

func TestDecimalArithmetic(t *testing.T) {
	a := ParseDec("1.5")
	b := ParseDec("2.5")

	sum := Add(NewDec(), a, b)
	if Compare(sum, ParseDec("4.0")) != 0 {
		t.Fatalf("1.5 + 2.5 = %s", FormatDec(sum))
	}

	// Operands unmodified
	if Compare(a, ParseDec("1.5")) != 0 || Compare(b, ParseDec("2.5")) != 0 {
		t.Fatal("operands were modified")
	}

	diff := Sub(NewDec(), b, a)
	if Compare(diff, ParseDec("1.0")) != 0 {
		t.Fatalf("2.5 - 1.5 = %s", FormatDec(diff))
	}

	prod := Mul(NewDec(), a, b)
	if Compare(prod, ParseDec("3.75")) != 0 {
		t.Fatalf("1.5 * 2.5 = %s", FormatDec(prod))
	}

	quo := Div(NewDec(), b, a)
	want := ParseDec("1.666666666666")
	delta := Sub(NewDec(), quo, want)
	if delta.Abs(delta).Cmp(ParseDec("0.001")) > 0 {
		t.Fatalf("2.5 / 1.5 = %s", FormatDec(quo))
	}
}

func TestDivZeroOverZero(t *testing.T) {
	zero := ParseDec("0")
	res := Div(NewDec(), zero, ParseDec("0.0"))
	if res.Sign() != 0 {
		t.Fatalf("0/0 = %s, want 0", FormatDec(res))
	}
}

func TestParseDecMalformed(t *testing.T) {
	for _, text := range []string{"", "abc", "1.2.3"} {
		v := ParseDec(text)
		if v.Sign() != 0 {
			t.Errorf("ParseDec(%q) = %s, want 0", text, FormatDec(v))
		}
		if v.Prec() != DecPrec {
			t.Errorf("ParseDec(%q) precision = %d, want %d", text, v.Prec(), DecPrec)
		}
	}
}

func TestCompare(t *testing.T) {
	if Compare(ParseDec("1.0"), ParseDec("2.0")) != -1 {
		t.Error("1.0 < 2.0")
	}
	if Compare(ParseDec("2.0"), ParseDec("1.0")) != 1 {
		t.Error("2.0 > 1.0")
	}
	if Compare(ParseDec("2.0"), ParseDec("2")) != 0 {
		t.Error("2.0 == 2")
	}
}

func TestFormatting(t *testing.T) {
	if got := FormatFloat(1.5); got != "1.500000" {
		t.Errorf("FormatFloat = %q", got)
	}
	if got := FormatDouble(-0.25); got != "-0.250000" {
		t.Errorf("FormatDouble = %q", got)
	}
	if got := FormatDec(ParseDec("1.5")); got != "1.5000000000" {
		t.Errorf("FormatDec = %q", got)
	}
}

func TestFprintHelpers(t *testing.T) {
	var sb strings.Builder

	if err := FprintInt(&sb, ParseInt("987654321098765432109876543210")); err != nil {
		t.Fatal(err)
	}
	FprintI8(&sb, -8)
	FprintI16(&sb, -16)
	FprintI32(&sb, -32)
	FprintI64(&sb, -64)
	FprintU8(&sb, 8)
	FprintU16(&sb, 16)
	FprintU32(&sb, 32)
	FprintU64(&sb, 64)
	FprintF32(&sb, 0.5)
	FprintF64(&sb, 2.0)
	FprintDec(&sb, ParseDec("3.25"))
	FprintExtended(&sb, 0.5)

	want := "987654321098765432109876543210\n" +
		"-8\n-16\n-32\n-64\n8\n16\n32\n64\n" +
		"0.500000\n2.000000\n3.2500000000\n0.5000000000\n"
	if sb.String() != want {
		t.Fatalf("output:\n%q\nwant:\n%q", sb.String(), want)
	}
}

func TestConversions(t *testing.T) {
	if ToInt("42abc") != 42 || ToInt("x") != 0 || ToInt(true) != 1 || ToInt(3.9) != 3 {
		t.Error("ToInt")
	}
	if ToDouble("2.5rest") != 2.5 || ToDouble(false) != 0 || ToDouble(7) != 7 {
		t.Error("ToDouble")
	}
	if ToFloat("1.5") != 1.5 {
		t.Error("ToFloat")
	}
	if !ToBool("true") || !ToBool("1") || ToBool("yes") || ToBool(0) || !ToBool(2) {
		t.Error("ToBool")
	}
	if ToString(true) != "true" || ToString(12) != "12" || ToString(1.5) != "1.500000" {
		t.Error("ToString scalar")
	}
	if ToString(ParseDec("1.5")) != "1.5000000000" {
		t.Error("ToString decimal")
	}
	if ToString(ParseInt("99")) != "99" {
		t.Error("ToString integer")
	}
}
