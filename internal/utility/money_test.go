package utility

import "testing"

func TestParseAmountCents(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{"1500.50", 150050, false},
		{"299.49", 29949, false},
		{"0", 0, false},
		{"100", 10000, false},
		{"0.5", 50, false},
		{".99", 99, false},
		{"1,234.56", 123456, false},
		{"-12.34", -1234, false},
		{"1.234", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseAmountCents(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseAmountCents(%q) phải trả về lỗi", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseAmountCents(%q) trả về lỗi không mong muốn: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAmountCents(%q) = %d, muốn %d", tt.input, got, tt.want)
		}
	}
}

func TestParseAmountCentsExactSum(t *testing.T) {
	// Cộng tiền bằng cent nguyên không được lệch như float:
	// 1500.50 + 299.49 phải ra đúng 1799.99
	a, err := ParseAmountCents("1500.50")
	if err != nil {
		t.Fatalf("ParseAmountCents lỗi: %v", err)
	}
	b, err := ParseAmountCents("299.49")
	if err != nil {
		t.Fatalf("ParseAmountCents lỗi: %v", err)
	}

	sum := a + b
	if sum != 179999 {
		t.Errorf("Tổng cent không đúng: muốn 179999, nhận %d", sum)
	}
	if got := FormatCents(sum); got != "1799.99" {
		t.Errorf("FormatCents(%d) = %s, muốn 1799.99", sum, got)
	}
}

func TestFormatCents(t *testing.T) {
	if got := FormatCents(5); got != "0.05" {
		t.Errorf("FormatCents(5) = %s, muốn 0.05", got)
	}
	if got := FormatCents(-1234); got != "-12.34" {
		t.Errorf("FormatCents(-1234) = %s, muốn -12.34", got)
	}
}
