package utility

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseAmountCents chuyển đổi chuỗi tiền dạng thập phân ("1500.50") thành
// số cent nguyên (150050). Tiền luôn được lưu và cộng dồn bằng số nguyên
// để tránh sai số dấu phẩy động khi tổng hợp báo cáo.
//
// Chấp nhận tối đa 2 chữ số thập phân và dấu phẩy ngăn cách hàng nghìn.
func ParseAmountCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, fmt.Errorf("chuỗi tiền rỗng")
	}

	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if idx := strings.Index(s, "."); idx >= 0 {
		intPart = s[:idx]
		fracPart = s[idx+1:]
	}

	if intPart == "" {
		intPart = "0"
	}
	if len(fracPart) > 2 {
		return 0, fmt.Errorf("số tiền %q có quá 2 chữ số thập phân", s)
	}
	// Pad phần thập phân thành đúng 2 chữ số
	for len(fracPart) < 2 {
		fracPart += "0"
	}

	intVal, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("số tiền %q không hợp lệ: %w", s, err)
	}
	fracVal, err := strconv.ParseInt(fracPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("số tiền %q không hợp lệ: %w", s, err)
	}

	cents := intVal*100 + fracVal
	if negative {
		cents = -cents
	}
	return cents, nil
}

// FormatCents chuyển số cent nguyên thành chuỗi thập phân ("179999" -> "1799.99")
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
