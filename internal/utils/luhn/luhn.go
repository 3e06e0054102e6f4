package luhn

func ValidateNumber(num string) bool {
	if num == "" {
		return false
	}

	sum := 0
	parity := len(num) % 2

	for i := 0; i < len(num); i++ {
		if num[i] < '0' || num[i] > '9' {
			return false
		}
		digit := int(num[i] - '0')
		if i%2 == parity {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
	}

	return sum%10 == 0
}
