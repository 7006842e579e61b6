package validate

import "regexp"

// IFSC format: 4 letter bank code, a zero, 6 alphanumeric branch characters.
var ifscPattern = regexp.MustCompile(`^[A-Za-z]{4}0[A-Za-z0-9]{6}$`)

func IsIFSC(s string) bool {
	return ifscPattern.MatchString(s)
}

var accountNumberPattern = regexp.MustCompile(`^[0-9]{9,18}$`)

func IsAccountNumber(s string) bool {
	return accountNumberPattern.MatchString(s)
}
