package validators

import "unicode"

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

// passwordPolicyViolation returns the message for the first rule password
// breaks, or "" when it satisfies all of them:
// at least 8 characters, an uppercase letter, a digit and a symbol.
func passwordPolicyViolation(password string) string {
	if len([]rune(password)) < 8 {
		return "Password must be at least 8 chars"
	}
	if len(password) > maxPasswordBytes {
		return "Password must be at most 72 bytes"
	}

	var hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case !isASCIILetterOrDigit(r):
			hasSymbol = true
		}
	}

	switch {
	case !hasUpper:
		return "Must contain uppercase"
	case !hasDigit:
		return "Must contain number"
	case !hasSymbol:
		return "Must contain symbol"
	}

	return ""
}

func isASCIILetterOrDigit(r rune) bool {
	return r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r))
}
