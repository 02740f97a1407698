package core

// Character code constants
const (
	CharEOF       = 0
	CharTAB       = 9
	CharLF        = 10
	CharVTAB      = 11
	CharFF        = 12
	CharCR        = 13
	CharSPACE     = 32
	CharBANG      = 33
	CharDQ        = 34
	CharHASH      = 35
	CharAMPERSAND = 38
	CharSQ        = 39
	CharLPAREN    = 40
	CharRPAREN    = 41
	CharSTAR      = 42
	CharPLUS      = 43
	CharCOMMA     = 44
	CharMINUS     = 45
	CharPERIOD    = 46
	CharSLASH     = 47
	CharCOLON     = 58
	CharSEMICOLON = 59
	CharLT        = 60
	CharEQ        = 61
	CharGT        = 62
	CharQUESTION  = 63

	Char0 = 48
	Char9 = 57

	CharA = 65
	CharF = 70
	CharZ = 90

	CharLBRACKET   = 91
	CharRBRACKET   = 93
	CharCARET      = 94
	CharUnderscore = 95

	CharLowerA = 97
	CharLowerF = 102
	CharLowerX = 120
	CharLowerZ = 122

	CharPERCENT = 37
	CharNBSP    = 160
)

// IsWhitespace checks if a character code represents whitespace
func IsWhitespace(code int) bool {
	return (code >= CharTAB && code <= CharSPACE) || code == CharNBSP
}

// IsDigit checks if a character code represents a digit
func IsDigit(code int) bool {
	return Char0 <= code && code <= Char9
}

// IsAsciiLetter checks if a character code represents an ASCII letter
func IsAsciiLetter(code int) bool {
	return (code >= CharLowerA && code <= CharLowerZ) || (code >= CharA && code <= CharZ)
}

// IsAsciiHexDigit checks if a character code represents a hexadecimal digit
func IsAsciiHexDigit(code int) bool {
	return (code >= CharLowerA && code <= CharLowerF) || (code >= CharA && code <= CharF) || IsDigit(code)
}

// IsNewLine checks if a character code represents a newline
func IsNewLine(code int) bool {
	return code == CharLF || code == CharCR
}

// IsQuote checks if a character code represents an attribute quote
func IsQuote(code int) bool {
	return code == CharSQ || code == CharDQ
}

// IsWordChar matches the \w class: ASCII letters, digits and underscore.
func IsWordChar(code int) bool {
	return IsAsciiLetter(code) || IsDigit(code) || code == CharUnderscore
}

// IsNameChar reports characters allowed in entity and processing
// instruction names.
func IsNameChar(code int) bool {
	return IsWordChar(code) || code == CharPERIOD || code == CharMINUS
}

// IsEntityNameChar reports characters allowed in a named entity reference.
func IsEntityNameChar(code int) bool {
	return IsNameChar(code) || code == CharCOLON
}

// IsTagWordChar reports characters that may appear inside a tag word
// (tag names, attribute names and unquoted values).
func IsTagWordChar(code int) bool {
	return !IsWhitespace(code) && code != CharEQ && code != CharLT && code != CharGT && !IsQuote(code)
}

// ToLowerASCII folds an ASCII upper-case letter to lower case.
func ToLowerASCII(code int) int {
	if code >= CharA && code <= CharZ {
		return code + (CharLowerA - CharA)
	}
	return code
}

// EqualFoldASCII compares two strings ignoring ASCII case.
func EqualFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if ToLowerASCII(int(a[i])) != ToLowerASCII(int(b[i])) {
			return false
		}
	}
	return true
}
