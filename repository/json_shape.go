package repository

import "bytes"

// IsJSONObject reports whether raw holds a JSON object, ignoring leading whitespace.
func IsJSONObject(raw []byte) bool {
	return firstToken(raw) == '{'
}

// IsJSONArray reports whether raw holds a JSON array, ignoring leading whitespace.
func IsJSONArray(raw []byte) bool {
	return firstToken(raw) == '['
}

func firstToken(raw []byte) byte {
	raw = bytes.TrimLeft(raw, " \t\r\n")
	if len(raw) == 0 {
		return 0
	}
	return raw[0]
}
