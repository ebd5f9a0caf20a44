package utils

import (
	"encoding/base64"
	"errors"
	"strings"
)

var ErrInvalidImage = errors.New("invalid image format")

// ValidImageRef accepts what the admin forms send: either an http(s)
// URL or an embedded data URI produced by the upload widget.
func ValidImageRef(ref string) bool {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return true
	}
	return validDataURI(ref)
}

// validDataURI checks a "data:image/...;base64,..." payload actually
// decodes. Size limit 10MB, same as avatar uploads elsewhere.
func validDataURI(ref string) bool {
	if !strings.HasPrefix(ref, "data:image/") {
		return false
	}
	if len(ref) > 10*1024*1024 {
		return false
	}
	_, payload, ok := strings.Cut(ref, ";base64,")
	if !ok {
		return false
	}
	_, err := base64.StdEncoding.DecodeString(payload)
	return err == nil
}
