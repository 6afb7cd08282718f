package utils

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

// DefaultCharset is the encoding the minFraud service writes its bodies in.
const DefaultCharset = "ISO-8859-1"

// Latin1ToUTF8 re-encodes ISO-8859-1 bytes as a UTF-8 string.
func Latin1ToUTF8(b []byte) (string, error) {
	return DecodeText(b, DefaultCharset)
}

// DecodeText converts b from the named charset into UTF-8. An empty or
// unknown charset falls back to ISO-8859-1.
func DecodeText(b []byte, charset string) (string, error) {
	out, err := lookupCharset(charset).NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func lookupCharset(name string) encoding.Encoding {
	name = strings.TrimSpace(name)
	if name == "" {
		return charmap.ISO8859_1
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return charmap.ISO8859_1
	}
	return enc
}
