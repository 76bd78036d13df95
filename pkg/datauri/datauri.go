// Package datauri builds RFC 2397 data URIs.
package datauri

import (
	"encoding/base64"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/h2non/filetype"
)

// DefaultMIME is used when the content type can not be detected.
const DefaultMIME = "text/plain"

// Parameter is one ";name=value" pair of a data URI, written in order.
type Parameter struct {
	Name  string
	Value string
}

// Encode returns data as a data URI. An empty mimeType is detected from the
// content. Text types are percent-encoded, everything else is base64.
func Encode(data []byte, mimeType string, params ...Parameter) string {
	mimeType = strings.TrimSpace(mimeType)
	if mimeType == "" {
		mimeType = Detect(data)
	}

	var b strings.Builder
	b.WriteString("data:")
	b.WriteString(mimeType)
	for _, p := range params {
		b.WriteByte(';')
		b.WriteString(p.Name)
		b.WriteByte('=')
		b.WriteString(rawURLEncode(p.Value))
	}
	if strings.HasPrefix(mimeType, "text/") {
		b.WriteByte(',')
		b.WriteString(rawURLEncode(string(data)))
	} else {
		b.WriteString(";base64,")
		b.WriteString(base64.StdEncoding.EncodeToString(data))
	}
	return b.String()
}

// Detect guesses the media type of data from magic bytes, then from content
// sniffing. Parameters such as charset are dropped.
func Detect(data []byte) string {
	if len(data) == 0 {
		return DefaultMIME
	}
	if kind, err := filetype.Match(data); err == nil && kind != filetype.Unknown && kind.MIME.Value != "" {
		return kind.MIME.Value
	}
	mediaType, _, err := mime.ParseMediaType(http.DetectContentType(data))
	if err != nil || mediaType == "" {
		return DefaultMIME
	}
	return mediaType
}

// rawURLEncode escapes everything except letters, digits and "-_.~".
func rawURLEncode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
