// Package codec converts bookings to and from their wire representations.
// Two formats are supported: JSON and a minimal XML dialect. The format is
// resolved once from request headers and passed through as a Format value.
package codec

import (
	"mime"
	"strings"
)

// Format identifies a wire representation.
type Format int

const (
	// JSON is the default representation.
	JSON Format = iota
	// XML is the <booking> dialect.
	XML
)

// String returns the short name of the format.
func (f Format) String() string {
	if f == XML {
		return "xml"
	}
	return "json"
}

// ContentType returns the Content-Type header value for responses in f.
func (f Format) ContentType() string {
	if f == XML {
		return "application/xml; charset=utf-8"
	}
	return "application/json; charset=utf-8"
}

// FormatFromAccept selects the response format from an Accept header.
// Any header mentioning xml selects XML; everything else, including an
// absent header, selects JSON.
func FormatFromAccept(accept string) Format {
	if strings.Contains(strings.ToLower(accept), "xml") {
		return XML
	}
	return JSON
}

// FormatFromContentType selects the request body format from a Content-Type
// header. Only the text/xml media type selects XML; parameters such as
// charset are ignored.
func FormatFromContentType(contentType string) Format {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return JSON
	}
	if mediaType == "text/xml" {
		return XML
	}
	return JSON
}
