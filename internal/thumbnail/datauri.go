package thumbnail

import "encoding/base64"

// DataURIPrefix precedes the base64 payload of every produced thumbnail.
const DataURIPrefix = "data:image/jpeg;base64,"

// PlaceholderDataURI is a neutral film glyph a client can show in place of a
// thumbnail that could not be produced.
const PlaceholderDataURI = "data:image/svg+xml,%3Csvg xmlns='http://www.w3.org/2000/svg' width='64' height='64' fill='%239ca3af'%3E%3Crect x='8' y='16' width='48' height='32' rx='4' fill='none' stroke='%239ca3af' stroke-width='2'/%3E%3Cpath d='M28 26l12 8-12 8z' fill='%239ca3af'/%3E%3C/svg%3E"

// EncodeDataURI wraps JPEG bytes in a data URI using standard base64.
func EncodeDataURI(jpeg []byte) string {
	return DataURIPrefix + base64.StdEncoding.EncodeToString(jpeg)
}
