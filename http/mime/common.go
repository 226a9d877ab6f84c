package mime

import (
	stdmime "mime"
	"path/filepath"
	"strings"
)

type MIME = string

const (
	OctetStream MIME = "application/octet-stream"
	Plain       MIME = "text/plain"
	HTML        MIME = "text/html"
	XML         MIME = "text/xml"
	CSS         MIME = "text/css"
	CSV         MIME = "text/csv"
	Markdown    MIME = "text/markdown"
	JAVASCRIPT  MIME = "application/javascript"
	JSON        MIME = "application/json"
	YAML        MIME = "application/yaml"
	PDF         MIME = "application/pdf"
	ZIP         MIME = "application/zip"
	GZIP        MIME = "application/gzip"
	TAR         MIME = "application/x-tar"
	WASM        MIME = "application/wasm"
	AVIF        MIME = "image/avif"
	GIF         MIME = "image/gif"
	JPEG        MIME = "image/jpeg"
	PNG         MIME = "image/png"
	SVG         MIME = "image/svg+xml"
	ICO         MIME = "image/vnd.microsoft.icon"
	WEBP        MIME = "image/webp"
	BMP         MIME = "image/bmp"
	SWF         MIME = "application/x-shockwave-flash"
	MP3         MIME = "audio/mpeg"
	MP4         MIME = "video/mp4"
	WOFF        MIME = "font/woff"
	WOFF2       MIME = "font/woff2"
)

// ByFilename infers the MIME from the file extension. The inbuilt table goes first,
// then the one of the platform. Parameters returned by the platform (e.g. charset)
// are stripped. Files with unrecognised extensions are OctetStream.
func ByFilename(filename string) MIME {
	ext := strings.ToLower(filepath.Ext(filename))
	if len(ext) == 0 {
		return OctetStream
	}

	if m, found := Extension[ext]; found {
		return m
	}

	if m := stdmime.TypeByExtension(ext); len(m) > 0 {
		m, _, _ = strings.Cut(m, ";")
		return strings.TrimSpace(m)
	}

	return OctetStream
}
