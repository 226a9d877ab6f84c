package mime

var Extension = map[string]MIME{
	".avif":  AVIF,
	".bmp":   BMP,
	".css":   CSS,
	".csv":   CSV,
	".gif":   GIF,
	".htm":   HTML,
	".html":  HTML,
	".ico":   ICO,
	".jpeg":  JPEG,
	".jpg":   JPEG,
	".js":    JAVASCRIPT,
	".mjs":   JAVASCRIPT,
	".json":  JSON,
	".md":    Markdown,
	".mp3":   MP3,
	".mp4":   MP4,
	".pdf":   PDF,
	".png":   PNG,
	".svg":   SVG,
	".swf":   SWF,
	".tar":   TAR,
	".txt":   Plain,
	".text":  Plain,
	".log":   Plain,
	".wasm":  WASM,
	".webp":  WEBP,
	".woff":  WOFF,
	".woff2": WOFF2,
	".xml":   XML,
	".yaml":  YAML,
	".yml":   YAML,
	".gz":    GZIP,
	".zip":   ZIP,
}
