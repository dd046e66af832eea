package mime

import (
	"path/filepath"
	"strings"
)

var Extension = map[string]MIME{
	".aac":    AAC,
	".apng":   APNG,
	".avi":    AVI,
	".avif":   AVIF,
	".bin":    OctetStream,
	".bmp":    BMP,
	".bz":     BZIP,
	".bz2":    BZIP2,
	".css":    CSS,
	".csv":    CSV,
	".doc":    DOC,
	".docx":   DOCX,
	".epub":   EPUB,
	".gif":    GIF,
	".gz":     GZIP,
	".htm":    HTML,
	".html":   HTML,
	".ico":    ICO,
	".ics":    Calendar,
	".jar":    JAR,
	".jpeg":   JPEG,
	".jpg":    JPEG,
	".js":     JS,
	".json":   JSON,
	".jsonld": JSONLD,
	".mid":    MIDI,
	".midi":   MIDI,
	".mjs":    JS,
	".mp3":    MP3,
	".mp4":    MP4,
	".mpeg":   MPEG,
	".odp":    ODP,
	".ods":    ODS,
	".odt":    ODT,
	".oga":    OGA,
	".ogv":    OGV,
	".ogx":    OGX,
	".otf":    OTF,
	".pdf":    PDF,
	".php":    PHP,
	".png":    PNG,
	".ppt":    PPT,
	".pptx":   PPTX,
	".rar":    RAR,
	".rtf":    RTF,
	".sh":     Shell,
	".svg":    SVG,
	".tar":    TAR,
	".ttf":    TTF,
	".txt":    Plain,
	".wasm":   WASM,
	".webp":   WEBP,
	".woff":   WOFF,
	".woff2":  WOFF2,
	".xml":    XML,
	".yaml":   YAML,
	".yml":    YAML,
	".zip":    ZIP,
}

// DefaultCharset defines charsets, used by default for MIMEs unless explicitly set.
var DefaultCharset = map[MIME]Charset{
	Plain:    UTF8,
	HTML:     UTF8,
	CSS:      UTF8,
	CSV:      UTF8,
	Calendar: UTF8,
	JS:       UTF8,
	XML:      UTF8,
	JSON:     UTF8,
	JSONLD:   UTF8,
	PHP:      UTF8,
	RTF:      UTF8,
	Shell:    UTF8,
	SVG:      UTF8,
}

// ByExtension guesses the type of the file by its extension. Unknown extensions result
// in application/octet-stream.
func ByExtension(path string) Type {
	mime, found := Extension[strings.ToLower(filepath.Ext(path))]
	if !found {
		mime = OctetStream
	}

	return New(mime)
}
