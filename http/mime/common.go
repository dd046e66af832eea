package mime

type MIME = string

const (
	OctetStream MIME = "application/octet-stream"
	Plain       MIME = "text/plain"
	HTML        MIME = "text/html"
	CSS         MIME = "text/css"
	CSV         MIME = "text/csv"
	Calendar    MIME = "text/calendar"
	JS          MIME = "text/javascript"
	XML         MIME = "text/xml"
	JSON        MIME = "application/json"
	JSONLD      MIME = "application/ld+json"
	YAML        MIME = "application/yaml"
	PDF         MIME = "application/pdf"
	RTF         MIME = "application/rtf"
	PHP         MIME = "application/x-httpd-php"
	Shell       MIME = "application/x-sh"
	WASM        MIME = "application/wasm"
	ZIP         MIME = "application/zip"
	GZIP        MIME = "application/gzip"
	BZIP        MIME = "application/x-bzip"
	BZIP2       MIME = "application/x-bzip2"
	TAR         MIME = "application/x-tar"
	RAR         MIME = "application/vnd.rar"
	JAR         MIME = "application/java-archive"
	EPUB        MIME = "application/epub+zip"
	DOC         MIME = "application/msword"
	DOCX        MIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	PPT         MIME = "application/vnd.ms-powerpoint"
	PPTX        MIME = "application/vnd.openxmlformats-officedocument.presentationml.presentation"
	ODP         MIME = "application/vnd.oasis.opendocument.presentation"
	ODS         MIME = "application/vnd.oasis.opendocument.spreadsheet"
	ODT         MIME = "application/vnd.oasis.opendocument.text"
	OGX         MIME = "application/ogg"
	AAC         MIME = "audio/aac"
	MIDI        MIME = "audio/midi"
	MP3         MIME = "audio/mpeg"
	OGA         MIME = "audio/ogg"
	AVI         MIME = "video/x-msvideo"
	MP4         MIME = "video/mp4"
	MPEG        MIME = "video/mpeg"
	OGV         MIME = "video/ogg"
	APNG        MIME = "image/apng"
	AVIF        MIME = "image/avif"
	BMP         MIME = "image/bmp"
	GIF         MIME = "image/gif"
	ICO         MIME = "image/vnd.microsoft.icon"
	JPEG        MIME = "image/jpeg"
	PNG         MIME = "image/png"
	SVG         MIME = "image/svg+xml"
	WEBP        MIME = "image/webp"
	OTF         MIME = "font/otf"
	TTF         MIME = "font/ttf"
	WOFF        MIME = "font/woff"
	WOFF2       MIME = "font/woff2"
)

type Charset = string

const UTF8 Charset = "utf-8"
