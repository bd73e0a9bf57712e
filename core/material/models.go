package material

import "time"

// PDFContentType is the only MIME type the upload zone lets through.
const PDFContentType = "application/pdf"

// Material is the metadata kept for an uploaded course file. File content is
// never read, parsed or stored.
type Material struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Size        int64     `json:"size"` // bytes
	ContentType string    `json:"content_type"`
	UploadedAt  time.Time `json:"uploaded_at"` // UTC
}

// FileInfo describes an incoming file handle as seen by the upload zone.
type FileInfo struct {
	Name        string
	Size        int64
	ContentType string
}
