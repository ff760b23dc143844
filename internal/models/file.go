package models

import (
	"time"
)

const DefaultReplicaCount = 3

// FileRecord describes one stored file. ID, Size, Owner and UploadTime are
// immutable once assigned; DownloadCount only ever increases.
type FileRecord struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Size          int64     `json:"size"`
	ContentType   string    `json:"content_type"`
	UploadTime    time.Time `json:"upload_time"`
	Owner         string    `json:"owner"`
	DownloadCount uint64    `json:"download_count"`
	ReplicaCount  int       `json:"replica_count"`
	IsPublic      bool      `json:"is_public"`
}
