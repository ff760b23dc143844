package dto

type FileUploadResponse struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	IsPublic bool   `json:"is_public"`
}

// FileChunk is the wire shape for chunked uploads. The current engine stores
// whole payloads only; no assembly logic consumes this yet.
type FileChunk struct {
	FileID      string `json:"file_id"`
	ChunkIndex  uint32 `json:"chunk_index"`
	Data        []byte `json:"data"`
	TotalChunks uint32 `json:"total_chunks"`
}
