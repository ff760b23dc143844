package dto

type RegisterNodeRequest struct {
	ID               string  `json:"id"`
	Location         string  `json:"location"`
	StorageCapacity  uint64  `json:"storage_capacity"`
	UsedStorage      uint64  `json:"used_storage"`
	UptimePercentage float64 `json:"uptime_percentage"`
	NodeType         string  `json:"node_type"`
}

type RegisterNodeResponse struct {
	ID string `json:"id"`
}

type NetworkStatsResponse struct {
	TotalFiles        uint64 `json:"total_files"`
	TotalStorageBytes uint64 `json:"total_storage_bytes"`
	TotalDownloads    uint64 `json:"total_downloads"`
	ActiveNodes       uint64 `json:"active_nodes"`
}
