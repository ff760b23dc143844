package models

import (
	"time"
)

type NodeType string

const (
	NodeTypeEdge    NodeType = "edge"
	NodeTypeStorage NodeType = "storage"
	NodeTypeRelay   NodeType = "relay"
)

// NodeRecord is the self-advertised description of a storage node. It is
// pure metadata: nothing in the storage engine routes or places data by it.
type NodeRecord struct {
	ID               string    `json:"id"`
	Location         string    `json:"location"`
	StorageCapacity  uint64    `json:"storage_capacity"`
	UsedStorage      uint64    `json:"used_storage"`
	UptimePercentage float64   `json:"uptime_percentage"`
	LastSeen         time.Time `json:"last_seen"`
	NodeType         NodeType  `json:"node_type"`
}
