package entities

import "time"

// Photo holds metadata only; StorageRef points into whatever blob store the
// surrounding app uses.
type Photo struct {
	ID         string    `json:"id"`
	OwnerID    string    `json:"owner_id"`
	StorageRef string    `json:"storage_ref"`
	MimeType   string    `json:"mime_type"`
	SizeBytes  int64     `json:"size_bytes"`
	CreatedAt  time.Time `json:"created_at"`
}
