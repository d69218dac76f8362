package driven

import "context"

// Worker is the out-of-process collaborator that performs the actual
// PDF byte manipulation. The core only ever exchanges request and
// response messages with it; document bytes never cross into this
// process.
type Worker interface {
	// Merge combines the listed files, in order, into a single
	// output file.
	Merge(ctx context.Context, req MergeRequest) (*WorkerResponse, error)

	// Split extracts the listed page ranges from one file into one
	// output file per range.
	Split(ctx context.Context, req SplitRequest) (*WorkerResponse, error)

	// Metadata resolves page count and byte size for a single file.
	Metadata(ctx context.Context, file string) (*FileMetadata, error)
}

// MergeRequest is the outbound merge message. Files are ordered and
// match the collection's display order.
type MergeRequest struct {
	Files  []string `json:"files"`
	Output string   `json:"output"`
}

// SplitRequest is the outbound split message. Ranges are [start,end]
// pairs taken from a validated RangeSpec, in input order.
type SplitRequest struct {
	File      string   `json:"file"`
	Ranges    [][2]int `json:"ranges"`
	OutputDir string   `json:"output_dir"`
	BaseName  string   `json:"base_name"`
}

// WorkerResponse is the inbound result for merge and split. On
// failure, Error carries a human-readable description surfaced to the
// user verbatim.
type WorkerResponse struct {
	Success bool     `json:"success"`
	Output  string   `json:"output,omitempty"`
	Files   []string `json:"files,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// FileMetadata is the inbound result for a metadata request.
type FileMetadata struct {
	Pages     int   `json:"pages"`
	SizeBytes int64 `json:"size_bytes"`
}
