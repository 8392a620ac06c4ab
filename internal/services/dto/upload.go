package dto

// UploadResult is what the ingestion service reports per stored file. ID
// is the storage identifier used for later deletion.
type UploadResult struct {
	URL string `json:"url"`
	ID  string `json:"id"`
}
