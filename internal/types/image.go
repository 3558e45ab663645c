package types

// UploadedImage is one persisted variant as reported to the client.
type UploadedImage struct {
	Scale uint   `json:"scale"`
	Name  string `json:"name"`
}
