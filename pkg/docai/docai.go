// Package docai is the Google Document AI collaborator: it submits raw
// document bytes to a Form Parser processor and converts the proto
// response into the layout result consumed by the extraction engine.
//
// The proto is touched exactly once, in ResultFromProto; downstream
// packages only ever see the explicit layout types.
//
// Usage Requirements:
//
// - Google Cloud project with Document AI API enabled
// - Document AI processor configured for form parsing
// - Authentication via GOOGLE_APPLICATION_CREDENTIALS environment variable
package docai

// Config holds the Document AI processor coordinates.
type Config struct {
	ProjectID   string `yaml:"project_id"`
	Location    string `yaml:"location"`
	ProcessorID string `yaml:"processor_id"`
}
