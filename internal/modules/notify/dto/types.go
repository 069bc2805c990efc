package dto

// Event kinds mirror the two signals the tracker emits: encouragement on
// task completion and phase progression on goals.
const (
	KindMotivation = "motivation"
	KindProgress   = "progress"
)

type EventInput struct {
	Kind    string
	Message string
}

type PluginOutput struct {
	Name        string
	Version     string
	Description string
	Path        string
	Checksum    string
}

type DiagnosisOutput struct {
	Name    string
	Healthy bool
	Detail  string
}

type DeliveryOutput struct {
	Plugin   string
	Accepted bool
	Detail   string
}
