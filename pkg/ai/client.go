// pkg/ai/client.go

package ai

// SolutionRequest carries the growing context an enrichment call is built
// from. Location falls back to the selection's state when unset.
type SolutionRequest struct {
	CropName  string
	Location  string
	Season    string
	Week      int
	IssueType string
	Details   string
	KBContext string
}

type Client interface {
	GenerateSolution(req SolutionRequest) (string, error)
}
