// pkg/ai/mock_client.go

package ai

type mockClient struct{}

func NewMock() Client { return &mockClient{} }

func (m *mockClient) GenerateSolution(req SolutionRequest) (string, error) {
	return FallbackSolution(req.IssueType, req.CropName, req.Season, req.Location), nil
}
