package assistantapi

import (
	"context"

	assistant "example.com/assistant/gen/assistant"
	"goa.design/clue/log"
)

// assistant service example implementation implements gen/assistant.Service
type assistantsrvc struct{}

// NewAssistant returns the assistant service implementation.
func NewAssistant() assistant.Service { return &assistantsrvc{} }

// Analyze text for sentiment, keywords, or summary
func (s *assistantsrvc) AnalyzeText(ctx context.Context, p *assistant.AnalyzeTextPayload) (*assistant.AnalysisResult, error) {
	log.Printf(ctx, "assistant.analyze_text")
	return &assistant.AnalysisResult{Mode: p.Mode, Result: "ok"}, nil
}

// Search the knowledge base
func (s *assistantsrvc) SearchKnowledge(ctx context.Context, p *assistant.SearchKnowledgePayload) ([]*assistant.SearchResult, error) {
	return []*assistant.SearchResult{}, nil
}

// Execute code in a sandboxed environment
func (s *assistantsrvc) ExecuteCode(ctx context.Context, p *assistant.ExecuteCodePayload) (*assistant.ExecutionResult, error) {
	return &assistant.ExecutionResult{Output: "", ExecutionTime: 0}, nil
}

// List available documents
func (s *assistantsrvc) ListDocuments(ctx context.Context) ([]*assistant.Document, error) {
	return []*assistant.Document{}, nil
}

// Get system information and status
func (s *assistantsrvc) GetSystemInfo(ctx context.Context) (*assistant.SystemInfo, error) {
	return &assistant.SystemInfo{Version: "1.0.0", Uptime: 0}, nil
}

// Get conversation history
func (s *assistantsrvc) GetConversationHistory(ctx context.Context, p *assistant.GetConversationHistoryPayload) ([]*assistant.ChatMessage, error) {
	return []*assistant.ChatMessage{}, nil
}

// Generate context-aware prompts
func (s *assistantsrvc) GeneratePrompts(ctx context.Context, p *assistant.GeneratePromptsPayload) ([]*assistant.PromptTemplate, error) {
	return []*assistant.PromptTemplate{}, nil
}

// Request text completion from client LLM
func (s *assistantsrvc) RequestCompletion(ctx context.Context, p *assistant.RequestCompletionPayload) (*assistant.RequestCompletionResult, error) {
	return &assistant.RequestCompletionResult{Model: "", Content: ""}, nil
}

// Get workspace root directories from client
func (s *assistantsrvc) GetWorkspaceInfo(ctx context.Context) (*assistant.GetWorkspaceInfoResult, error) {
	return &assistant.GetWorkspaceInfoResult{Roots: []*assistant.RootInfo{}}, nil
}

// Send status notification to client
func (s *assistantsrvc) SendNotification(ctx context.Context, p *assistant.SendNotificationPayload) error {
	log.Printf(ctx, "assistant.send_notification")
	return nil
}

// Subscribe to resource updates
func (s *assistantsrvc) SubscribeToUpdates(ctx context.Context, p *assistant.SubscribeToUpdatesPayload) (*assistant.SubscriptionInfo, error) {
	return &assistant.SubscriptionInfo{SubscriptionID: "sub-1", Resource: p.Resource, CreatedAt: "2024-01-01T00:00:00Z"}, nil
}

// Process a batch of items with progress tracking
func (s *assistantsrvc) ProcessBatch(ctx context.Context, p *assistant.ProcessBatchPayload) (*assistant.BatchResult, error) {
	return &assistant.BatchResult{Processed: len(p.Items), Failed: 0, Results: []any{}}, nil
}

// Monitor resource changes
func (s *assistantsrvc) MonitorResourceChanges(ctx context.Context, p *assistant.MonitorResourceChangesPayload) (*assistant.MonitorResourceChangesResult, error) {
	return &assistant.MonitorResourceChangesResult{Updates: []*assistant.ResourceUpdate{}}, nil
}

// Stream server logs in real-time
func (s *assistantsrvc) StreamLogs(ctx context.Context, p *assistant.StreamLogsPayload) (*assistant.StreamLogsResult, error) {
	return &assistant.StreamLogsResult{Logs: []*assistant.LogEntry{}}, nil
}
