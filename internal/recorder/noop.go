package recorder

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordPass(_ *PassSnapshot) (int64, error) { return 0, nil }
func (n *NoopRecorder) RecordCashChange(_ *CashEvent) error       { return nil }
func (n *NoopRecorder) Close() error                              { return nil }
