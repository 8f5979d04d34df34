package recorder

// NoopRecorder is a no-op implementation used when no manifest file is configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordConversion(_ *ConversionRecord) error { return nil }
func (n *NoopRecorder) Close() error                               { return nil }
