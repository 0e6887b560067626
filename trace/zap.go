package trace

import "go.uber.org/zap"

// ZapTracer logs every event at debug level.
type ZapTracer struct {
	logger *zap.Logger
}

func NewZapTracer(logger *zap.Logger) *ZapTracer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapTracer{logger: logger}
}

func (z *ZapTracer) Trace(e Event) {
	if ce := z.logger.Check(zap.DebugLevel, string(e.Kind)); ce != nil {
		fields := make([]zap.Field, 0, 4)
		if e.Node != 0 {
			fields = append(fields, zap.Int64("node", e.Node))
		}
		if e.Sibling != 0 {
			fields = append(fields, zap.Int64("sibling", e.Sibling))
		}
		if e.Key != nil {
			fields = append(fields, zap.ByteString("key", e.Key))
		}
		switch e.Kind {
		case BlockAllocated, RecordInserted, RecordDeleted:
			fields = append(fields, zap.Stringer("address", e.Address))
		}
		ce.Write(fields...)
	}
}

// Multi fans an event out to several tracers.
type Multi []Tracer

func (m Multi) Trace(e Event) {
	for _, t := range m {
		t.Trace(e)
	}
}
