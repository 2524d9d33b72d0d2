package progress

import log "github.com/sirupsen/logrus"

// Logger writes events through logrus. Candidate events are logged at debug
// level because there can be many per accepted path; the rest at info.
type Logger struct {
	entry *log.Entry
}

// NewLogger wraps entry. A nil entry logs through the standard logger.
func NewLogger(entry *log.Entry) *Logger {
	if entry == nil {
		entry = log.NewEntry(log.StandardLogger())
	}

	return &Logger{entry: entry}
}

// Observe logs e with structured fields.
func (l *Logger) Observe(e Event) {
	fields := log.Fields{"kind": e.Kind.String()}
	if e.Kind == Done {
		fields["found"] = e.Found
		fields["requested"] = e.Requested
	} else {
		fields["nodes"] = e.Nodes
		fields["cost"] = e.Cost
	}
	entry := l.entry.WithFields(fields)
	if e.Kind == CandidateFound {
		entry.Debug(e.String())
		return
	}
	entry.Info(e.String())
}
