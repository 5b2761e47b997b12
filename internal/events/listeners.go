package events

import (
	"github.com/sirupsen/logrus"
)

// LoggingListener writes overlay transitions to a logger
type LoggingListener struct {
	log logrus.FieldLogger
}

// NewLoggingListener creates a listener that logs every event it receives
func NewLoggingListener(logger logrus.FieldLogger) *LoggingListener {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LoggingListener{log: logger}
}

func (l *LoggingListener) ID() string    { return "logging" }
func (l *LoggingListener) Priority() int { return PriorityLogging }

func (l *LoggingListener) HandleEvent(e Event) error {
	entry := l.log.WithFields(logrus.Fields{
		"event":      e.GetType(),
		"element_id": e.GetElementID(),
		"element":    e.GetElementName(),
	})

	switch ev := e.(type) {
	case *ElementShownEvent:
		entry.WithFields(logrus.Fields{
			"text":    ev.Text,
			"preview": ev.Preview,
		}).Info("element shown")
	case *ElementHiddenEvent:
		entry.Info("element hidden")
	case *StyleChangedEvent:
		entry.WithFields(logrus.Fields{
			"from": ev.PreviousConditionID,
			"to":   ev.ConditionID,
		}).Info("element style changed")
	default:
		entry.Debug("unhandled event")
	}
	return nil
}
