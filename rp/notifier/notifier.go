package notifier

import "code.cloudfoundry.org/lager/v3"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Notifier

// Notifier raises out-of-band operational alerts (low disk, uploads still
// failing at the retry budget). Implementations must not block ingest.
type Notifier interface {
	Alert(subject string, data map[string]any)
}

type logNotifier struct {
	logger lager.Logger
}

// NewLogNotifier is the default sink: alerts land in the process log.
func NewLogNotifier(logger lager.Logger) Notifier {
	return &logNotifier{logger: logger}
}

func (n *logNotifier) Alert(subject string, data map[string]any) {
	n.logger.Info("ops-alert", lager.Data{
		"subject": subject,
		"detail":  data,
	})
}
