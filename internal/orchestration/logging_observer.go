package orchestration

import "github.com/agbru/coffeemachine/internal/logging"

// LoggingObserver writes one structured entry per notification.
type LoggingObserver struct {
	logger logging.Logger
}

// NewLoggingObserver returns an observer logging through logger.
func NewLoggingObserver(logger logging.Logger) *LoggingObserver {
	return &LoggingObserver{logger: logger}
}

// Started logs the size of the queue being drained.
func (o *LoggingObserver) Started(numOrders int) error {
	o.logger.Info("started preparing orders", logging.Int("orders", numOrders))
	return nil
}

// Progress logs the completion percentage after each order.
func (o *LoggingObserver) Progress(percent int) error {
	o.logger.Info("order completed", logging.Int("percent", percent))
	return nil
}

// Finished logs the end of a successful cycle.
func (o *LoggingObserver) Finished() error {
	o.logger.Info("finished")
	return nil
}

// Aborted logs the fault that stopped the cycle.
func (o *LoggingObserver) Aborted(err error) {
	o.logger.Error("cycle aborted", err)
}

var (
	_ OrderStateObserver = (*LoggingObserver)(nil)
	_ AbortObserver      = (*LoggingObserver)(nil)
)
