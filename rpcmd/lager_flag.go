package rpcmd

import (
	"fmt"
	"os"

	"code.cloudfoundry.org/lager/v3"
)

type LagerFlag struct {
	LogLevel string `long:"log-level" default:"info" choice:"debug" choice:"info" choice:"error" choice:"fatal" description:"Minimum level of logs to see."`
}

func (f LagerFlag) Logger(component string) (lager.Logger, *lager.ReconfigurableSink) {
	var minLagerLogLevel lager.LogLevel
	switch f.LogLevel {
	case "debug":
		minLagerLogLevel = lager.DEBUG
	case "info":
		minLagerLogLevel = lager.INFO
	case "error":
		minLagerLogLevel = lager.ERROR
	case "fatal":
		minLagerLogLevel = lager.FATAL
	default:
		panic(fmt.Sprintf("unknown log level: %s", f.LogLevel))
	}

	logger := lager.NewLogger(component)

	sink := lager.NewReconfigurableSink(lager.NewPrettySink(os.Stdout, lager.DEBUG), minLagerLogLevel)
	logger.RegisterSink(sink)

	return logger, sink
}
