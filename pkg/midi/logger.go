package midi

import "go.uber.org/zap"

var decoderLog = zap.NewNop()
var encoderLog = zap.NewNop()

// SetLogger replaces the package loggers, which discard everything by default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	decoderLog = l.Named("decoder")
	encoderLog = l.Named("encoder")
}
