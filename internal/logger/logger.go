package logger

import "github.com/sirupsen/logrus"

type Logger struct {
	l *logrus.Logger
}

func New() *Logger {
	l := logrus.New()
	//nolint:exhaustruct
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	return &Logger{l: l}
}

func (l *Logger) LogErrorf(format string, v ...any) {
	l.l.Errorf(format, v...)
}

func (l *Logger) LogInfo(format string, v ...any) {
	l.l.Infof(format, v...)
}
