package logger

import (
	"io"

	"github.com/sirupsen/logrus"
)

var Log *logrus.Logger

// Init инициализирует структурированный логгер с JSON форматом.
func Init(level string) {
	Log = logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)
	Log.SetFormatter(&logrus.JSONFormatter{})
}

// SetTextFormatter включает читаемый формат для development.
func SetTextFormatter() {
	if Log != nil {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
}

// Get возвращает глобальный логгер. До вызова Init логи отбрасываются,
// чтобы пакеты можно было тестировать без инициализации.
func Get() *logrus.Logger {
	if Log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		return l
	}
	return Log
}
