package logger

import "go.uber.org/zap"

// Log - общий логгер приложения. До вызова Init ничего не пишет
var Log = zap.NewNop()

func Init(development bool) error {
	var (
		l   *zap.Logger
		err error
	)
	if development {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	Log = l
	return nil
}

func Sync() {
	_ = Log.Sync()
}
