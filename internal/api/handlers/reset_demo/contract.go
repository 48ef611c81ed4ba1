package reset_demo

// Resetter очищает данные демо хранилища
type Resetter interface {
	Reset()
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
