package rehex

// Logger implements logger abstraction
type Logger interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})
	Warning(args ...interface{})
	Warningf(format string, args ...interface{})
}

// Clock is the time source used for profiling measurements. NowMicros must
// be monotonic: successive calls never go backwards, regardless of wall
// clock adjustments.
type Clock interface {
	NowMicros() int64
}

// Document provides random access to the byte buffer being edited
type Document interface {
	Read(offset int64, length int) ([]byte, error)
	Overwrite(offset int64, data []byte) error
	Len() int64
}
