package log

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	rootLogger Logger
	mutex      = &sync.Mutex{}
)

// Logger is the logging surface handed to components, a thin wrapper
// around zap's sugared logger.
type Logger interface {
	Named(name string) Logger
	Debugf(template string, args ...any)
	Infof(template string, args ...any)
	Warnf(template string, args ...any)
	Errorf(template string, args ...any)
	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)
	Warn(args ...any)
	Error(args ...any)
}

type logger struct {
	*zap.SugaredLogger
}

func (l *logger) Named(name string) Logger {
	return &logger{l.SugaredLogger.Named(name)}
}

func Global() Logger {
	mutex.Lock()
	defer mutex.Unlock()
	if rootLogger == nil {
		rootLogger = build(DefaultOptions())
	}
	return rootLogger
}

func Setup(options *Options) {
	mutex.Lock()
	defer mutex.Unlock()
	if rootLogger != nil {
		rootLogger.Warn("can't re setup root logger")
		return
	}
	rootLogger = build(options)
}

func build(options *Options) Logger {
	var (
		infoWriteSyncers []zapcore.WriteSyncer
		errWriteSyncers  []zapcore.WriteSyncer
		cores            []zapcore.Core
		opts             []zap.Option
		encoderConfig    = zap.NewProductionEncoderConfig()
	)

	infoWriteSyncers = append(infoWriteSyncers, zapcore.AddSync(os.Stdout))
	errWriteSyncers = append(errWriteSyncers, zapcore.AddSync(os.Stderr))

	if options.callerEncoder != nil {
		opts = append(opts, zap.AddCaller())
		encoderConfig.EncodeCaller = zapcore.CallerEncoder(options.callerEncoder)
	}

	encoderConfig.EncodeLevel = zapcore.LevelEncoder(options.levelEncoder)
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(options.timeLayout)
	encoderConfig.ConsoleSeparator = " "
	cores = []zapcore.Core{zapcore.NewCore(
		options.outPutEncoder(encoderConfig),
		zapcore.NewMultiWriteSyncer(infoWriteSyncers...),
		zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
			return lvl >= zapcore.Level(options.level) && lvl < zapcore.WarnLevel
		}),
	), zapcore.NewCore(
		options.outPutEncoder(encoderConfig),
		zapcore.NewMultiWriteSyncer(errWriteSyncers...),
		zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
			return lvl >= zapcore.Level(options.level) && lvl >= zapcore.WarnLevel
		}),
	)}

	if options.stacktrace {
		opts = append(opts, zap.AddStacktrace(zapcore.WarnLevel))
	}
	zapSugarLogger := zap.New(zapcore.NewTee(cores...), opts...).Sugar()
	if options.name != "" {
		zapSugarLogger = zapSugarLogger.Named(options.name)
	}

	return &logger{zapSugarLogger}
}

// Nop returns a logger that discards everything, for tests.
func Nop() Logger {
	return &logger{zap.NewNop().Sugar()}
}
