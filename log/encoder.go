package log

import (
	"go.uber.org/zap/zapcore"
)

type Level int8

const (
	DebugLevel = Level(zapcore.DebugLevel)
	InfoLevel  = Level(zapcore.InfoLevel)
	WarnLevel  = Level(zapcore.WarnLevel)
	ErrorLevel = Level(zapcore.ErrorLevel)
	PanicLevel = Level(zapcore.PanicLevel)
	FatalLevel = Level(zapcore.FatalLevel)
)

type (
	OutputEncoder func(config zapcore.EncoderConfig) zapcore.Encoder
	LevelEncoder  func(level zapcore.Level, encoder zapcore.PrimitiveArrayEncoder)
	CallerEncoder func(caller zapcore.EntryCaller, encoder zapcore.PrimitiveArrayEncoder)
)

func JsonOutputEncoder(config zapcore.EncoderConfig) zapcore.Encoder {
	return zapcore.NewJSONEncoder(config)
}

func ConsoleOutputEncoder(config zapcore.EncoderConfig) zapcore.Encoder {
	return zapcore.NewConsoleEncoder(config)
}

func BracketLevelEncoder(level zapcore.Level, encoder zapcore.PrimitiveArrayEncoder) {
	encoder.AppendString("[" + level.CapitalString() + "]")
}

func ShortCallerEncoder(caller zapcore.EntryCaller, encoder zapcore.PrimitiveArrayEncoder) {
	encoder.AppendString(caller.TrimmedPath())
}
