package log

import (
	"context"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"

	EncodingJSON    = "json"
	EncodingConsole = "console"
)

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds a Logger from cfg. Unknown levels fall back to info.
func Init(cfg ZapConfig) Logger {
	return &zapLogger{sugar: newZap(cfg).Sugar()}
}

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

func newZap(cfg ZapConfig) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	if cfg.Mode != ModeProduction {
		encCfg = zap.NewDevelopmentEncoderConfig()
	}
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.ColorEnabled && cfg.Encoding != EncodingJSON {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	var encoder zapcore.Encoder
	if cfg.Encoding == EncodingJSON {
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), zap.NewAtomicLevelAt(parseLevel(cfg.Level)))

	opts := []zap.Option{zap.AddCaller(), zap.AddCallerSkip(1)}
	if cfg.Mode != ModeProduction {
		opts = append(opts, zap.Development())
	}
	return zap.New(core, opts...)
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l *zapLogger) with(ctx context.Context) *zap.SugaredLogger {
	if id := RequestID(ctx); id != "" {
		return l.sugar.With("request_id", id)
	}
	return l.sugar
}

// Structured calls follow the "message, key, value, ..." convention.
func (l *zapLogger) Debug(ctx context.Context, arg ...any) { l.log(ctx, zapcore.DebugLevel, arg) }
func (l *zapLogger) Info(ctx context.Context, arg ...any)  { l.log(ctx, zapcore.InfoLevel, arg) }
func (l *zapLogger) Warn(ctx context.Context, arg ...any)  { l.log(ctx, zapcore.WarnLevel, arg) }
func (l *zapLogger) Error(ctx context.Context, arg ...any) { l.log(ctx, zapcore.ErrorLevel, arg) }
func (l *zapLogger) DPanic(ctx context.Context, arg ...any) {
	l.log(ctx, zapcore.DPanicLevel, arg)
}
func (l *zapLogger) Panic(ctx context.Context, arg ...any) { l.log(ctx, zapcore.PanicLevel, arg) }
func (l *zapLogger) Fatal(ctx context.Context, arg ...any) { l.log(ctx, zapcore.FatalLevel, arg) }

func (l *zapLogger) Debugf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Debugf(template, arg...)
}
func (l *zapLogger) Infof(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Infof(template, arg...)
}
func (l *zapLogger) Warnf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Warnf(template, arg...)
}
func (l *zapLogger) Errorf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Errorf(template, arg...)
}
func (l *zapLogger) DPanicf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).DPanicf(template, arg...)
}
func (l *zapLogger) Panicf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Panicf(template, arg...)
}
func (l *zapLogger) Fatalf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Fatalf(template, arg...)
}

// log treats a leading string followed by an even number of args as a
// structured message; anything else is concatenated like zap's Info.
func (l *zapLogger) log(ctx context.Context, lvl zapcore.Level, arg []any) {
	s := l.with(ctx)
	if msg, ok := structured(arg); ok {
		switch lvl {
		case zapcore.DebugLevel:
			s.Debugw(msg, arg[1:]...)
		case zapcore.InfoLevel:
			s.Infow(msg, arg[1:]...)
		case zapcore.WarnLevel:
			s.Warnw(msg, arg[1:]...)
		case zapcore.ErrorLevel:
			s.Errorw(msg, arg[1:]...)
		case zapcore.DPanicLevel:
			s.DPanicw(msg, arg[1:]...)
		case zapcore.PanicLevel:
			s.Panicw(msg, arg[1:]...)
		default:
			s.Fatalw(msg, arg[1:]...)
		}
		return
	}

	switch lvl {
	case zapcore.DebugLevel:
		s.Debug(arg...)
	case zapcore.InfoLevel:
		s.Info(arg...)
	case zapcore.WarnLevel:
		s.Warn(arg...)
	case zapcore.ErrorLevel:
		s.Error(arg...)
	case zapcore.DPanicLevel:
		s.DPanic(arg...)
	case zapcore.PanicLevel:
		s.Panic(arg...)
	default:
		s.Fatal(arg...)
	}
}

func structured(arg []any) (string, bool) {
	if len(arg) < 3 || len(arg)%2 == 0 {
		return "", false
	}
	msg, ok := arg[0].(string)
	if !ok {
		return "", false
	}
	for i := 1; i < len(arg); i += 2 {
		if _, ok := arg[i].(string); !ok {
			return "", false
		}
	}
	return msg, true
}
