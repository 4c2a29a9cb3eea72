// Package prettylog formats zap entries for the dev console: level icon,
// colored message, dimmed key=value fields.
package prettylog

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

const (
	ansiReset  = "\033[0m"
	ansiRed    = "\033[31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiCyan   = "\033[36m"
	ansiGray   = "\033[90m"
)

const (
	iconDebug = "⚙"
	iconInfo  = "ℹ"
	iconWarn  = "⚠"
	iconError = "✖"
)

var bufPool = buffer.NewPool()

// Encoder is a minimal console encoder in consola style.
type Encoder struct {
	color  bool
	fields []zapcore.Field
}

// NewEncoder creates an Encoder. Set color=true for ANSI terminal output.
func NewEncoder(color bool) zapcore.Encoder {
	return &Encoder{color: color}
}

// ShouldColor reports whether terminal colors should be enabled.
func ShouldColor() bool {
	return os.Getenv("NO_COLOR") == ""
}

func (e *Encoder) Clone() zapcore.Encoder {
	clone := &Encoder{color: e.color, fields: make([]zapcore.Field, len(e.fields))}
	copy(clone.fields, e.fields)
	return clone
}

func (e *Encoder) EncodeEntry(entry zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	buf := bufPool.Get()

	icon, tint := iconInfo, ansiCyan
	switch entry.Level {
	case zapcore.DebugLevel:
		icon, tint = iconDebug, ansiGray
	case zapcore.WarnLevel:
		icon, tint = iconWarn, ansiYellow
	case zapcore.ErrorLevel, zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		icon, tint = iconError, ansiRed
	}

	e.writeColored(buf, ansiGray, entry.Time.Format(time.TimeOnly))
	buf.AppendByte(' ')
	e.writeColored(buf, tint, icon)
	buf.AppendByte(' ')
	if entry.LoggerName != "" {
		e.writeColored(buf, ansiGreen, "["+entry.LoggerName+"]")
		buf.AppendByte(' ')
	}
	buf.AppendString(entry.Message)

	merged := make([]zapcore.Field, 0, len(e.fields)+len(fields))
	merged = append(merged, e.fields...)
	merged = append(merged, fields...)
	for _, f := range merged {
		buf.AppendByte(' ')
		e.writeColored(buf, ansiGray, f.Key+"="+fieldValue(f))
	}
	buf.AppendByte('\n')
	return buf, nil
}

func (e *Encoder) writeColored(buf *buffer.Buffer, tint, s string) {
	if e.color {
		buf.AppendString(tint)
		buf.AppendString(s)
		buf.AppendString(ansiReset)
		return
	}
	buf.AppendString(s)
}

func fieldValue(f zapcore.Field) string {
	switch f.Type {
	case zapcore.StringType:
		return f.String
	case zapcore.ErrorType:
		if err, ok := f.Interface.(error); ok {
			return err.Error()
		}
	case zapcore.DurationType:
		return time.Duration(f.Integer).String()
	case zapcore.Int64Type, zapcore.Int32Type, zapcore.Int16Type, zapcore.Int8Type,
		zapcore.Uint64Type, zapcore.Uint32Type, zapcore.Uint16Type, zapcore.Uint8Type:
		return fmt.Sprintf("%d", f.Integer)
	case zapcore.BoolType:
		if f.Integer == 1 {
			return "true"
		}
		return "false"
	}
	return fmt.Sprintf("%v", f.Interface)
}

// structured-field methods: unused by the console path, satisfied minimally.

func (e *Encoder) AddArray(key string, arr zapcore.ArrayMarshaler) error {
	e.fields = append(e.fields, zap.Any(key, arr))
	return nil
}
func (e *Encoder) AddObject(key string, obj zapcore.ObjectMarshaler) error {
	e.fields = append(e.fields, zap.Any(key, obj))
	return nil
}
func (e *Encoder) AddBinary(key string, v []byte)     { e.fields = append(e.fields, zap.Binary(key, v)) }
func (e *Encoder) AddByteString(key string, v []byte) { e.fields = append(e.fields, zap.ByteString(key, v)) }
func (e *Encoder) AddBool(key string, v bool)         { e.fields = append(e.fields, zap.Bool(key, v)) }
func (e *Encoder) AddComplex128(key string, v complex128) {
	e.fields = append(e.fields, zap.Complex128(key, v))
}
func (e *Encoder) AddComplex64(key string, v complex64) {
	e.fields = append(e.fields, zap.Complex64(key, v))
}
func (e *Encoder) AddDuration(key string, v time.Duration) {
	e.fields = append(e.fields, zap.Duration(key, v))
}
func (e *Encoder) AddFloat64(key string, v float64) { e.fields = append(e.fields, zap.Float64(key, v)) }
func (e *Encoder) AddFloat32(key string, v float32) { e.fields = append(e.fields, zap.Float32(key, v)) }
func (e *Encoder) AddInt(key string, v int)         { e.fields = append(e.fields, zap.Int(key, v)) }
func (e *Encoder) AddInt64(key string, v int64)     { e.fields = append(e.fields, zap.Int64(key, v)) }
func (e *Encoder) AddInt32(key string, v int32)     { e.fields = append(e.fields, zap.Int32(key, v)) }
func (e *Encoder) AddInt16(key string, v int16)     { e.fields = append(e.fields, zap.Int16(key, v)) }
func (e *Encoder) AddInt8(key string, v int8)       { e.fields = append(e.fields, zap.Int8(key, v)) }
func (e *Encoder) AddString(key, v string)          { e.fields = append(e.fields, zap.String(key, v)) }
func (e *Encoder) AddTime(key string, v time.Time)  { e.fields = append(e.fields, zap.Time(key, v)) }
func (e *Encoder) AddUint(key string, v uint)       { e.fields = append(e.fields, zap.Uint(key, v)) }
func (e *Encoder) AddUint64(key string, v uint64)   { e.fields = append(e.fields, zap.Uint64(key, v)) }
func (e *Encoder) AddUint32(key string, v uint32)   { e.fields = append(e.fields, zap.Uint32(key, v)) }
func (e *Encoder) AddUint16(key string, v uint16)   { e.fields = append(e.fields, zap.Uint16(key, v)) }
func (e *Encoder) AddUint8(key string, v uint8)     { e.fields = append(e.fields, zap.Uint8(key, v)) }
func (e *Encoder) AddUintptr(key string, v uintptr) { e.fields = append(e.fields, zap.Uintptr(key, v)) }
func (e *Encoder) AddReflected(key string, v interface{}) error {
	e.fields = append(e.fields, zap.Any(key, v))
	return nil
}
func (e *Encoder) OpenNamespace(key string) {}

// NewLogger builds a zap logger: pretty console in dev, JSON in production.
func NewLogger(dev bool) *zap.Logger {
	if dev {
		core := zapcore.NewCore(NewEncoder(ShouldColor()), zapcore.Lock(os.Stdout), zapcore.DebugLevel)
		return zap.New(core)
	}
	logger, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
