// Package logger provides a structured logging interface for applications.
package logger

import (
	"encoding/json"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

// devEncoder is a custom encoder for development mode that outputs colored,
// human-readable logs with indented JSON for complex objects.
type devEncoder struct {
	zapcore.Encoder
	consoleEncoder zapcore.Encoder
	jsonEncoder    zapcore.Encoder
	pool           buffer.Pool
}

// newDevEncoder creates a development encoder with color support and JSON indentation.
func newDevEncoder(encoderConfig zapcore.EncoderConfig) zapcore.Encoder {
	consoleEnc := zapcore.NewConsoleEncoder(encoderConfig)
	return &devEncoder{
		Encoder:        consoleEnc, // embed the console encoder to implement the Encoder interface
		consoleEncoder: consoleEnc,
		jsonEncoder:    zapcore.NewJSONEncoder(encoderConfig),
		pool:           buffer.NewPool(),
	}
}

// Clone ensures derived loggers keep the development encoder wrapper.
func (e *devEncoder) Clone() zapcore.Encoder {
	return &devEncoder{
		Encoder:        e.Encoder.Clone(),
		consoleEncoder: e.consoleEncoder.Clone(),
		jsonEncoder:    e.jsonEncoder.Clone(),
		pool:           e.pool,
	}
}

// EncodeEntry formats a log entry with colored levels and pretty-printed fields.
func (e *devEncoder) EncodeEntry(entry zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	consoleBuf, err := e.consoleEncoder.EncodeEntry(entry, nil)
	if err != nil {
		return nil, err
	}

	line := strings.TrimRight(consoleBuf.String(), "\n")
	line = colorizeLevel(line, entry.Level)

	if len(fields) > 0 {
		pretty, prettyErr := e.prettyFields(entry, fields)
		if prettyErr != nil {
			return nil, prettyErr
		}
		line += "\n" + pretty
	}

	out := e.pool.Get()
	out.AppendString(line)
	out.AppendString("\n")
	return out, nil
}

// prettyFields renders structured fields as indented JSON.
func (e *devEncoder) prettyFields(entry zapcore.Entry, fields []zapcore.Field) (string, error) {
	fieldBuf, err := e.jsonEncoder.EncodeEntry(entry, fields)
	if err != nil {
		return "", err
	}

	var fieldsMap map[string]any
	if err := json.Unmarshal(fieldBuf.Bytes(), &fieldsMap); err != nil {
		return strings.TrimRight(fieldBuf.String(), "\n"), nil //nolint:nilerr // fall back to raw output
	}

	// entry-level keys already appear on the console line
	delete(fieldsMap, messageKey)
	delete(fieldsMap, levelKey)
	delete(fieldsMap, nameKey)
	delete(fieldsMap, timeKey)

	if len(fieldsMap) == 0 {
		return "", nil
	}

	indented, err := json.MarshalIndent(fieldsMap, "", "  ")
	if err != nil {
		return "", err
	}
	return color.New(color.Faint).Sprint(string(indented)), nil
}

// colorizeLevel colors the level token within a console-encoded line.
func colorizeLevel(line string, level zapcore.Level) string {
	token := level.CapitalString()

	var c *color.Color
	switch level {
	case zapcore.DebugLevel:
		c = color.New(color.FgMagenta)
	case zapcore.InfoLevel:
		c = color.New(color.FgGreen)
	case zapcore.WarnLevel:
		c = color.New(color.FgYellow)
	case zapcore.ErrorLevel, zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		c = color.New(color.FgRed, color.Bold)
	default:
		return line
	}

	return strings.Replace(line, token, c.Sprint(token), 1)
}
