package log

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
)

const contextKeyRequestID = "request_id"

// debugEnabled is read once; Debug output is opt-in via LOG_DEBUG.
var debugEnabled = func() bool {
	v := strings.ToLower(os.Getenv("LOG_DEBUG"))
	return v == "1" || v == "true"
}()

type level struct {
	tag   string
	paint *color.Color
}

var (
	debugLevel = level{"DEBUG", color.New(color.FgCyan)}
	infoLevel  = level{"INFO", color.New(color.FgGreen)}
	warnLevel  = level{"WARN", color.New(color.FgYellow)}
	errorLevel = level{"ERROR", color.New(color.FgRed)}
)

func (l level) printf(requestID, format string, a ...interface{}) {
	var b strings.Builder
	b.WriteString(l.paint.Sprintf("[%s]", l.tag))
	if requestID != "" {
		fmt.Fprintf(&b, " [req_id=%s]", requestID)
	}
	b.WriteByte(' ')
	fmt.Fprintf(&b, format, a...)
	fmt.Println(b.String())
}

// WithRequestID stores a request id in the context so the *WithContext
// variants can stamp it onto every line of a request's output.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextKeyRequestID, requestID)
}

func requestID(ctx context.Context) string {
	if id, ok := ctx.Value(contextKeyRequestID).(string); ok {
		return id
	}
	return ""
}

// Debug logs only when LOG_DEBUG is set.
func Debug(format string, a ...interface{}) {
	if debugEnabled {
		debugLevel.printf("", format, a...)
	}
}

func Info(format string, a ...interface{}) {
	infoLevel.printf("", format, a...)
}

func Warn(format string, a ...interface{}) {
	warnLevel.printf("", format, a...)
}

func Error(format string, a ...interface{}) {
	errorLevel.printf("", format, a...)
}

func InfoWithContext(ctx context.Context, format string, a ...interface{}) {
	infoLevel.printf(requestID(ctx), format, a...)
}

func WarnWithContext(ctx context.Context, format string, a ...interface{}) {
	warnLevel.printf(requestID(ctx), format, a...)
}

func ErrorWithContext(ctx context.Context, format string, a ...interface{}) {
	errorLevel.printf(requestID(ctx), format, a...)
}

// Dump pretty-prints a value for debugging.
func Dump(a ...interface{}) string {
	return spew.Sdump(a...)
}
