package version

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Заполняются при сборке через -ldflags "-X github.com/Mihklz/observer/internal/version.BuildVersion=...".
var (
	BuildVersion string
	BuildDate    string
	BuildCommit  string
)

// Print выводит информацию о сборке в w.
func Print(w io.Writer) {
	fmt.Fprintln(w, "Build version:", valueOrNA(BuildVersion))
	fmt.Fprintln(w, "Build date:", valueOrNA(BuildDate))
	fmt.Fprintln(w, "Build commit:", valueOrNA(BuildCommit))
}

// Fields возвращает информацию о сборке в виде полей для логгера.
func Fields() []zap.Field {
	return []zap.Field{
		zap.String("version", valueOrNA(BuildVersion)),
		zap.String("date", valueOrNA(BuildDate)),
		zap.String("commit", valueOrNA(BuildCommit)),
	}
}

func valueOrNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
