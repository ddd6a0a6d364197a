//go:build debug

package log

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/sirupsen/logrus"
)

func init() {
	workingDirectory, _ := os.Getwd()
	logrus.SetLevel(logrus.TraceLevel)
	logrus.StandardLogger().SetReportCaller(true)
	logrus.StandardLogger().Formatter.(*logrus.TextFormatter).CallerPrettyfier = func(frame *runtime.Frame) (function string, file string) {
		file = frame.File
		if relativePath, err := filepath.Rel(workingDirectory, file); err == nil && !filepath.IsAbs(relativePath) {
			file = relativePath
		}
		return "", " " + file + ":" + strconv.Itoa(frame.Line)
	}
}
