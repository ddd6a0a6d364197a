package log

import (
	"strings"

	E "github.com/sagernet/fionread/common/exceptions"

	"github.com/sirupsen/logrus"
)

func init() {
	logrus.StandardLogger().Formatter.(*logrus.TextFormatter).ForceColors = true
	logrus.AddHook(new(TaggedHook))
}

func NewLogger(tag string) *logrus.Entry {
	return logrus.NewEntry(logrus.StandardLogger()).WithField("tag", tag)
}

// SetLevel sets the level of the standard logger from a name such as
// "debug" or "warn".
func SetLevel(level string) error {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return E.Cause(err, "set log level")
	}
	logrus.SetLevel(parsed)
	return nil
}

type TaggedHook struct{}

func (h *TaggedHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *TaggedHook) Fire(entry *logrus.Entry) error {
	if tagObj, loaded := entry.Data["tag"]; loaded {
		tag, isString := tagObj.(string)
		if !isString {
			return nil
		}
		delete(entry.Data, "tag")
		entry.Message = "[" + tag + "]: " + strings.TrimPrefix(entry.Message, tag+": ")
	}
	return nil
}
