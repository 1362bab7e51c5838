// Package logging provides the one shared way the rest of this module gets
// a logger: a package-scoped *logrus.Entry tagged with the caller's
// component name, matching the NamedLogger pattern this module's ambient
// stack is grounded on.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

var base = newBase()

func newBase() *logrus.Logger {
	l := logrus.New()
	l.Out = os.Stderr
	l.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	l.Level = logrus.InfoLevel
	return l
}

// SetLevel adjusts the level of every logger returned by For. Intended to be
// called once, early, from cmd/crossdemo based on a -verbose flag.
func SetLevel(level logrus.Level) {
	base.SetLevel(level)
}

// For returns a logger tagged with component, the package or subsystem name
// doing the logging (for example "cross3d", "density/script", "meshio").
func For(component string) *logrus.Entry {
	return base.WithField("component", component)
}
