package skiatest

import (
	"fmt"
	"strings"
)

// recorder is a TestingT that collects failures instead of failing the
// enclosing test.
type recorder struct {
	errs []string
}

func (r *recorder) Errorf(format string, args ...any) {
	r.errs = append(r.errs, fmt.Sprintf(format, args...))
}

func (r *recorder) Helper() {}

// mentions reports how many recorded failures contain s.
func (r *recorder) mentions(s string) int {
	n := 0
	for _, e := range r.errs {
		if strings.Contains(e, s) {
			n++
		}
	}
	return n
}
