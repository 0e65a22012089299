package cli

import (
	"fmt"
	"strings"

	"github.com/allykim061/Roadmap-Directory-Manager/internal/hashutil"
	"github.com/allykim061/Roadmap-Directory-Manager/internal/report"
	"github.com/allykim061/Roadmap-Directory-Manager/internal/roster"
)

// studentRef is the short handle printed next to a student by `assign show`.
func studentRef(s roster.Student) string {
	return hashutil.IDFromSeed(s.Key())
}

// ResolveStudent finds the student ref names. It tries the ledger key, the
// external id, the short ref and finally the name. When several students
// share the name, selectFn picks one.
func ResolveStudent(students []roster.Student, ref string, selectFn SelectFunc) (roster.Student, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return roster.Student{}, fmt.Errorf("student is required")
	}

	if s, ok := roster.FindByKey(students, ref); ok {
		return s, nil
	}
	for _, s := range students {
		if s.ID != "" && s.ID == ref {
			return s, nil
		}
	}
	for _, s := range students {
		if studentRef(s) == ref {
			return s, nil
		}
	}

	var named []roster.Student
	for _, s := range students {
		if s.Name == ref {
			named = append(named, s)
		}
	}
	switch len(named) {
	case 0:
		return roster.Student{}, fmt.Errorf("student '%s' not found", ref)
	case 1:
		return named[0], nil
	}

	if selectFn == nil {
		return roster.Student{}, fmt.Errorf("student name '%s' is ambiguous (use the ref from 'rollbook assign show')", ref)
	}
	options := make([]string, len(named))
	for i, s := range named {
		options[i] = fmt.Sprintf("%s %s [%s]", report.StudentLabel(s), s.Status, studentRef(s))
	}
	idx, err := selectFn(fmt.Sprintf("Several students are named '%s'", ref), options)
	if err != nil {
		return roster.Student{}, err
	}
	if idx < 0 || idx >= len(named) {
		return roster.Student{}, fmt.Errorf("aborted")
	}
	return named[idx], nil
}
