package main

import (
	"regexp"

	log "github.com/sirupsen/logrus"
)

// IncludeFilter keeps fragments matching a regex
type IncludeFilter struct {
	regex *regexp.Regexp
}

// NewIncludeFilter to create an IncludeFilter, an empty regex includes everything
func NewIncludeFilter(regex string) (*IncludeFilter, error) {
	var compiledRegex *regexp.Regexp
	if regex != "" {
		log.Debugf("compiling include filter regex")
		var err error
		compiledRegex, err = regexp.Compile(regex)
		if err != nil {
			return nil, err
		}
	}
	return &IncludeFilter{regex: compiledRegex}, nil
}

// Include returns true when the fragment matches the regex
// implements the Filter interface
func (f *IncludeFilter) Include(fragment string) bool {
	if f.regex == nil {
		return true
	}
	if f.regex.MatchString(fragment) {
		return true
	}
	log.Debugf("fragment '%s' excluded because it doesn't match the include regex", fragment)
	return false
}
