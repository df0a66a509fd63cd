package main

import (
	"regexp"

	log "github.com/sirupsen/logrus"
)

// ExcludeFilter drops fragments matching a regex
// ex: "(?i)versandkosten" to ignore shipping costs banners
type ExcludeFilter struct {
	regex *regexp.Regexp
}

// NewExcludeFilter to create an ExcludeFilter, an empty regex excludes nothing
func NewExcludeFilter(regex string) (*ExcludeFilter, error) {
	var compiledRegex *regexp.Regexp
	if regex != "" {
		log.Debugf("compiling exclude filter regex")
		var err error
		compiledRegex, err = regexp.Compile(regex)
		if err != nil {
			return nil, err
		}
	}
	return &ExcludeFilter{regex: compiledRegex}, nil
}

// Include returns false when the fragment matches the regex
// implements the Filter interface
func (f *ExcludeFilter) Include(fragment string) bool {
	if f.regex == nil {
		return true
	}
	if f.regex.MatchString(fragment) {
		log.Debugf("fragment '%s' excluded because it matches the exclude regex", fragment)
		return false
	}
	return true
}
