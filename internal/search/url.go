// Build LinkedIn job-search URLs with pagination and time filters

package search

import (
	"net/url"
	"strconv"
)

const DefaultBaseURL = "https://www.linkedin.com/jobs/search/"

// TimePeriods maps config tokens to the f_TPR values LinkedIn uses.
var TimePeriods = map[string]string{
	"24h": "r86400",
	"7d":  "r604800",
	"30d": "r2592000",
	"any": "r0",
}

// Spec holds the components of a job-search URL. Start is the only field
// that changes across pagination.
type Spec struct {
	BaseURL      string
	CurrentJobID string
	TimePeriod   string //f_TPR value, not the config token
	Keywords     string
	Location     string
	Origin       string
	Start        int
}

// ParseSearchURL extracts the known components from a LinkedIn search URL.
// Unknown or malformed components fall back to zero values.
func ParseSearchURL(rawURL string) Spec {
	spec := Spec{BaseURL: DefaultBaseURL}

	u, err := url.Parse(rawURL)
	if err != nil {
		return spec
	}
	if u.Scheme != "" && u.Host != "" {
		spec.BaseURL = u.Scheme + "://" + u.Host + u.Path
	}

	params := u.Query()
	spec.CurrentJobID = params.Get("currentJobId")
	spec.TimePeriod = params.Get("f_TPR")
	spec.Keywords = params.Get("keywords")
	spec.Location = params.Get("location")
	spec.Origin = params.Get("origin")
	if start, err := strconv.Atoi(params.Get("start")); err == nil {
		spec.Start = start
	}

	return spec
}

// URL serializes the spec back into a search URL. Only non-empty components
// are included; start is omitted when zero so first-page URLs stay canonical.
func (s Spec) URL() string {
	base := s.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}

	params := url.Values{}
	if s.CurrentJobID != "" {
		params.Set("currentJobId", s.CurrentJobID)
	}
	if s.TimePeriod != "" {
		params.Set("f_TPR", s.TimePeriod)
	}
	if s.Keywords != "" {
		params.Set("keywords", s.Keywords)
	}
	if s.Location != "" {
		params.Set("location", s.Location)
	}
	if s.Origin != "" {
		params.Set("origin", s.Origin)
	}
	if s.Start > 0 {
		params.Set("start", strconv.Itoa(s.Start))
	}

	return base + "?" + params.Encode()
}

// WithTimePeriod returns a copy of the spec with the f_TPR filter for the
// given config token ("24h", "7d", "30d", "any"). Unrecognized tokens leave
// the spec unfiltered rather than failing.
func (s Spec) WithTimePeriod(token string) Spec {
	if value, ok := TimePeriods[token]; ok {
		s.TimePeriod = value
	}
	return s
}

// ExpandPagination generates one URL per result page, with start offsets
// 0, jobsPerPage, 2*jobsPerPage, ... Pure and deterministic; totalPages <= 0
// yields an empty slice.
func ExpandPagination(spec Spec, totalPages, jobsPerPage int) []string {
	if jobsPerPage <= 0 {
		jobsPerPage = 25
	}

	var urls []string
	for page := 0; page < totalPages; page++ {
		pageSpec := spec
		pageSpec.Start = page * jobsPerPage
		urls = append(urls, pageSpec.URL())
	}
	return urls
}
