package search

import (
	"fmt"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSearchURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected Spec
	}{
		{
			name: "Full search url",
			url:  "https://www.linkedin.com/jobs/search/?currentJobId=4286302776&f_TPR=r86400&keywords=php&origin=JOB_SEARCH_PAGE_KEYWORD_AUTOCOMPLETE&start=50",
			expected: Spec{
				BaseURL:      "https://www.linkedin.com/jobs/search/",
				CurrentJobID: "4286302776",
				TimePeriod:   "r86400",
				Keywords:     "php",
				Origin:       "JOB_SEARCH_PAGE_KEYWORD_AUTOCOMPLETE",
				Start:        50,
			},
		},
		{
			name: "Missing params default to zero values",
			url:  "https://www.linkedin.com/jobs/search/?keywords=golang",
			expected: Spec{
				BaseURL:  "https://www.linkedin.com/jobs/search/",
				Keywords: "golang",
			},
		},
		{
			name:     "Garbage url falls back to defaults",
			url:      "::not a url::",
			expected: Spec{BaseURL: DefaultBaseURL},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := ParseSearchURL(tt.url)
			if spec != tt.expected {
				t.Errorf("got %+v, want %+v", spec, tt.expected)
			}
		})
	}
}

// Round trip: every recognized parameter survives parse -> compose.
func TestParseComposeRoundTrip(t *testing.T) {
	original := "https://www.linkedin.com/jobs/search/?currentJobId=123&f_TPR=r604800&keywords=php+backend&location=Brasil&origin=JOB_SEARCH&start=25"

	spec := ParseSearchURL(original)
	rebuilt := ParseSearchURL(spec.URL())

	assert.Equal(t, spec, rebuilt)
	assert.Equal(t, "php backend", rebuilt.Keywords)
	assert.Equal(t, "Brasil", rebuilt.Location)
	assert.Equal(t, 25, rebuilt.Start)
}

func TestURLOmitsZeroStart(t *testing.T) {
	spec := Spec{Keywords: "golang"}
	assert.NotContains(t, spec.URL(), "start=")

	spec.Start = 25
	assert.Contains(t, spec.URL(), "start=25")
}

func TestWithTimePeriod(t *testing.T) {
	spec := Spec{Keywords: "php"}

	assert.Equal(t, "r86400", spec.WithTimePeriod("24h").TimePeriod)
	assert.Equal(t, "r604800", spec.WithTimePeriod("7d").TimePeriod)
	assert.Equal(t, "r2592000", spec.WithTimePeriod("30d").TimePeriod)
	assert.Equal(t, "r0", spec.WithTimePeriod("any").TimePeriod)

	//unrecognized token leaves the spec unfiltered
	assert.Equal(t, "", spec.WithTimePeriod("last-century").TimePeriod)
}

func TestExpandPagination(t *testing.T) {
	spec := Spec{
		BaseURL:  "https://www.linkedin.com/jobs/search/",
		Keywords: "php",
		Location: "Brasil",
	}

	urls := ExpandPagination(spec, 4, 25)
	assert.Len(t, urls, 4)

	for i, raw := range urls {
		u, err := url.Parse(raw)
		if err != nil {
			t.Fatalf("page %d: invalid url: %v", i, err)
		}
		params := u.Query()

		wantStart := i * 25
		if wantStart == 0 {
			assert.Empty(t, params.Get("start"), "page 0 should omit start")
		} else {
			got, _ := strconv.Atoi(params.Get("start"))
			assert.Equal(t, wantStart, got, fmt.Sprintf("page %d start offset", i))
		}

		//all other params equal the base spec's
		assert.Equal(t, "php", params.Get("keywords"))
		assert.Equal(t, "Brasil", params.Get("location"))
	}
}

func TestExpandPaginationZeroPages(t *testing.T) {
	urls := ExpandPagination(Spec{Keywords: "php"}, 0, 25)
	assert.Empty(t, urls)
}
