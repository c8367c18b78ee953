package output

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"
)

func init() {
	RegisterFormatter("junit", &JUnitFormatter{})
}

// JUnitDocument is a document that reports as a tree of test suites.
type JUnitDocument interface {
	TestSuite() TestSuite
}

// TestSuite is a named group of test cases and nested suites.
type TestSuite struct {
	Name   string
	Suites []TestSuite
	Cases  []TestCase
}

// TestCase is a single check; it failed if Failures is non-empty.
type TestCase struct {
	Name      string
	Classname string
	Failures  []string
	SystemOut string
}

// JUnitFormatter formats documents as JUnit XML.
type JUnitFormatter struct{}

// JUnit XML structures

type junitTestSuite struct {
	XMLName   xml.Name         `xml:"testsuite"`
	Name      string           `xml:"name,attr"`
	Tests     int              `xml:"tests,attr"`
	Failures  int              `xml:"failures,attr"`
	Errors    int              `xml:"errors,attr"`
	Skipped   int              `xml:"skipped,attr"`
	Time      float64          `xml:"time,attr"`
	Timestamp string           `xml:"timestamp,attr,omitempty"`
	Suites    []junitTestSuite `xml:"testsuite,omitempty"`
	Cases     []junitTestCase  `xml:"testcase,omitempty"`
}

type junitTestCase struct {
	XMLName   xml.Name       `xml:"testcase"`
	Name      string         `xml:"name,attr"`
	Classname string         `xml:"classname,attr"`
	Time      float64        `xml:"time,attr"`
	Failures  []junitFailure `xml:"failure,omitempty"`
	SystemOut *junitCDATA    `xml:"system-out,omitempty"`
}

type junitCDATA struct {
	Content string `xml:",cdata"`
}

type junitFailure struct {
	Message string `xml:"message,attr"`
	Content string `xml:",chardata"`
}

// Format converts doc, which must implement JUnitDocument, to JUnit XML.
func (f *JUnitFormatter) Format(doc any, _ Config) ([]byte, error) {
	jd, ok := doc.(JUnitDocument)
	if !ok {
		return nil, fmt.Errorf("junit output is not supported for %T", doc)
	}

	suite := buildTestSuite(jd.TestSuite())
	suite.Timestamp = time.Now().UTC().Format(time.RFC3339)

	output, err := xml.MarshalIndent(suite, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), output...), nil
}

// buildTestSuite converts a suite tree and computes its totals.
func buildTestSuite(s TestSuite) junitTestSuite {
	suite := junitTestSuite{
		Name: s.Name,
	}

	for _, child := range s.Suites {
		suite.Suites = append(suite.Suites, buildTestSuite(child))
	}
	for _, tc := range s.Cases {
		suite.Cases = append(suite.Cases, buildTestCase(tc))
	}

	calculateTotals(&suite)
	return suite
}

func buildTestCase(tc TestCase) junitTestCase {
	out := junitTestCase{
		Name:      tc.Name,
		Classname: tc.Classname,
	}
	if tc.SystemOut != "" {
		out.SystemOut = &junitCDATA{Content: tc.SystemOut}
	}
	if len(tc.Failures) > 0 {
		out.Failures = []junitFailure{{
			Message: tc.Failures[0],
			Content: strings.Join(tc.Failures, "\n"),
		}}
	}
	return out
}

// calculateTotals calculates test/failure counts from cases and child suites.
func calculateTotals(suite *junitTestSuite) {
	suite.Tests = 0
	suite.Failures = 0
	suite.Skipped = 0
	suite.Errors = 0
	suite.Time = 0

	for _, tc := range suite.Cases {
		suite.Tests++
		if len(tc.Failures) > 0 {
			suite.Failures++
		}
	}

	for _, child := range suite.Suites {
		suite.Tests += child.Tests
		suite.Failures += child.Failures
		suite.Skipped += child.Skipped
		suite.Errors += child.Errors
		suite.Time += child.Time
	}
}
